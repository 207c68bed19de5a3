// Package launcher replaces the current process with the container's
// main command once boot-time setup is done.
package launcher
