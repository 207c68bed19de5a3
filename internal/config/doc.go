// Package config names the environment variables and filesystem paths
// the entrypoint depends on.
//
// All access to the process environment happens through Snapshot so the
// rest of the program is pure and testable against a plain map.
package config
