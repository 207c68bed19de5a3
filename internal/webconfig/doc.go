// Package webconfig renders the browser-side configuration script from
// environment values and writes it into the served web content tree.
//
// The emitted file assigns window.CONFIG, the object the front end
// reads at load time to locate its backing AWS resources.
package webconfig
