// Package version carries the build version of searchlight.
package version

// Version is the searchlight release version. Overridden at build time via
// -ldflags "-X github.com/stormlightlabs/searchlight/internal/version.Version=...".
var Version = "0.1.0"
