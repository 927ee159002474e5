// Package version carries the build identity of the intervalues binary.
package version

// Build metadata, overridden at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
