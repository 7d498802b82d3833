// Package version exposes build metadata stamped in at link time.
package version

// Set via -ldflags at release build time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
