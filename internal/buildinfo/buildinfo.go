// Package buildinfo carries version metadata stamped into release binaries.
package buildinfo

// Set via -ldflags at release time; empty in local builds, where the CLI
// falls back to debug.ReadBuildInfo.
var (
	Version = ""
	Commit  = ""
	Date    = ""
)
