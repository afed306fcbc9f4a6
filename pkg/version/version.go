// Package version exposes build-time version information for the shiptools binaries.
package version

import "fmt"

// Build metadata, overridden at link time via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String renders the version line for the given binary name.
func String(binary string) string {
	return fmt.Sprintf("%s %s (commit: %s, built: %s)", binary, Version, Commit, Date)
}
