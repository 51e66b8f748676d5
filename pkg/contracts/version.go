// Package contracts holds the cross-layer types shared between ingestion,
// storage and the command-line tools.
package contracts

import (
	"fmt"
	"runtime"
)

// Version is the current version of the application.
const Version = "0.3.0"

var (
	// BuildTime is set during build using ldflags.
	BuildTime = "unknown"

	// GitCommit is set during build using ldflags.
	GitCommit = "unknown"
)

// VersionString returns the one-line identification the tools log at
// startup.
func VersionString() string {
	return fmt.Sprintf("nbsrates v%s (commit: %s, built: %s, go: %s)",
		Version, GitCommit, BuildTime, runtime.Version())
}
