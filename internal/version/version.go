// Package version exposes build-time version metadata, set via -ldflags
// the way the teacher's pkg/version does.
package version

import (
	"fmt"
	"os"
	"path/filepath"
)

var (
	version     = "dev"
	buildCommit = "none"
	buildTime   = "unknown"
)

// GetVersionString returns a standard version header, e.g.
// "kitman-serve 1.0.0 (a1b2c3d), built 2026-01-01T00:00:00Z".
func GetVersionString() string {
	return fmt.Sprintf("%s %v (%s), built %v", filepath.Base(os.Args[0]), version, buildCommit, buildTime)
}

func GetVersion() string {
	return version
}

func GetBuildCommit() string {
	return buildCommit
}

func GetBuildTime() string {
	return buildTime
}
