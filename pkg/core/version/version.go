// ============================================================================
// musterwerk - Design Pattern Tutor
// ============================================================================
//
// Package:     version
// Description: Central version management for the tutor binary
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version is the release version of the tutor
const Version = "0.1.0"

// Build metadata, overridden via -ldflags at build time
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info bundles version and build details
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the short version string, e.g. "v0.1.0"
func (i Info) String() string {
	return "v" + i.Version
}
