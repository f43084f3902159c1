// Package build provides version and build information for brb.
// This package intentionally has no dependencies on other internal packages
// to avoid import cycles.
package build

import (
	"fmt"
	"runtime"
)

var (
	// Version information - set via ldflags during build
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// UserAgent is the default User-Agent for webhook requests.
func UserAgent() string {
	return "brb/" + Version
}

// Platform returns GOOS/GOARCH.
func Platform() string {
	return fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
}
