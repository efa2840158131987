// Package version reports the build version of the loom tools.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version and Commit can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/loomui/loom/internal/version.Version=v1.2.3 \
//	                   -X github.com/loomui/loom/internal/version.Commit=abc123"
//
// When unset they are populated from Go build info, falling back to "dev".
var (
	// Version is the semantic version of the application
	Version = ""
	// Commit is the git commit hash
	Commit = ""
)

func init() {
	if Version == "" || Commit == "" {
		fromBuildInfo()
	}
	if Version == "" {
		Version = "dev"
	}
	if Commit == "" {
		Commit = "unknown"
	}
}

// fromBuildInfo fills Commit (and a dev Version) from the VCS stamp embedded
// by the Go toolchain when building inside a git checkout.
func fromBuildInfo() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var revision, modified string
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if Commit == "" && revision != "" {
		if len(revision) > 7 {
			revision = revision[:7]
		}
		Commit = revision
		if modified == "true" {
			Commit += "-dirty"
		}
	}
}

// Full returns the full version string including commit
func Full() string {
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
