package backup

import (
	"runtime"
	"runtime/debug"
)

// Version is the semantic version of murfie-backup.
const Version = "0.3.0"

// VersionInfo contains detailed version information.
type VersionInfo struct {
	Version   string
	GitCommit string // from -ldflags, else the module's VCS stamp
	BuildTime string
	GoVersion string
}

// Variables populated at build time via -ldflags:
//
//	go build -ldflags="-X github.com/mbrakken/murfie-backup.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/mbrakken/murfie-backup.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/flactool
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// GetVersionInfo returns detailed version information.
//
// Values not set through -ldflags are taken from the build information
// embedded by the go command, when available.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "unknown" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "unknown" {
				info.BuildTime = s.Value
			}
		}
	}
	return info
}

// String formats the version for command-line output.
func (v VersionInfo) String() string {
	commit := v.GitCommit
	if len(commit) > 12 {
		commit = commit[:12]
	}
	return "murfie-backup " + v.Version + " (" + commit + ", " + v.BuildTime + ", " + v.GoVersion + ")"
}
