// Package version exposes the build metadata stamped into the promptcat binary.
package version

import (
	"fmt"
	"runtime"
)

// Populated at build time via -ldflags, e.g.
//
//	go build -ldflags "-X promptcat/pkg/version.Version=0.4.0 \
//	  -X promptcat/pkg/version.Commit=$(git rev-parse --short HEAD) \
//	  -X promptcat/pkg/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info is the full set of fields the version command can report.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get assembles the version information for the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String renders the single-line form, e.g.
// "promptcat version 0.4.0 (commit: abcdefg) built at 2026-01-15T10:04:05Z with go1.23.1 on linux/amd64".
func (i Info) String() string {
	return fmt.Sprintf("promptcat version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
