// Package buildinfo holds the version stamped into mazewalk binaries.
//
// Release builds set the variables with -ldflags, for example:
//
//	go build -ldflags "-X github.com/matzehuels/mazewalk/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/mazewalk/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/mazewalk/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// Values overridden at link time. Local builds keep the defaults.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns the build information, one field per line.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template is the cobra version template used by "mazewalk --version".
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
