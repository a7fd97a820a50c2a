// Package buildinfo holds the version stamped into fdm binaries.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/Glenn-jpg/MasterNTNU/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/fdm
package buildinfo

import "fmt"

var (
	// Version is the semantic version, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// Info is the build information reported by `fdm --version` and the
// API health endpoint.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// CacheScope returns the cache key prefix for this build. Development
// builds share one scope; releases never read results of another release.
func CacheScope() string {
	if Version == "dev" {
		return "dev:"
	}
	return Version + ":"
}
