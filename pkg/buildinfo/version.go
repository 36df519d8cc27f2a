// Package buildinfo carries version information stamped at link time:
//
//	go build -ldflags "-X github.com/younextz/screenshot-styler/pkg/buildinfo.Version=v0.4.0 \
//	    -X github.com/younextz/screenshot-styler/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/younextz/screenshot-styler/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/styler
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String returns a multi-line description for logs and the health endpoint.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Info is the JSON form served by the HTTP service.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Current returns the stamped values.
func Current() Info { return Info{Version: Version, Commit: Commit, Date: Date} }

// Template is the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s (commit %s, built %s)\n", Version, Commit, Date)
}
