// Package version holds build metadata for the resumatch binary, injected
// via -ldflags "-X github.com/kailas-cloud/resumatch/internal/version.Version=...".
package version

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
