// Package version holds build metadata injected at link time.
package version

// Set via -ldflags at build time, e.g.
// go build -ldflags "-X github.com/dmezquita/workspacectl/internal/version.Version=v0.3.0"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
