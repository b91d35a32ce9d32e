// Package version carries build metadata injected with -ldflags.
package version

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/doeshing/autopilot-go/internal/version.Version=v1.2.0"
var (
	Version   = "dev"
	Commit    = ""
	BuildDate = ""
)
