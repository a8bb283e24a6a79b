// Package buildinfo holds build-time metadata. cmd/envlit's main copies its
// own ldflags-injected variables (version, commit, date, goVersion) into
// these at startup, overwriting any value set here directly:
//
//	go build -ldflags "-X main.version=..." ./cmd/envlit
package buildinfo

import "runtime"

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	Date      = "unknown"
	GoVersion = "unknown"
)

// OS returns the operating system (from runtime.GOOS).
func OS() string {
	return runtime.GOOS
}

// Arch returns the architecture (from runtime.GOARCH).
func Arch() string {
	return runtime.GOARCH
}
