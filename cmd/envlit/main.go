// Package main is the entry point for the envlit CLI tool.
package main

import (
	"os"

	"github.com/harvx/envlit/internal/buildinfo"
	"github.com/harvx/envlit/internal/cli"
)

// Build-time metadata injected via ldflags, wired into internal/buildinfo so
// every command (version, doctor) reports it consistently.
var (
	version   = "dev"
	commit    = "none"
	date      = "unknown"
	goVersion = "unknown"
)

func main() {
	buildinfo.Version = version
	buildinfo.Commit = commit
	buildinfo.Date = date
	buildinfo.GoVersion = goVersion

	os.Exit(cli.Execute())
}
