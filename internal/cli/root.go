// Package cli implements the Cobra command hierarchy for the envlit CLI
// tool. The root command defined here is the entry point for all
// subcommands and handles cross-cutting concerns like logging
// initialization and error handling.
package cli

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/discover"
	"github.com/harvx/envlit/internal/logging"
)

var (
	verbose bool
	quiet   bool

	// globalCtx is the invocation directory's global settings and profile
	// listing, resolved once in PersistentPreRunE and consulted by load.go/
	// unload.go for the default profile name. nil if discovery failed --
	// subcommands fall back to their own hard-coded defaults in that case.
	globalCtx *discover.Context
)

var rootCmd = &cobra.Command{
	Use:   "envlit",
	Short: "Reversible environment variable overlays, driven by YAML profiles.",
	Long: `envlit renders shell scripts that load and unload environment-variable
overlays described by a YAML profile.

envlit never mutates your shell's environment itself -- every subcommand
prints a script to stdout that your shell must eval:

  eval "$(envlit load dev)"
  eval "$(envlit unload)"`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		ctx, err := discover.Load(".")
		if err != nil {
			slog.Warn("discovering global settings", "error", err)
		} else {
			globalCtx = ctx
		}

		formatFallback := ""
		if globalCtx != nil && globalCtx.Global != nil {
			formatFallback = globalCtx.Global.LogFormat
		}

		level := logging.ResolveLogLevel(verbose, quiet)
		format := logging.ResolveLogFormat(formatFallback)
		logging.SetupLogging(level, format)

		slog.Debug("logging initialized", "level", level, "format", format)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except errors")
}

// Execute runs the root command and returns an appropriate process exit
// code. If the error is a *clierr.Error, its Code is used.
//
// Before handing off to cobra's normal parse, it runs the "load" command's
// two-pass flag discovery: a profile's own "flags" section must be read and
// turned into real cobra flags before cobra can parse a command line that
// uses them.
func Execute() int {
	prepareLoadFlags(os.Args[1:])

	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		return int(extractExitCode(err))
	}
	return int(clierr.ExitSuccess)
}

// extractExitCode determines the process exit code from an error. If the
// error is a *clierr.Error, its Code field is used. Otherwise ExitError (1)
// is returned for any non-nil error.
func extractExitCode(err error) clierr.ExitCode {
	if err == nil {
		return clierr.ExitSuccess
	}
	var ce *clierr.Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return clierr.ExitError
}

// RootCmd returns the root cobra.Command, for use in testing and subcommand
// registration.
func RootCmd() *cobra.Command {
	return rootCmd
}

// resolveProfileName picks the effective profile name given an explicit CLI
// argument, consulting globalCtx's default_profile setting when no argument
// was given. Falls back to discover.DefaultProfileName if globalCtx hasn't
// been populated (discovery failed, or ran before PersistentPreRunE set it).
func resolveProfileName(explicit string) string {
	if globalCtx != nil {
		return globalCtx.ResolveProfileName(explicit)
	}
	if explicit != "" {
		return explicit
	}
	return discover.DefaultProfileName
}
