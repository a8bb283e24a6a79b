package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/operation"
	"github.com/harvx/envlit/internal/shellquote"
	"github.com/harvx/envlit/internal/tracker"
)

// trackCmd groups the hidden subcommands the scripts emitter.BuildLoadScript
// / BuildUnloadScript generate actually invoke at shell-evaluation time.
// Not meant for direct interactive use.
var trackCmd = &cobra.Command{
	Use:    "track",
	Hidden: true,
	Short:  "Internal state-tracking commands invoked by generated scripts",
}

var trackBeginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Print a JSON snapshot of the current environment",
	RunE:  runTrackBegin,
}

var trackEndCmd = &cobra.Command{
	Use:   "end",
	Short: "Diff against the snapshot in __ENVLIT_SNAPSHOT_A and print the state-update export",
	RunE:  runTrackEnd,
}

var trackRestoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Print the shell commands that restore the environment to its pre-overlay state",
	RunE:  runTrackRestore,
}

var (
	applyName     string
	applyPipeline string
)

var trackApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Recompute a PATH-style operation pipeline against its variable's live value",
	RunE:  runTrackApply,
}

func init() {
	trackApplyCmd.Flags().StringVar(&applyName, "name", "", "variable name")
	trackApplyCmd.Flags().StringVar(&applyPipeline, "pipeline", "", "JSON-encoded []operation.Operation")
	_ = trackApplyCmd.MarkFlagRequired("name")
	_ = trackApplyCmd.MarkFlagRequired("pipeline")

	trackCmd.AddCommand(trackBeginCmd, trackEndCmd, trackRestoreCmd, trackApplyCmd)
	rootCmd.AddCommand(trackCmd)
}

func runTrackBegin(cmd *cobra.Command, _ []string) error {
	out, err := tracker.Begin()
	if err != nil {
		return clierr.New("tracking begin", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runTrackEnd(cmd *cobra.Command, _ []string) error {
	out, err := tracker.End()
	if err != nil {
		return clierr.New("tracking end", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runTrackRestore(cmd *cobra.Command, _ []string) error {
	out, err := tracker.Restore()
	if err != nil {
		return clierr.New("tracking restore", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

// runTrackApply re-runs an operation pipeline against the variable's live
// value and prints the resulting export/unset line. This is the subprocess
// side of emitter's `eval "$(envlit track apply ...)"` lines: the pipeline
// is re-applied here instead of in hand-rolled shell so the operation engine
// has exactly one implementation.
func runTrackApply(cmd *cobra.Command, _ []string) error {
	var ops []operation.Operation
	if err := json.Unmarshal([]byte(applyPipeline), &ops); err != nil {
		return clierr.New("decoding pipeline", err)
	}

	var current *string
	if v, ok := os.LookupEnv(applyName); ok {
		current = &v
	}

	result, err := operation.ApplyPipeline(current, ops)
	if err != nil {
		return clierr.New("applying pipeline", err)
	}

	out := cmd.OutOrStdout()
	if result == nil {
		fmt.Fprintf(out, "unset %s\n", applyName)
		return nil
	}
	fmt.Fprintf(out, "export %s=%s\n", applyName, shellquote.QuoteSingle(*result))
	return nil
}
