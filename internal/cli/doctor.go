package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/state"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Report the tracked-overlay state for the current directory",
	Long: `doctor prints a read-only diagnostic report: the state-variable name envlit
derives for the current directory, whether an overlay is currently tracked,
and the table of tracked variables (name/original/current).

This is a single-shot, synchronous report -- it never prompts and never
refreshes itself.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var (
	doctorTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	doctorLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	doctorOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	doctorWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

func runDoctor(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return clierr.New("getting current directory", err)
	}
	varName := state.VarName(cwd)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, doctorTitle.Render("envlit doctor"))
	fmt.Fprintf(out, "%s %s\n", doctorLabel.Render("directory:"), cwd)
	fmt.Fprintf(out, "%s %s\n", doctorLabel.Render("state variable:"), varName)

	raw, ok := os.LookupEnv(varName)
	if !ok {
		fmt.Fprintln(out, doctorWarn.Render("no overlay is currently tracked"))
		return nil
	}

	store := state.Parse(raw)
	names := store.TrackedNames()
	if len(names) == 0 {
		fmt.Fprintln(out, doctorWarn.Render("overlay tracked, but no variables were changed"))
		return nil
	}

	fmt.Fprintln(out, doctorOK.Render(fmt.Sprintf("overlay active: %d variable(s) tracked", len(names))))
	fmt.Fprintln(out)

	sort.Strings(names)
	for _, name := range names {
		original, _ := store.Original(name)
		current, _ := store.Current(name)
		fmt.Fprintf(out, "  %s\n", doctorLabel.Render(name))
		fmt.Fprintf(out, "    original: %s\n", formatPtr(original))
		fmt.Fprintf(out, "    current:  %s\n", formatPtr(current))
	}
	return nil
}

func formatPtr(v *string) string {
	if v == nil {
		return "<unset>"
	}
	b, err := json.Marshal(*v)
	if err != nil {
		return *v
	}
	return string(b)
}
