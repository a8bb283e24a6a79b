package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/discover"
	"github.com/harvx/envlit/internal/emitter"
	"github.com/harvx/envlit/internal/profile"
)

var (
	unloadProfileFlag string
	unloadConfigFlag  string
)

var unloadCmd = &cobra.Command{
	Use:   "unload",
	Short: "Print a shell script that restores the environment an overlay replaced",
	Long: `Generate a shell script that runs a profile's unload hooks and restores
the environment to what it was before the matching "load" ran.

Output must be eval'd by the calling shell:

  eval "$(envlit unload)"

If no profile can be found, the script still restores tracked state -- the
profile is only needed for its unload hooks.`,
	RunE: runUnload,
}

func init() {
	unloadCmd.Flags().StringVarP(&unloadProfileFlag, "profile", "p", "", "profile name (e.g. dev, prod)")
	unloadCmd.Flags().StringVarP(&unloadConfigFlag, "config", "c", "", "path to profile file, bypassing .envlit/ discovery")
	rootCmd.AddCommand(unloadCmd)
}

func runUnload(cmd *cobra.Command, _ []string) error {
	path := unloadConfigFlag
	if path == "" {
		resolvedName := resolveProfileName(unloadProfileFlag)
		found, err := discover.FindProfile(".", resolvedName)
		if err != nil {
			return clierr.New("discovering profile", err)
		}
		path = found
	}

	var p *profile.Profile
	if path != "" {
		loaded, err := profile.Load(path)
		if err != nil {
			return clierr.New("loading profile", err)
		}
		p = loaded
	}

	script, err := emitter.BuildUnloadScript(p)
	if err != nil {
		return clierr.New("building unload script", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}
