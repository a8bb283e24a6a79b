package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/discover"
	"github.com/harvx/envlit/internal/emitter"
	"github.com/harvx/envlit/internal/flagbind"
	"github.com/harvx/envlit/internal/profile"
)

var (
	loadConfigFlag string

	// preparedProfile/preparedBound are populated by prepareLoadFlags before
	// cobra parses argv, so runLoad reuses the already-loaded profile rather
	// than loading it a second time.
	preparedProfile *profile.Profile
	preparedBound   map[string]flagbind.Bound
)

var loadCmd = &cobra.Command{
	Use:   "load [profile]",
	Short: "Print a shell script that loads a profile's environment overlay",
	Long: `Generate a shell script that applies a profile's environment overlay.

Output must be eval'd by the calling shell:

  eval "$(envlit load)"
  eval "$(envlit load dev)"
  eval "$(envlit load dev --cuda 1)"
  eval "$(envlit load --config path/to/profile.yaml)"

Flags declared in the profile's "flags" section are recognized automatically
once the profile is found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadConfigFlag, "config", "c", "", "path to profile file, bypassing .envlit/ discovery")
	rootCmd.AddCommand(loadCmd)
}

// prepareLoadFlags runs flagbind's first pass against raw argv, locates the
// profile it names, and registers that profile's declared flags onto loadCmd
// -- all before cobra's own parse sees the command line. See
// internal/flagbind's doc comment for why this has to happen out of band.
func prepareLoadFlags(args []string) {
	rest := afterSubcommand(args, "load")
	if rest == nil {
		return
	}

	profileName, configPath := flagbind.Scan(rest)

	path := configPath
	if path == "" {
		// This pass runs before PersistentPreRunE populates globalCtx, so
		// the global settings file is discovered directly here rather than
		// through resolveProfileName.
		resolvedName := profileName
		if ctx, err := discover.Load("."); err == nil {
			resolvedName = ctx.ResolveProfileName(profileName)
		}

		found, err := discover.FindProfile(".", resolvedName)
		if err != nil || found == "" {
			return
		}
		path = found
	}

	p, err := profile.Load(path)
	if err != nil {
		return
	}

	preparedProfile = p
	preparedBound = flagbind.Bind(loadCmd, p)
}

func runLoad(cmd *cobra.Command, args []string) error {
	profileName := ""
	if len(args) > 0 {
		profileName = args[0]
	}

	p := preparedProfile
	if p == nil {
		resolvedName := resolveProfileName(profileName)

		path := loadConfigFlag
		if path == "" {
			found, err := discover.FindProfile(".", resolvedName)
			if err != nil {
				return clierr.New("discovering profile", err)
			}
			if found == "" {
				msg := "no config file found"
				if resolvedName != "" {
					msg = fmt.Sprintf("%s for profile %q", msg, resolvedName)
				}
				return clierr.NewUsage(msg+" (expected .envlit/default.yaml or .envlit/<profile>.yaml)", nil)
			}
			path = found
		}

		loaded, err := profile.Load(path)
		if err != nil {
			return clierr.New("loading profile", err)
		}
		p = loaded
	}

	var flagValues map[string]string
	if preparedBound != nil {
		flagValues = flagbind.ChangedValues(cmd, preparedBound)
	}

	script, err := emitter.BuildLoadScript(p, flagValues)
	if err != nil {
		return clierr.New("building load script", err)
	}

	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

// afterSubcommand returns the arguments following the first occurrence of
// name in args, or nil if name is not present.
func afterSubcommand(args []string, name string) []string {
	for i, a := range args {
		if a == name {
			return args[i+1:]
		}
	}
	return nil
}
