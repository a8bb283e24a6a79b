package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/harvx/envlit/internal/clierr"
	"github.com/harvx/envlit/internal/discover"
	"github.com/harvx/envlit/internal/profile"
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Inspect the profiles available in .envlit/",
	Long: `Profile management commands for envlit.

  list   Show every profile found under .envlit/
  show   Display a profile's fully resolved (post-inheritance) configuration`,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every profile found under .envlit/",
	RunE:  runProfilesList,
}

var profilesShowCmd = &cobra.Command{
	Use:               "show [profile]",
	Short:             "Show a profile's fully resolved configuration",
	Args:              cobra.MaximumNArgs(1),
	RunE:              runProfilesShow,
	ValidArgsFunction: completeProfileNames,
}

var profilesShowJSON bool

func init() {
	profilesShowCmd.Flags().BoolVar(&profilesShowJSON, "json", false, "output as JSON instead of a summary")

	profilesCmd.AddCommand(profilesListCmd, profilesShowCmd)
	rootCmd.AddCommand(profilesCmd)
}

func runProfilesList(cmd *cobra.Command, _ []string) error {
	names, err := discover.ListProfiles(".")
	if err != nil {
		return clierr.New("listing profiles", err)
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No profiles found under .envlit/")
		return nil
	}

	fmt.Fprintln(out, "Available profiles:")
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(tw, "  NAME\tEXTENDS\tFLAGS\tHOOKS")
	for _, name := range names {
		path, err := discover.FindProfile(".", name)
		if err != nil || path == "" {
			continue
		}
		p, err := profile.Load(path)
		extends := "-"
		flags := "0"
		hooks := "0"
		if data, readErr := os.ReadFile(path); readErr == nil {
			var head struct {
				Extends string `yaml:"extends"`
			}
			if yaml.Unmarshal(data, &head) == nil && head.Extends != "" {
				extends = head.Extends
			}
		}
		if err == nil {
			flags = fmt.Sprintf("%d", len(p.Flags))
			hookCount := 0
			for _, h := range p.Hooks {
				hookCount += len(h)
			}
			hooks = fmt.Sprintf("%d", hookCount)
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", name, extends, flags, hooks)
	}
	return tw.Flush()
}

func runProfilesShow(cmd *cobra.Command, args []string) error {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	name = resolveProfileName(name)

	path, err := discover.FindProfile(".", name)
	if err != nil {
		return clierr.New("discovering profile", err)
	}
	if path == "" {
		available, _ := discover.ListProfiles(".")
		msg := fmt.Sprintf("profile %q not found", name)
		if len(available) > 0 {
			msg += fmt.Sprintf(" (available: %s)", strings.Join(available, ", "))
		}
		return clierr.NewUsage(msg, nil)
	}

	p, err := profile.Load(path)
	if err != nil {
		return clierr.New("loading profile", err)
	}

	out := cmd.OutOrStdout()
	if profilesShowJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summarize(p))
	}

	fmt.Fprintf(out, "Profile: %s (%s)\n", name, path)
	fmt.Fprintf(out, "Fingerprint: %x\n\n", p.Fingerprint())

	fmt.Fprintln(out, "Env:")
	for _, v := range sortedKeys(p.Env) {
		fmt.Fprintf(out, "  %s: %d operation(s)\n", v, len(p.Env[v]))
	}

	fmt.Fprintln(out, "Flags:")
	for _, name := range sortedFlagKeys(p.Flags) {
		fmt.Fprintf(out, "  %s -> %s\n", name, p.Flags[name].Target)
	}

	fmt.Fprintln(out, "Hooks:")
	for _, phase := range []string{profile.PhasePreLoad, profile.PhasePostLoad, profile.PhasePreUnload, profile.PhasePostUnload} {
		fmt.Fprintf(out, "  %s: %d hook(s)\n", phase, len(p.Hooks[phase]))
	}

	return nil
}

type profileSummary struct {
	Fingerprint uint64            `json:"fingerprint"`
	EnvVars     []string          `json:"env_vars"`
	Flags       map[string]string `json:"flags"`
	Hooks       map[string]int    `json:"hooks"`
}

func summarize(p *profile.Profile) profileSummary {
	flags := make(map[string]string, len(p.Flags))
	for name, f := range p.Flags {
		flags[name] = f.Target
	}
	hooks := make(map[string]int, len(p.Hooks))
	for phase, h := range p.Hooks {
		hooks[phase] = len(h)
	}
	return profileSummary{
		Fingerprint: p.Fingerprint(),
		EnvVars:     sortedKeys(p.Env),
		Flags:       flags,
		Hooks:       hooks,
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedFlagKeys(m map[string]profile.Flag) []string {
	return sortedKeys(m)
}

func completeProfileNames(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names, err := discover.ListProfiles(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var filtered []string
	for _, n := range names {
		if strings.HasPrefix(n, toComplete) {
			filtered = append(filtered, n)
		}
	}
	return filtered, cobra.ShellCompDirectiveNoFileComp
}
