// Package flagbind implements the two-pass dynamic flag parsing the load
// command needs: a profile's "flags" section declares extra command-line
// options (--cuda, --backend, ...) that only exist once the profile itself
// has been found, so the grammar cannot be fixed at cobra.Command
// construction time the way every other flag is.
package flagbind

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/harvx/envlit/internal/profile"
)

// Scan does a best-effort first pass over argv, before cobra has parsed
// anything, to recover the positional profile name and an explicit
// --config/-c value. It never errors: a malformed invocation is left for
// cobra's real parser to reject on the second pass.
func Scan(args []string) (profileName, configPath string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case (arg == "--config" || arg == "-c") && i+1 < len(args):
			configPath = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			configPath = strings.TrimPrefix(arg, "--config=")
		case !strings.HasPrefix(arg, "-"):
			if profileName == "" {
				profileName = arg
			}
		}
	}
	return profileName, configPath
}

// Bound is a profile-declared flag after registration: the string it was
// parsed into and the long spelling cobra registered it under (needed to
// query cmd.Flags().Changed, since that's keyed by the registered name, not
// the profile's own flag name).
type Bound struct {
	Value *string
	Long  string
}

// Bind registers one cobra flag per entry in p.Flags, using the flag's
// declared spellings (the first "--" spelling is the long name; cobra only
// supports a single-character shorthand, so the first single-dash,
// single-character spelling becomes the shorthand and the rest are ignored
// -- a profile declaring more than one long and one short spelling is
// unusual and the extras are simply unreachable, not an error). Flags
// already present on cmd (the static --config/--profile/etc.) are left
// alone: a profile flag whose name or long spelling is already registered
// is skipped, and a shorthand already taken is not registered again.
//
// Returns the bound flags keyed by profile flag name, for the caller to read
// back after cmd.Execute() parses argv.
func Bind(cmd *cobra.Command, p *profile.Profile) map[string]Bound {
	bound := make(map[string]Bound, len(p.Flags))

	for name, flag := range p.Flags {
		long, short := spellings(name, flag.Spellings)
		if cmd.Flags().Lookup(name) != nil || cmd.Flags().Lookup(long) != nil {
			continue
		}
		if short != "" && cmd.Flags().ShorthandLookup(short) != nil {
			short = ""
		}

		value := new(string)
		help := "Set " + flag.Target
		if flag.Default != nil {
			help += " (profile default applies if omitted)"
		}

		if short != "" {
			cmd.Flags().StringVarP(value, long, short, "", help)
		} else {
			cmd.Flags().StringVar(value, long, "", help)
		}
		bound[name] = Bound{Value: value, Long: long}
	}

	return bound
}

// spellings splits a profile flag's declared spellings into cobra's
// long-name/shorthand pair. The long name defaults to the flag's own name
// when no "--"-prefixed spelling was declared.
func spellings(name string, declared []string) (long, short string) {
	long = name
	haveLong := false
	for _, s := range declared {
		trimmed := strings.TrimLeft(s, "-")
		switch {
		case strings.HasPrefix(s, "--"):
			if !haveLong {
				long = trimmed
				haveLong = true
			}
		case strings.HasPrefix(s, "-") && len(trimmed) == 1 && short == "":
			short = trimmed
		}
	}
	return long, short
}

// ChangedValues returns the subset of bound flags the user actually supplied
// on the command line, keyed by profile flag name -- unset flags fall back
// to the profile's own env/default handling instead of materializing an
// empty override. Flag defaults are never materialized into the emitted
// script on their own.
func ChangedValues(cmd *cobra.Command, bound map[string]Bound) map[string]string {
	values := make(map[string]string, len(bound))
	for name, b := range bound {
		if cmd.Flags().Changed(b.Long) {
			values[name] = *b.Value
		}
	}
	return values
}
