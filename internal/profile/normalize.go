package profile

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/harvx/envlit/internal/operation"
)

var recognizedPhases = map[string]bool{
	PhasePreLoad:    true,
	PhasePostLoad:   true,
	PhasePreUnload:  true,
	PhasePostUnload: true,
}

// normalize converts a decoded rawProfile into its canonical Profile shape:
// env directives expanded into operation pipelines, flag spellings coerced
// to a slice, and every section guaranteed non-nil. path is the profile's
// source path, used only to annotate error messages.
func normalize(raw *rawProfile, path string) (*Profile, error) {
	p := newEmpty()

	entries, err := orderedEnv(raw.Env)
	if err != nil {
		return nil, fmt.Errorf("%s: env: %w", path, err)
	}
	for _, e := range entries {
		if err := validateVariableName(e.Name); err != nil {
			return nil, fmt.Errorf("%s: env: %w", path, err)
		}
		ops, err := operation.NormalizeDirective(e.Directive)
		if err != nil {
			return nil, fmt.Errorf("%s: env %q: %w", path, e.Name, err)
		}
		if _, exists := p.Env[e.Name]; !exists {
			p.EnvOrder = append(p.EnvOrder, e.Name)
		}
		p.Env[e.Name] = ops
	}

	for name, rf := range raw.Flags {
		flag, err := normalizeFlag(name, rf)
		if err != nil {
			return nil, fmt.Errorf("%s: flags %q: %w", path, name, err)
		}
		p.Flags[name] = flag
	}

	for phase, hooks := range raw.Hooks {
		if !recognizedPhases[phase] {
			slog.Warn("profile declares an unrecognized hook phase; it will never run",
				"path", path, "phase", phase)
		}
		list := make([]Hook, 0, len(hooks))
		for _, h := range hooks {
			list = append(list, Hook{Name: h.Name, Script: h.Script})
		}
		p.Hooks[phase] = list
	}

	return p, nil
}

// normalizeFlag coerces a rawFlag's Flag field (string or sequence of
// strings) into Spellings, and fills Target with name upper-cased when the
// profile does not declare one explicitly, matching the original's
// `flag_config.get("target", flag_name.upper())` default.
func normalizeFlag(name string, rf rawFlag) (Flag, error) {
	var spellings []string
	switch v := rf.Flag.(type) {
	case nil:
		spellings = []string{"--" + name}
	case string:
		spellings = []string{v}
	case []any:
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return Flag{}, fmt.Errorf("flag spelling %d must be a string, got %T", i, item)
			}
			spellings = append(spellings, s)
		}
		if len(spellings) == 0 {
			return Flag{}, fmt.Errorf("flag spelling list must not be empty")
		}
	default:
		return Flag{}, fmt.Errorf("flag field must be a string or sequence of strings, got %T", rf.Flag)
	}

	target := rf.Target
	if target == "" {
		target = strings.ToUpper(name)
	}
	if err := validateVariableName(target); err != nil {
		return Flag{}, fmt.Errorf("target: %w", err)
	}

	return Flag{
		Spellings: spellings,
		Default:   rf.Default,
		Target:    target,
		Map:       rf.Map,
	}, nil
}

// validateVariableName rejects names that cannot survive a round trip
// through the process environment: '=' terminates a name in the
// NAME=VALUE wire form POSIX environments use, and NUL cannot appear in
// an environment string at all. This is the open-question decision
// recorded in SPEC_FULL.md §6.
func validateVariableName(name string) error {
	if name == "" {
		return fmt.Errorf("variable name must not be empty")
	}
	if strings.ContainsRune(name, '=') {
		return fmt.Errorf("variable name %q must not contain '='", name)
	}
	if strings.ContainsRune(name, 0) {
		return fmt.Errorf("variable name %q must not contain a NUL byte", name)
	}
	return nil
}
