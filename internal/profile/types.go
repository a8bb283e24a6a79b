// Package profile parses envlit YAML profiles, normalizes their variable
// directives into operation pipelines, and resolves single-parent
// inheritance chains into one flattened Profile.
package profile

import "github.com/harvx/envlit/internal/operation"

// Profile is a fully normalized, inheritance-resolved profile: every
// section is present (possibly empty), every env directive has already
// been expanded into an operation pipeline, and Extends has been consumed.
type Profile struct {
	// Env maps a variable name to the ordered pipeline of operations that
	// produce its load-time value.
	Env map[string][]operation.Operation

	// EnvOrder lists Env's keys in the order they should be emitted: the
	// order they were declared in the profile document, not alphabetical.
	// A later entry's runtime pipeline may reference an earlier entry's
	// value, so emission order must match declaration order.
	EnvOrder []string

	// Flags maps a declared flag name to its descriptor.
	Flags map[string]Flag

	// Hooks maps a lifecycle phase name (PhasePreLoad, PhasePostLoad,
	// PhasePreUnload, PhasePostUnload) to its ordered hook records.
	Hooks map[string][]Hook
}

// Lifecycle phase names recognised in a profile's hooks mapping.
const (
	PhasePreLoad    = "pre_load"
	PhasePostLoad   = "post_load"
	PhasePreUnload  = "pre_unload"
	PhasePostUnload = "post_unload"
)

// Flag is a CLI option a profile declares, binding a user-supplied value to
// an environment variable.
type Flag struct {
	// Spellings is the ordered list of option spellings the flag is known
	// by on the command line, e.g. []string{"--cuda", "-g"}.
	Spellings []string

	// Default is the flag's declared default value, carried only so the
	// CLI layer can register the option; it is never materialized into an
	// export statement on its own.
	Default any

	// Target is the environment variable this flag binds to.
	Target string

	// Map translates a user-supplied flag value to the value actually
	// bound to Target. A value with no entry in a non-empty Map is bound
	// unchanged. A nil Map means no translation applies.
	Map map[string]string
}

// Hook is a single user-supplied shell snippet invoked verbatim at a named
// lifecycle phase.
type Hook struct {
	Name   string
	Script string
}

// newEmpty returns a Profile with all three sections initialized to empty,
// non-nil maps -- the normalized shape of a profile with no content.
func newEmpty() *Profile {
	return &Profile{
		Env:   map[string][]operation.Operation{},
		Flags: map[string]Flag{},
		Hooks: map[string][]Hook{},
	}
}
