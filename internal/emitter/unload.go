package emitter

import (
	"strings"

	"github.com/harvx/envlit/internal/profile"
)

// BuildUnloadScript renders the unload script for p: pre_unload hooks,
// restore, post_unload hooks. p may be nil when no profile was found for
// the requested name -- restoration still proceeds purely from the state
// variable, since the profile is only needed for its unload hooks.
func BuildUnloadScript(p *profile.Profile) (string, error) {
	var lines []string

	if p != nil {
		lines = append(lines, hookLines(p.Hooks[profile.PhasePreUnload])...)
	}

	lines = append(lines, restoreLine())

	if p != nil {
		lines = append(lines, hookLines(p.Hooks[profile.PhasePostUnload])...)
	}

	return strings.Join(lines, "\n") + "\n", nil
}
