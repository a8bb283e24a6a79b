package emitter

import (
	"fmt"
	"strings"

	"github.com/harvx/envlit/internal/operation"
	"github.com/harvx/envlit/internal/profile"
)

// BuildLoadScript renders the load script for p, in the required order:
// begin, pre_load hooks, flag exports, env exports
// (skipping any variable a supplied flag already targets), post_load
// hooks, end.
func BuildLoadScript(p *profile.Profile, flagValues map[string]string) (string, error) {
	var lines []string

	lines = append(lines, beginLine())
	lines = append(lines, hookLines(p.Hooks[profile.PhasePreLoad])...)

	supersededTargets := make(map[string]bool)
	for _, name := range sortedFlagNames(p.Flags) {
		value, ok := flagValues[name]
		if !ok {
			continue
		}
		flag := p.Flags[name]
		effective := value
		if flag.Map != nil {
			if mapped, ok := flag.Map[value]; ok {
				effective = mapped
			}
		}
		lines = append(lines, exportLine(flag.Target, effective))
		supersededTargets[flag.Target] = true
	}

	for _, name := range p.EnvOrder {
		if supersededTargets[name] {
			continue
		}
		ops := p.Env[name]

		if hasRuntimeOp(ops) {
			line, err := runtimeApplyLine(name, ops)
			if err != nil {
				return "", err
			}
			lines = append(lines, line)
			continue
		}

		value, err := operation.ApplyPipeline(nil, ops)
		if err != nil {
			return "", fmt.Errorf("env %q: %w", name, err)
		}
		if value == nil {
			lines = append(lines, unsetLine(name))
		} else {
			lines = append(lines, exportLine(name, *value))
		}
	}

	lines = append(lines, hookLines(p.Hooks[profile.PhasePostLoad])...)
	lines = append(lines, endLine())

	return strings.Join(lines, "\n") + "\n", nil
}
