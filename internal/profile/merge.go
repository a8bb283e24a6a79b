package profile

// merge applies child on top of parent:
//   - env: shallow overlay, child key wins; a key absent from child but
//     present in parent survives untouched (the child cannot remove an
//     inherited key, only set it to an unset-pipeline).
//   - flags: shallow overlay, child descriptor replaces parent's entirely.
//   - hooks: per-phase concatenation, parent's hooks run before child's.
//
// Neither parent nor child is mutated; a fresh Profile is always returned.
func merge(parent, child *Profile) *Profile {
	result := newEmpty()

	for _, name := range parent.EnvOrder {
		result.Env[name] = parent.Env[name]
		result.EnvOrder = append(result.EnvOrder, name)
	}
	for _, name := range child.EnvOrder {
		if _, inherited := result.Env[name]; !inherited {
			result.EnvOrder = append(result.EnvOrder, name)
		}
		result.Env[name] = child.Env[name]
	}

	for name, f := range parent.Flags {
		result.Flags[name] = f
	}
	for name, f := range child.Flags {
		result.Flags[name] = f
	}

	phases := make(map[string]bool, len(parent.Hooks)+len(child.Hooks))
	for phase := range parent.Hooks {
		phases[phase] = true
	}
	for phase := range child.Hooks {
		phases[phase] = true
	}
	for phase := range phases {
		combined := make([]Hook, 0, len(parent.Hooks[phase])+len(child.Hooks[phase]))
		combined = append(combined, parent.Hooks[phase]...)
		combined = append(combined, child.Hooks[phase]...)
		result.Hooks[phase] = combined
	}

	return result
}
