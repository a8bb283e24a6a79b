package profile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/zeebo/xxh3"
)

// Fingerprint returns a fast content hash of the resolved profile, shown by
// `envlit profiles show` (summary and --json) to answer "has this
// profile changed since I last loaded it". It is not cryptographic and not
// stable across envlit versions that change the canonical encoding below --
// only stable within a single run's comparisons.
func (p *Profile) Fingerprint() uint64 {
	var b strings.Builder

	envNames := sortedKeys(p.Env)
	for _, name := range envNames {
		fmt.Fprintf(&b, "env:%s=", name)
		for _, op := range p.Env[name] {
			fmt.Fprintf(&b, "%s(%s,%s);", op.Op, op.Value, op.Separator)
		}
	}

	flagNames := sortedKeys(p.Flags)
	for _, name := range flagNames {
		f := p.Flags[name]
		fmt.Fprintf(&b, "flag:%s=%v|%v|%v|%v;", name, f.Spellings, f.Target, f.Default, f.Map)
	}

	phases := sortedKeys(p.Hooks)
	for _, phase := range phases {
		for _, h := range p.Hooks[phase] {
			fmt.Fprintf(&b, "hook:%s:%s=%s;", phase, h.Name, h.Script)
		}
	}

	return xxh3.HashString(b.String())
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
