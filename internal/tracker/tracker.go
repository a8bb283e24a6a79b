// Package tracker implements the three-phase reversible overlay protocol:
// begin snapshots the ambient environment, end diffs a later snapshot
// against it and folds the result into the state store via
// Compare-and-Swap, and restore emits shell commands that undo a tracked
// overlay. Each is invoked as a separate short-lived process by the
// emitted shell program.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/harvx/envlit/internal/shellquote"
	"github.com/harvx/envlit/internal/state"
)

// Begin captures the ambient environment and returns its JSON encoding,
// which the calling shell captures into state.SnapshotVarName.
func Begin() (string, error) {
	return beginFrom(os.Environ())
}

func beginFrom(environ []string) (string, error) {
	data, err := json.Marshal(environMap(environ))
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}
	return string(data), nil
}

// End diffs the snapshot captured at begin time against the current
// environment, updates the state store via Compare-and-Swap for every
// changed variable, and returns a single line exporting the updated state
// variable for the calling shell to evaluate.
func End() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	return endFrom(os.Environ(), os.Getenv(state.SnapshotVarName), cwd)
}

func endFrom(environ []string, snapshotARaw, cwd string) (string, error) {
	snapshotA := decodeSnapshot(snapshotARaw)
	snapshotB := environMap(environ)
	delete(snapshotB, state.SnapshotVarName)
	delete(snapshotA, state.SnapshotVarName)

	stateVarName := state.VarName(cwd)
	store := state.Parse(os.Getenv(stateVarName))

	for _, name := range changedNames(snapshotA, snapshotB) {
		store.Update(name, lookupPtr(snapshotA, name), lookupPtr(snapshotB, name))
	}

	serialized, err := store.Serialize()
	if err != nil {
		return "", fmt.Errorf("serialize state: %w", err)
	}

	return fmt.Sprintf("export %s=%s", stateVarName, shellquote.QuoteSingle(serialized)), nil
}

// Restore emits shell commands that return every tracked variable to its
// original value and unset the state variable, or a no-op comment if no
// overlay is active in the current directory.
func Restore() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine working directory: %w", err)
	}
	stateVarName := state.VarName(cwd)
	raw, ok := os.LookupEnv(stateVarName)
	return restoreFrom(raw, ok, stateVarName), nil
}

func restoreFrom(raw string, present bool, stateVarName string) string {
	if !present {
		return "# No envlit state found to restore"
	}

	store := state.Parse(raw)
	names := store.TrackedNames()
	if len(names) == 0 {
		return "unset " + stateVarName
	}

	lines := []string{"# Restoring environment to original state"}
	for _, name := range names {
		original, _ := store.Original(name)
		if original == nil {
			lines = append(lines, "unset "+name)
		} else {
			lines = append(lines, fmt.Sprintf("export %s=%s", name, shellquote.QuoteSingle(*original)))
		}
	}
	lines = append(lines, "unset "+stateVarName)

	return strings.Join(lines, "\n")
}

// environMap turns a process environment's NAME=VALUE slice into a map.
func environMap(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		m[name] = value
	}
	return m
}

// decodeSnapshot parses a snapshot JSON payload, falling back to an empty
// map if it is absent or malformed: a missing or corrupt snapshot is an
// internally recoverable tracker condition, not a fatal error.
func decodeSnapshot(raw string) map[string]string {
	if raw == "" {
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}

// changedNames returns, in sorted order, every name present in a or b
// whose value differs between them (a name missing from one side counts
// as different from any present value).
func changedNames(a, b map[string]string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var names []string
	for name := range a {
		seen[name] = true
	}
	for name := range b {
		seen[name] = true
	}
	for name := range seen {
		va, inA := a[name]
		vb, inB := b[name]
		if inA && inB && va == vb {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupPtr(m map[string]string, name string) *string {
	v, ok := m[name]
	if !ok {
		return nil
	}
	return &v
}
