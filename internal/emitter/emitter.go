// Package emitter translates a resolved profile plus CLI-supplied flag
// values into the shell program envlit prints on stdout.
// It never executes shell code itself; it only produces text for the
// calling shell to source.
package emitter

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/harvx/envlit/internal/operation"
	"github.com/harvx/envlit/internal/profile"
	"github.com/harvx/envlit/internal/shellquote"
	"github.com/harvx/envlit/internal/state"
)

// binaryName is the command name envlit emits into the scripts it
// generates, invoked as a subprocess by the calling shell for begin/end/
// restore/apply. It matches the module's cmd/envlit binary.
const binaryName = "envlit"

func sortedFlagNames(flags map[string]profile.Flag) []string {
	names := make([]string, 0, len(flags))
	for name := range flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// hasRuntimeOp reports whether ops contains a prepend/append/remove step,
// which must be recomputed against the shell's live value at evaluation
// time rather than statically at script-build time.
func hasRuntimeOp(ops []operation.Operation) bool {
	for _, op := range ops {
		switch op.Op {
		case operation.Prepend, operation.Append, operation.Remove:
			return true
		}
	}
	return false
}

func exportLine(name, value string) string {
	return fmt.Sprintf(`export %s="%s"`, name, shellquote.QuoteDouble(value))
}

func unsetLine(name string) string {
	return "unset " + name
}

// runtimeApplyLine builds the eval line that invokes the hidden `track
// apply` subcommand for a PATH-style pipeline. The pipeline is JSON
// encoded and embedded as a double-quoted argument so that any
// ${...}/$NAME reference in an operation's value is expanded by the shell
// at evaluation time, exactly as for a plain export -- the subprocess
// then runs the already-expanded values through the real operation engine
// against the variable's live value and prints the resulting export/unset
// line for this eval to evaluate.
func runtimeApplyLine(name string, ops []operation.Operation) (string, error) {
	data, err := json.Marshal(ops)
	if err != nil {
		return "", fmt.Errorf("encode pipeline for %s: %w", name, err)
	}
	quoted := shellquote.QuoteDouble(string(data))
	return fmt.Sprintf(`eval "$(%s track apply --name %s --pipeline "%s")"`, binaryName, name, quoted), nil
}

func beginLine() string {
	return fmt.Sprintf("export %s=$(%s track begin)", state.SnapshotVarName, binaryName)
}

func endLine() string {
	return fmt.Sprintf(`eval "$(%s track end)"`, binaryName)
}

func restoreLine() string {
	return fmt.Sprintf(`eval "$(%s track restore)"`, binaryName)
}

func hookLines(hooks []profile.Hook) []string {
	lines := make([]string, 0, len(hooks)*2)
	for _, h := range hooks {
		lines = append(lines, "# "+h.Name, h.Script)
	}
	return lines
}
