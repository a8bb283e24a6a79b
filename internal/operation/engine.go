package operation

import (
	"fmt"
	"strings"
)

// resolveSeparator returns op.Separator, falling back to DefaultSeparator
// when the operation was constructed without one.
func resolveSeparator(op Operation) string {
	if op.Separator == "" {
		return DefaultSeparator
	}
	return op.Separator
}

// Apply performs a single operation against current, the variable's present
// value, where a nil current means the variable is unset. It returns the
// variable's new value under the same convention.
//
// Apply trusts that op was produced by ParseRecord/NormalizeDirective (or
// constructed with an equivalent invariant): an unrecognized Tag here means
// a validated pipeline reached the engine unvalidated, which is a caller
// bug rather than a user input error.
func Apply(current *string, op Operation) (*string, error) {
	switch op.Op {
	case Set:
		v := op.Value
		return &v, nil
	case Unset:
		return nil, nil
	case Prepend:
		return join(current, op, true), nil
	case Append:
		return join(current, op, false), nil
	case Remove:
		return remove(current, op), nil
	default:
		return nil, fmt.Errorf("operation: unrecognized tag %q reached engine", op.Op)
	}
}

// ApplyPipeline threads a variable's value through an ordered sequence of
// operations, each seeing the previous operation's result.
func ApplyPipeline(initial *string, ops []Operation) (*string, error) {
	current := initial
	for i, op := range ops {
		next, err := Apply(current, op)
		if err != nil {
			return nil, fmt.Errorf("pipeline step %d: %w", i, err)
		}
		current = next
	}
	return current, nil
}

func join(current *string, op Operation, prepend bool) *string {
	if current == nil || *current == "" {
		v := op.Value
		return &v
	}
	sep := resolveSeparator(op)
	var v string
	if prepend {
		v = op.Value + sep + *current
	} else {
		v = *current + sep + op.Value
	}
	return &v
}

func remove(current *string, op Operation) *string {
	if current == nil || *current == "" {
		return nil
	}
	sep := resolveSeparator(op)
	parts := strings.Split(*current, sep)
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == op.Value {
			continue
		}
		kept = append(kept, p)
	}
	if len(kept) == 0 {
		return nil
	}
	joined := strings.Join(kept, sep)
	return &joined
}
