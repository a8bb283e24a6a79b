package operation

import "fmt"

// ParseRecord normalizes a single decoded YAML mapping (already unmarshaled
// into map[string]any, as gopkg.in/yaml.v3 does for an interface{} target)
// into an Operation, validating the tag and the presence/absence of the
// fields each tag requires.
func ParseRecord(m map[string]any) (Operation, error) {
	rawOp, ok := m["op"]
	if !ok {
		return Operation{}, fmt.Errorf("operation record missing required %q field", "op")
	}
	opStr, ok := rawOp.(string)
	if !ok {
		return Operation{}, fmt.Errorf("operation record field %q must be a string, got %T", "op", rawOp)
	}

	tag := Tag(opStr)
	switch tag {
	case Set, Unset, Prepend, Append, Remove:
	default:
		return Operation{}, fmt.Errorf("unknown operation %q: must be one of set, unset, prepend, append, remove", opStr)
	}

	rawValue, hasValue := m["value"]
	needsValue := tag != Unset
	switch {
	case needsValue && !hasValue:
		return Operation{}, fmt.Errorf("operation %q requires a %q field", tag, "value")
	case !needsValue && hasValue:
		return Operation{}, fmt.Errorf("operation %q must not carry a %q field", tag, "value")
	}

	op := Operation{Op: tag, Separator: DefaultSeparator}
	if hasValue {
		op.Value = coerceString(rawValue)
	}

	if tag == Prepend || tag == Append || tag == Remove {
		if rawSep, ok := m["separator"]; ok {
			sep := coerceString(rawSep)
			if sep == "" {
				return Operation{}, fmt.Errorf("operation %q: %q must not be empty", tag, "separator")
			}
			op.Separator = sep
		}
	} else if _, ok := m["separator"]; ok {
		return Operation{}, fmt.Errorf("operation %q must not carry a %q field", tag, "separator")
	}

	return op, nil
}

// NormalizeDirective accepts the raw decoded YAML value of a variable entry
// in a profile's env map and expands it into an ordered operation pipeline.
// A directive is exactly one of: a bare string (shorthand for set), null
// (shorthand for unset), a single operation mapping, or a sequence of
// operation mappings applied in order.
func NormalizeDirective(raw any) ([]Operation, error) {
	switch v := raw.(type) {
	case nil:
		return []Operation{{Op: Unset}}, nil
	case string:
		return []Operation{{Op: Set, Value: v}}, nil
	case map[string]any:
		op, err := ParseRecord(v)
		if err != nil {
			return nil, err
		}
		return []Operation{op}, nil
	case []any:
		if len(v) == 0 {
			return nil, fmt.Errorf("operation pipeline must not be empty")
		}
		ops := make([]Operation, 0, len(v))
		for i, item := range v {
			m, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("pipeline step %d: must be an operation mapping, got %T", i, item)
			}
			op, err := ParseRecord(m)
			if err != nil {
				return nil, fmt.Errorf("pipeline step %d: %w", i, err)
			}
			ops = append(ops, op)
		}
		return ops, nil
	default:
		return nil, fmt.Errorf("invalid env value: expected string, null, mapping, or sequence, got %T", raw)
	}
}

// coerceString converts a decoded YAML scalar to its canonical string form.
// YAML's "value: 8080" decodes to int64, "value: true" to bool, and so on;
// envlit's wire representation is always a string once the pipeline runs.
func coerceString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
