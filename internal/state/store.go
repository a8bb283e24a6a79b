package state

import (
	"encoding/json"
	"sort"
)

// New returns an empty Store, as if no state variable were present yet.
func New() *Store {
	return &Store{records: map[string]VarRecord{}}
}

// Parse decodes raw (the state variable's JSON value) into a Store. A
// malformed or empty payload yields an empty Store rather than an error:
// state-variable corruption is a runtime tracker condition to recover
// from silently, not a fatal one.
func Parse(raw string) *Store {
	if raw == "" {
		return New()
	}
	var records map[string]VarRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return New()
	}
	if records == nil {
		records = map[string]VarRecord{}
	}
	return &Store{records: records}
}

// Update applies the Compare-and-Swap rule for a single
// variable: actual is its value observed in the ambient environment at the
// start of this load/diff, target is the value the overlay wants it set
// to. Both nil mean "unset".
//
//  1. name unknown to the store: first observation, actual is the user's
//     pristine value by definition.
//  2. actual equals the stored current: a clean consecutive load, keep the
//     stored original and advance current.
//  3. otherwise: the user changed the variable manually since the last
//     load; adopt their value as the new baseline and advance current.
func (s *Store) Update(name string, actual, target *string) {
	rec, ok := s.records[name]
	switch {
	case !ok:
		s.records[name] = VarRecord{Original: actual, Current: target}
	case equalPtr(actual, rec.Current):
		rec.Current = target
		s.records[name] = rec
	default:
		rec.Original = actual
		rec.Current = target
		s.records[name] = rec
	}
}

// Original returns the tracked variable's original value and whether it is
// tracked at all.
func (s *Store) Original(name string) (*string, bool) {
	rec, ok := s.records[name]
	if !ok {
		return nil, false
	}
	return rec.Original, true
}

// Current returns the tracked variable's current overlay value and
// whether it is tracked at all.
func (s *Store) Current(name string) (*string, bool) {
	rec, ok := s.records[name]
	if !ok {
		return nil, false
	}
	return rec.Current, true
}

// TrackedNames returns every tracked variable name, sorted for stable
// iteration: restore's emission order is otherwise unspecified but must be
// stable for a given state.
func (s *Store) TrackedNames() []string {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Serialize renders the store as the JSON object the state variable holds.
// encoding/json sorts map keys, so this is deterministic independent of Go
// map iteration order.
func (s *Store) Serialize() (string, error) {
	data, err := json.Marshal(s.records)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
