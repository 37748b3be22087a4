package weaver

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// FieldSet selects a list of keys by name, with some keys excluded and some
// expanded into sub-selections.
//
//	Keys("id", "title", "author", "secret").
//		Exclude("secret").
//		Merge("author", NewField("name"))
//
// renders `id title author { name }`.
type FieldSet struct {
	keys []string
	// merged holds the selection body of expanded keys.
	merged map[string]string
	err    error
}

// Keys returns a field set selecting keys verbatim, in order.
func Keys(keys ...string) FieldSet {
	return FieldSet{keys: append([]string(nil), keys...)}
}

// Keys appends keys to the set.
func (s FieldSet) Keys(keys ...string) FieldSet {
	s.keys = append(slices.Clip(s.keys), keys...)
	return s
}

// Exclude removes keys from the set. Expansions of removed keys are dropped
// with them.
func (s FieldSet) Exclude(keys ...string) FieldSet {
	kept := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		if !slices.Contains(keys, key) {
			kept = append(kept, key)
		}
	}
	s.keys = kept

	merged := make(map[string]string, len(s.merged))
	for k, v := range s.merged {
		if !slices.Contains(keys, k) {
			merged[k] = v
		}
	}
	s.merged = merged
	return s
}

// Merge expands key into `key { children }`. Merging a key that is not in the
// set has no effect; a key whose children compose to nothing is removed.
func (s FieldSet) Merge(key string, children ...Node) FieldSet {
	if !slices.Contains(s.keys, key) {
		return s
	}

	body, err := compose(children)
	if err != nil {
		s.err = errors.Join(s.err, fmt.Errorf("failed to compose merged key `%s`: %w", key, err))
	}

	merged := make(map[string]string, len(s.merged)+1)
	for k, v := range s.merged {
		merged[k] = v
	}
	merged[key] = body
	s.merged = merged
	return s
}

func (s FieldSet) String() string {
	parts := make([]string, 0, len(s.keys))
	for _, key := range s.keys {
		body, ok := s.merged[key]
		switch {
		case !ok:
			parts = append(parts, key)
		case body != "":
			parts = append(parts, selection(key, body))
		}
	}
	return strings.Join(parts, " ")
}

func (s FieldSet) Err() error {
	return s.err
}
