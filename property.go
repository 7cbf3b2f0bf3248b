package ecprops

import (
	"maps"
	"strconv"
)

// Property is the erased view of a property definition, usable in
// heterogeneous collections keyed by property name.
//
// ParseAny reports the same outcome as the typed ParseValue with the
// value boxed into any. A true ok with a nil value is a valid result for
// optional properties whose raw input is the explicit-absence sentinel.
type Property interface {
	Key() string
	ParseAny(raw string) (any, bool)
}

// Definition is one typed EditorConfig property: a canonical key plus
// the parse behavior for its raw string values.
//
// Definitions are immutable values. Parsing is pure and deterministic,
// so a single Definition may be shared by any number of goroutines
// without synchronization.
type Definition[V any] struct {
	key   string
	parse func(string) (V, bool)
}

// Key returns the canonical lowercase property key.
func (d Definition[V]) Key() string { return d.key }

// ParseValue parses raw exactly as written: no trimming, no case
// folding. It reports ok=false for every input outside the property's
// accepted set; there is no error channel and no panic for any input.
func (d Definition[V]) ParseValue(raw string) (V, bool) {
	if d.parse == nil {
		var zero V
		return zero, false
	}
	return d.parse(raw)
}

// ParseAny implements Property.
func (d Definition[V]) ParseAny(raw string) (any, bool) {
	v, ok := d.ParseValue(raw)
	if !ok {
		return nil, false
	}
	return v, true
}

// NewEnum builds a Definition whose accepted inputs are exactly the keys
// of table. The table is copied, so later mutation of the caller's map
// cannot change parse behavior.
func NewEnum[V any](key string, table map[string]V) Definition[V] {
	values := maps.Clone(table)
	return Definition[V]{
		key: key,
		parse: func(raw string) (V, bool) {
			v, ok := values[raw]
			return v, ok
		},
	}
}

// NewBool builds a Definition accepting exactly "true" and "false".
func NewBool(key string) Definition[bool] {
	return Definition[bool]{key: key, parse: parseStrictBool}
}

// NewUint builds a Definition accepting the strict decimal grammar:
// ASCII digits only, no sign, no surrounding space, no leading zeros
// beyond "0" itself.
func NewUint(key string) Definition[uint] {
	return Definition[uint]{key: key, parse: parseStrictUint}
}

// NewOptionalUint builds a Definition whose value may be explicitly
// absent: the sentinel token parses to (nil, true), the strict decimal
// grammar to a non-nil pointer, and anything else to not-ok. Sentinel
// matching is exact and case-sensitive like all other matching.
func NewOptionalUint(key, sentinel string) Definition[*uint] {
	return Definition[*uint]{
		key: key,
		parse: func(raw string) (*uint, bool) {
			if raw == sentinel {
				return nil, true
			}
			n, ok := parseStrictUint(raw)
			if !ok {
				return nil, false
			}
			return &n, true
		},
	}
}

func parseStrictBool(raw string) (bool, bool) {
	switch raw {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// parseStrictUint accepts a plain decimal rendering of a uint and
// nothing else. strconv.ParseUint at base 10 already rejects signs,
// whitespace, radix prefixes and digit separators; leading zeros are the
// one laxity it allows, so they are screened out first.
func parseStrictUint(raw string) (uint, bool) {
	if raw == "" || (len(raw) > 1 && raw[0] == '0') {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 0)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}
