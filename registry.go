package ecprops

import (
	"fmt"
	"maps"
	"slices"
)

// Registry resolves property keys to their definitions. Lookup is exact
// and case-sensitive, like all matching in this package. A populated
// Registry used read-only is safe for concurrent use; Register itself is
// construction-time API and is not synchronized.
type Registry struct {
	props map[string]Property
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{props: make(map[string]Property)}
}

// Builtin returns a registry holding the eight standard properties. A
// fresh registry is returned each call, so callers may extend it with
// their own definitions.
func Builtin() *Registry {
	r := NewRegistry()
	for _, p := range builtinProperties() {
		mustRegister(r, p)
	}
	return r
}

func mustRegister(r *Registry, p Property) {
	if err := r.Register(p); err != nil {
		panic(err)
	}
}

// Register adds p under its key. Registering the same key twice is an
// error.
func (r *Registry) Register(p Property) error {
	key := p.Key()
	if _, exists := r.props[key]; exists {
		return fmt.Errorf("property %q already registered", key)
	}
	r.props[key] = p
	return nil
}

// Lookup returns the definition registered under key.
func (r *Registry) Lookup(key string) (Property, bool) {
	p, ok := r.props[key]
	return p, ok
}

// Parse resolves key and parses raw with the matching definition.
// Unknown keys report not-ok, folding into the same failure mode as
// unrecognized values.
func (r *Registry) Parse(key, raw string) (any, bool) {
	p, ok := r.props[key]
	if !ok {
		return nil, false
	}
	return p.ParseAny(raw)
}

// Keys returns the registered keys in sorted order.
func (r *Registry) Keys() []string {
	return slices.Sorted(maps.Keys(r.props))
}
