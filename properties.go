package ecprops

// Properties is a raw key=value view of one resolved EditorConfig
// section. It wraps pairs the caller already has; locating, reading and
// merging .editorconfig files is out of scope for this package.
type Properties map[string]string

// Raw returns the string stored under key, unparsed.
func (p Properties) Raw(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Get looks up d's key in p and parses the stored value. A missing key
// and an unrecognized value are both reported as not-ok.
func Get[V any](p Properties, d Definition[V]) (V, bool) {
	raw, ok := p[d.Key()]
	if !ok {
		var zero V
		return zero, false
	}
	return d.ParseValue(raw)
}
