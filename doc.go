// Package ecprops provides typed parsing for the standard EditorConfig
// properties.
//
// Each property couples its canonical key (for example "indent_style")
// with a parser for the raw strings an EditorConfig section supplies.
// Matching is exact and case-sensitive, with no trimming or
// normalization. The only failure signal is the comma-ok boolean:
// inputs outside a property's accepted set yield the zero value and
// false. The parse path never returns errors, never panics and never
// logs.
//
// The package is purely computational and safe for concurrent use. It
// never touches the filesystem; locating and merging .editorconfig
// files is the caller's job, as is any key normalization.
package ecprops
