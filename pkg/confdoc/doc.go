// Package confdoc provides the normalized document model behind the config
// file editor.
//
// A parsed configuration file is an ordered tree: a *Map of string keys to
// Node values, where a Node is a String, Number, Bool, Null or a nested *Map.
// Format-specific parsing and serialization lives in the formats subpackage;
// this package owns everything that is format independent:
//
//   - Infer and InferNode, the scalar type inferencer applied to untyped text
//   - ToSections, which projects a Map onto editable Sections and Entries
//   - ToConfigMap, which rebuilds a Map from edited Sections
//   - the error taxonomy shared by all formats (ParseError, BuildError,
//     SerializeError, ErrUnsupportedFormat)
//
// # Usage
//
//	m, err := formats.Parse(formats.FormatProperties, text)
//	if err != nil {
//	    // fall back to raw editing
//	}
//	sections := confdoc.ToSections(m)
//	// ... the UI edits sections ...
//	rebuilt, err := confdoc.ToConfigMap(sections)
//	out, err := formats.Serialize(formats.FormatProperties, rebuilt)
//
// # Type coercion on save
//
// Entries typed as string are re-inferred when rebuilt, so a text field
// holding "true" is written back as a boolean and "42" as a number. Entries
// carrying any other type tag are written using that tag.
//
// All functions are pure and safe for concurrent use on distinct values.
package confdoc
