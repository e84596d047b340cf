// Package formats detects configuration file formats and converts between
// their text and the confdoc document model.
//
// # Supported Formats
//
//   - properties: Java style key=value files (server.properties)
//   - yaml: flat or nested YAML mappings (.yml, .yaml)
//   - json: JSON objects (.json)
//   - toml: TOML tables (.toml)
//
// The extension table is closed; Detect returns FormatUnknown for anything
// else and such files can only be edited as raw text.
//
// # Usage
//
//	format := formats.Detect("server.properties")
//	m, err := formats.Parse(format, text)
//	...
//	out, err := formats.Serialize(format, m)
//
// Each format is a Codec registered in a Registry; Parse and Serialize use
// the default registry. Codecs are stateless and safe for concurrent use.
//
// Input must be UTF-8. A leading UTF-8 byte order mark is dropped; UTF-16
// input and invalid byte sequences are reported as *confdoc.ParseError.
package formats
