package formats

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// Format identifies a supported configuration file format.
type Format string

// Supported formats.
const (
	FormatUnknown    Format = ""
	FormatProperties Format = "properties" // Java style key=value files
	FormatYAML       Format = "yaml"       // YAML mappings (the flat-mapping format)
	FormatJSON       Format = "json"       // JSON objects
	FormatTOML       Format = "toml"       // TOML tables
)

// extensions is the closed table mapping file extensions to formats.
var extensions = map[string]Format{
	".properties": FormatProperties,
	".yml":        FormatYAML,
	".yaml":       FormatYAML,
	".json":       FormatJSON,
	".toml":       FormatTOML,
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid returns true if the format is a known format.
func (f Format) IsValid() bool {
	switch f {
	case FormatProperties, FormatYAML, FormatJSON, FormatTOML:
		return true
	default:
		return false
	}
}

// Detect maps a file path to its format using the extension, ignoring case.
// Returns FormatUnknown for extensions outside the table; it never guesses
// from content.
func Detect(path string) Format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Lookup is Detect returning confdoc.ErrUnsupportedFormat for unknown
// extensions.
func Lookup(path string) (Format, error) {
	f := Detect(path)
	if f == FormatUnknown {
		return FormatUnknown, fmt.Errorf("%w: %s", confdoc.ErrUnsupportedFormat, path)
	}
	return f, nil
}

// ParseFormat parses a format name into a Format.
// Returns FormatUnknown for unrecognized names.
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "properties", "props":
		return FormatProperties
	case "yaml", "yml", "flat-mapping":
		return FormatYAML
	case "json":
		return FormatJSON
	case "toml":
		return FormatTOML
	default:
		return FormatUnknown
	}
}

// AllFormats returns every supported format.
func AllFormats() []Format {
	return []Format{
		FormatProperties,
		FormatYAML,
		FormatJSON,
		FormatTOML,
	}
}

// Extensions returns the extensions mapped to f.
func Extensions(f Format) []string {
	var exts []string
	for ext, format := range extensions {
		if format == f {
			exts = append(exts, ext)
		}
	}
	slices.Sort(exts)
	return exts
}
