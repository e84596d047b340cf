package formats

import (
	"strings"
	"unicode/utf8"

	"github.com/magiconair/properties"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// propertiesCodec handles Java style .properties files. The format is flat:
// every value is untyped text and goes through the scalar type inferencer.
type propertiesCodec struct{}

func (propertiesCodec) Format() Format { return FormatProperties }

func (propertiesCodec) Parse(text string) (*confdoc.Map, error) {
	loader := &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}
	p, err := loader.LoadBytes([]byte(text))
	if err != nil {
		line, msg := lineFromMessage(err.Error(), "properties: ")
		return nil, &confdoc.ParseError{Format: string(FormatProperties), Line: line, Message: msg, Err: err}
	}

	m := confdoc.NewMap()
	for _, key := range p.Keys() {
		value, _ := p.Get(key)
		m.Set(key, confdoc.InferNode(value))
	}
	return m, nil
}

// Serialize writes one key=value line per scalar. Nested maps have no
// native syntax and are flattened into dotted keys.
func (propertiesCodec) Serialize(m *confdoc.Map) (string, error) {
	var b strings.Builder
	seen := make(map[string]bool)
	if err := writeProperties(&b, m, "", seen); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeProperties(b *strings.Builder, m *confdoc.Map, prefix string, seen map[string]bool) error {
	for k, v := range m.All() {
		key := joinKey(prefix, k)
		if sub, ok := v.(*confdoc.Map); ok {
			if sub.Len() == 0 {
				return &confdoc.SerializeError{Format: string(FormatProperties), Key: key, Message: "empty section cannot be represented"}
			}
			if err := writeProperties(b, sub, key, seen); err != nil {
				return err
			}
			continue
		}

		value := confdoc.ScalarText(v)
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			return invalidUTF8(FormatProperties, key)
		}
		if seen[key] {
			return &confdoc.SerializeError{Format: string(FormatProperties), Key: key, Message: "duplicate key after flattening nested sections"}
		}
		seen[key] = true

		b.WriteString(escapePropertiesKey(key))
		b.WriteByte('=')
		b.WriteString(escapePropertiesValue(value))
		b.WriteByte('\n')
	}
	return nil
}

func escapePropertiesKey(s string) string {
	var b strings.Builder
	for i, r := range s {
		switch r {
		case '\\', '=', ':', ' ':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '#', '!':
			if i == 0 {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			writeEscapedControl(&b, r)
		}
	}
	return b.String()
}

func escapePropertiesValue(s string) string {
	var b strings.Builder
	leading := true
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case leading && r == ' ':
			b.WriteString(`\ `)
			continue
		default:
			writeEscapedControl(&b, r)
		}
		leading = false
	}
	return b.String()
}

func writeEscapedControl(b *strings.Builder, r rune) {
	switch r {
	case '\t':
		b.WriteString(`\t`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\f':
		b.WriteString(`\f`)
	default:
		b.WriteRune(r)
	}
}
