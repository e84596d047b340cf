package formats

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// tomlCodec handles TOML documents made of scalars and tables. Arrays and
// date-times are outside the supported subset; TOML has no null, so null
// values are omitted when serializing.
type tomlCodec struct{}

func (tomlCodec) Format() Format { return FormatTOML }

func (tomlCodec) Parse(text string) (*confdoc.Map, error) {
	var raw map[string]any
	md, err := toml.Decode(text, &raw)
	if err != nil {
		perr := &confdoc.ParseError{Format: string(FormatTOML), Message: err.Error(), Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			perr.Message = tomlErr.Message
			perr.Line = tomlErr.Position.Line
			if tomlErr.Position.Start > 0 {
				_, perr.Column = lineColumn(text, tomlErr.Position.Start)
			}
		}
		return nil, perr
	}

	// Decoding into a map loses document order; MetaData.Keys restores it.
	m := confdoc.NewMap()
	for _, key := range md.Keys() {
		value, ok := tomlLookup(raw, key)
		if !ok {
			continue
		}
		node, err := tomlValue(key, value)
		if err != nil {
			return nil, err
		}
		tomlSet(m, key, node)
	}
	return m, nil
}

func tomlLookup(raw map[string]any, key toml.Key) (any, bool) {
	var cur any = raw
	for _, part := range key {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = table[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func tomlValue(key toml.Key, v any) (confdoc.Node, error) {
	switch val := v.(type) {
	case map[string]any:
		return confdoc.NewMap(), nil
	case string:
		return confdoc.String(val), nil
	case bool:
		return confdoc.Bool(val), nil
	case int64:
		return confdoc.Int(val), nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return nil, tomlKeyError(key, "non-finite numbers are not supported")
		}
		return confdoc.Float(val), nil
	case []any, []map[string]any:
		return nil, tomlKeyError(key, "arrays are not supported")
	default:
		return nil, tomlKeyError(key, fmt.Sprintf("%T values are not supported", v))
	}
}

// tomlSet stores node at key, creating intermediate tables. Tables that
// already exist are kept so their entries survive.
func tomlSet(m *confdoc.Map, key toml.Key, node confdoc.Node) {
	cur := m
	for _, part := range key[:len(key)-1] {
		next, ok := cur.Get(part)
		sub, isMap := next.(*confdoc.Map)
		if !ok || !isMap {
			sub = confdoc.NewMap()
			cur.Set(part, sub)
		}
		cur = sub
	}
	last := key[len(key)-1]
	if _, isMap := node.(*confdoc.Map); isMap {
		if existing, ok := cur.Get(last); ok {
			if _, alreadyMap := existing.(*confdoc.Map); alreadyMap {
				return
			}
		}
	}
	cur.Set(last, node)
}

func tomlKeyError(key toml.Key, msg string) error {
	return &confdoc.ParseError{Format: string(FormatTOML), Message: fmt.Sprintf("%s: %s", key.String(), msg)}
}

func (tomlCodec) Serialize(m *confdoc.Map) (string, error) {
	var b strings.Builder
	if err := writeTOMLTable(&b, m, nil); err != nil {
		return "", err
	}
	return b.String(), nil
}

// writeTOMLTable writes the scalars of m, then each sub-table under its own
// header. TOML requires a table's plain keys before any nested header.
func writeTOMLTable(b *strings.Builder, m *confdoc.Map, path []string) error {
	for k, v := range m.All() {
		if _, ok := v.(*confdoc.Map); ok {
			continue
		}
		dotted := strings.Join(append(path[:len(path):len(path)], k), ".")
		if !utf8.ValidString(k) {
			return invalidUTF8(FormatTOML, dotted)
		}
		var value string
		switch val := v.(type) {
		case confdoc.Null:
			continue
		case confdoc.String:
			if !utf8.ValidString(string(val)) {
				return invalidUTF8(FormatTOML, dotted)
			}
			value = tomlString(string(val))
		case confdoc.Number:
			value = val.String()
			if !val.IsInt() && !strings.ContainsAny(value, ".eE") {
				value += ".0"
			}
		default:
			value = confdoc.ScalarText(val)
		}
		b.WriteString(tomlKey(k))
		b.WriteString(" = ")
		b.WriteString(value)
		b.WriteByte('\n')
	}

	for k, v := range m.All() {
		sub, ok := v.(*confdoc.Map)
		if !ok {
			continue
		}
		if !utf8.ValidString(k) {
			return invalidUTF8(FormatTOML, strings.Join(append(path[:len(path):len(path)], k), "."))
		}
		subPath := append(path[:len(path):len(path)], k)
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteByte('[')
		for i, part := range subPath {
			if i > 0 {
				b.WriteByte('.')
			}
			b.WriteString(tomlKey(part))
		}
		b.WriteString("]\n")
		if err := writeTOMLTable(b, sub, subPath); err != nil {
			return err
		}
	}
	return nil
}

var bareTOMLKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

func tomlKey(k string) string {
	if bareTOMLKey.MatchString(k) {
		return k
	}
	return tomlString(k)
}

func tomlString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
