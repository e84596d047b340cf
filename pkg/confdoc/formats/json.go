package formats

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// jsonCodec handles JSON objects. JSON values carry their own types, so a
// JSON string "42" stays a string. Arrays are outside the supported subset.
type jsonCodec struct{}

func (jsonCodec) Format() Format { return FormatJSON }

var ojgLocation = regexp.MustCompile(`^(.*?)\s+at (\d+):(\d+)$`)

func (jsonCodec) Parse(text string) (*confdoc.Map, error) {
	if strings.TrimSpace(text) == "" {
		return confdoc.NewMap(), nil
	}
	if _, err := oj.ParseString(text); err != nil {
		perr := &confdoc.ParseError{Format: string(FormatJSON), Message: err.Error(), Err: err}
		var ojErr *oj.ParseError
		if errors.As(err, &ojErr) {
			perr.Message, perr.Line, perr.Column = ojErr.Message, ojErr.Line, ojErr.Column
		} else if loc := ojgLocation.FindStringSubmatch(err.Error()); loc != nil {
			perr.Message = loc[1]
			perr.Line, _ = strconv.Atoi(loc[2])
			perr.Column, _ = strconv.Atoi(loc[3])
		}
		return nil, perr
	}

	root := gjson.Parse(text)
	if !root.IsObject() {
		start := len(text) - len(strings.TrimLeft(text, " \t\r\n"))
		line, col := lineColumn(text, start)
		return nil, &confdoc.ParseError{Format: string(FormatJSON), Line: line, Column: col, Message: "top-level value must be an object"}
	}
	return jsonObject(text, root)
}

func jsonObject(text string, obj gjson.Result) (*confdoc.Map, error) {
	m := confdoc.NewMap()
	var err error
	obj.ForEach(func(key, value gjson.Result) bool {
		var n confdoc.Node
		n, err = jsonValue(text, value)
		if err != nil {
			return false
		}
		m.Set(key.String(), n)
		return true
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func jsonValue(text string, v gjson.Result) (confdoc.Node, error) {
	switch v.Type {
	case gjson.Null:
		return confdoc.Null{}, nil
	case gjson.True:
		return confdoc.Bool(true), nil
	case gjson.False:
		return confdoc.Bool(false), nil
	case gjson.String:
		return confdoc.String(v.Str), nil
	case gjson.Number:
		n, err := confdoc.ParseNumber(v.Raw)
		if err != nil {
			return nil, jsonError(text, v, err.Error())
		}
		return n, nil
	default:
		if v.IsObject() {
			return jsonObject(text, v)
		}
		return nil, jsonError(text, v, "arrays are not supported")
	}
}

func jsonError(text string, v gjson.Result, msg string) error {
	perr := &confdoc.ParseError{Format: string(FormatJSON), Message: msg}
	if v.Index > 0 {
		perr.Line, perr.Column = lineColumn(text, v.Index)
	}
	return perr
}

func (jsonCodec) Serialize(m *confdoc.Map) (string, error) {
	var b strings.Builder
	if err := writeJSONObject(&b, m, ""); err != nil {
		return "", err
	}
	return string(pretty.Pretty([]byte(b.String()))), nil
}

func writeJSONObject(b *strings.Builder, m *confdoc.Map, prefix string) error {
	b.WriteByte('{')
	first := true
	for k, v := range m.All() {
		key := joinKey(prefix, k)
		if !first {
			b.WriteByte(',')
		}
		first = false

		if !utf8.ValidString(k) {
			return invalidUTF8(FormatJSON, key)
		}
		writeJSONString(b, k)
		b.WriteByte(':')

		switch val := v.(type) {
		case *confdoc.Map:
			if err := writeJSONObject(b, val, key); err != nil {
				return err
			}
		case confdoc.String:
			if !utf8.ValidString(string(val)) {
				return invalidUTF8(FormatJSON, key)
			}
			writeJSONString(b, string(val))
		case confdoc.Number, confdoc.Bool:
			b.WriteString(confdoc.ScalarText(val))
		default:
			b.WriteString("null")
		}
	}
	b.WriteByte('}')
	return nil
}

// writeJSONString writes s as a JSON string literal. Only the characters
// JSON requires are escaped, so text such as "<b>&</b>" is kept readable.
func writeJSONString(b *strings.Builder, s string) {
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
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}
