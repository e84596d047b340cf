package formats

import (
	"bytes"
	"fmt"
	"math"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// yamlCodec handles YAML mappings. Plain scalars are typed by YAML's own
// core schema resolution; quoted and block scalars are always strings.
// Sequences, anchors and aliases are outside the supported subset.
type yamlCodec struct{}

func (yamlCodec) Format() Format { return FormatYAML }

func (yamlCodec) Parse(text string) (*confdoc.Map, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		line, msg := lineFromMessage(err.Error(), "yaml: ")
		return nil, &confdoc.ParseError{Format: string(FormatYAML), Line: line, Message: msg, Err: err}
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return confdoc.NewMap(), nil
		}
		root = root.Content[0]
	}
	switch root.Kind {
	case 0:
		return confdoc.NewMap(), nil
	case yaml.MappingNode:
		return yamlMapping(root)
	case yaml.ScalarNode:
		if root.ShortTag() == "!!null" {
			return confdoc.NewMap(), nil
		}
	}
	return nil, yamlNodeError(root, "top-level value must be a mapping")
}

func yamlMapping(n *yaml.Node) (*confdoc.Map, error) {
	if err := yamlCheckAnchors(n); err != nil {
		return nil, err
	}
	m := confdoc.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, yamlNodeError(keyNode, "mapping keys must be scalars")
		}
		if keyNode.ShortTag() == "!!merge" {
			return nil, yamlNodeError(keyNode, "merge keys are not supported")
		}
		value, err := yamlValue(valueNode)
		if err != nil {
			return nil, err
		}
		m.Set(keyNode.Value, value)
	}
	return m, nil
}

func yamlValue(n *yaml.Node) (confdoc.Node, error) {
	if err := yamlCheckAnchors(n); err != nil {
		return nil, err
	}
	switch n.Kind {
	case yaml.MappingNode:
		return yamlMapping(n)
	case yaml.SequenceNode:
		return nil, yamlNodeError(n, "sequences are not supported")
	case yaml.ScalarNode:
		return yamlScalar(n)
	default:
		return nil, yamlNodeError(n, "unsupported node")
	}
}

func yamlCheckAnchors(n *yaml.Node) error {
	if n.Kind == yaml.AliasNode {
		return yamlNodeError(n, "aliases are not supported")
	}
	if n.Anchor != "" {
		return yamlNodeError(n, "anchors are not supported")
	}
	return nil
}

func yamlScalar(n *yaml.Node) (confdoc.Node, error) {
	const quoted = yaml.DoubleQuotedStyle | yaml.SingleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle
	if n.Style&quoted != 0 {
		return confdoc.String(n.Value), nil
	}

	switch n.ShortTag() {
	case "!!null":
		return confdoc.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, yamlNodeError(n, err.Error())
		}
		return confdoc.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return confdoc.Int(i), nil
		}
		return yamlFloat(n)
	case "!!float":
		return yamlFloat(n)
	default:
		return confdoc.String(n.Value), nil
	}
}

func yamlFloat(n *yaml.Node) (confdoc.Node, error) {
	var f float64
	if err := n.Decode(&f); err != nil {
		return nil, yamlNodeError(n, err.Error())
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, yamlNodeError(n, fmt.Sprintf("non-finite number %q is not supported", n.Value))
	}
	return confdoc.Float(f), nil
}

func yamlNodeError(n *yaml.Node, msg string) error {
	return &confdoc.ParseError{Format: string(FormatYAML), Line: n.Line, Column: n.Column, Message: msg}
}

func (yamlCodec) Serialize(m *confdoc.Map) (string, error) {
	root, err := yamlNodeOf(m, "")
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return "", &confdoc.SerializeError{Format: string(FormatYAML), Message: err.Error()}
	}
	if err := enc.Close(); err != nil {
		return "", &confdoc.SerializeError{Format: string(FormatYAML), Message: err.Error()}
	}
	return buf.String(), nil
}

func yamlNodeOf(m *confdoc.Map, prefix string) (*yaml.Node, error) {
	out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for k, v := range m.All() {
		key := joinKey(prefix, k)
		if !utf8.ValidString(k) {
			return nil, invalidUTF8(FormatYAML, key)
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}

		var valueNode *yaml.Node
		switch val := v.(type) {
		case *confdoc.Map:
			sub, err := yamlNodeOf(val, key)
			if err != nil {
				return nil, err
			}
			valueNode = sub
		case confdoc.String:
			if !utf8.ValidString(string(val)) {
				return nil, invalidUTF8(FormatYAML, key)
			}
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: string(val)}
		case confdoc.Number:
			tag := "!!float"
			if val.IsInt() {
				tag = "!!int"
			}
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: val.String()}
		case confdoc.Bool:
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: confdoc.ScalarText(val)}
		default:
			valueNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
		}
		out.Content = append(out.Content, keyNode, valueNode)
	}
	return out, nil
}
