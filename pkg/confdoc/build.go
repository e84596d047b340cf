package confdoc

import (
	"fmt"
	"strings"
)

// ToConfigMap rebuilds a document from edited sections.
//
// General entries become root keys; any other section becomes a root key
// (its RootKey) holding a map of the section's entries. Entries and sections
// with a blank key are skipped at every depth. String entries are re-inferred
// with Infer; entries of any other type are materialized from their tag.
func ToConfigMap(sections []Section) (*Map, error) {
	root := NewMap()
	for _, s := range sections {
		if s.General {
			if err := buildInto(root, s.Entries, nil); err != nil {
				return nil, err
			}
			continue
		}
		key := s.RootKey()
		if isBlank(key) {
			continue
		}
		sub := NewMap()
		if err := buildInto(sub, s.Entries, []string{key}); err != nil {
			return nil, err
		}
		root.Set(key, sub)
	}
	return root, nil
}

// BuildNode materializes a single entry.
func BuildNode(e Entry) (Node, error) {
	return buildNode(e, []string{e.Key})
}

func buildInto(dst *Map, entries []Entry, path []string) error {
	for _, e := range entries {
		if isBlank(e.Key) {
			continue
		}
		n, err := buildNode(e, childPath(path, e.Key))
		if err != nil {
			return err
		}
		dst.Set(e.Key, n)
	}
	return nil
}

func buildNode(e Entry, path []string) (Node, error) {
	if e.Type != TypeObject && len(e.Children) > 0 {
		return nil, &BuildError{Path: path, Message: fmt.Sprintf("%s entry cannot have children", e.Type)}
	}

	switch e.Type {
	case TypeObject:
		sub := NewMap()
		if err := buildInto(sub, e.Children, path); err != nil {
			return nil, err
		}
		return sub, nil
	case TypeBoolean:
		return Bool(strings.TrimSpace(e.RawValue) == "true"), nil
	case TypeNull:
		return Null{}, nil
	case TypeNumber:
		if isBlank(e.RawValue) {
			return Int(0), nil
		}
		n, err := ParseNumber(e.RawValue)
		if err != nil {
			return nil, &BuildError{Path: path, Message: "invalid number", Err: err}
		}
		return n, nil
	case TypeString, "":
		return InferNode(e.RawValue), nil
	default:
		return nil, &BuildError{Path: path, Message: fmt.Sprintf("unknown entry type %q", e.Type)}
	}
}

func childPath(path []string, key string) []string {
	out := make([]string, len(path), len(path)+1)
	copy(out, path)
	return append(out, key)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
