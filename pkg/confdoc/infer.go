package confdoc

import "strings"

// EntryType is the type tag carried by an editable Entry.
type EntryType string

// Entry types.
const (
	TypeString  EntryType = "string"
	TypeNumber  EntryType = "number"
	TypeBoolean EntryType = "boolean"
	TypeNull    EntryType = "null"
	TypeObject  EntryType = "object"
)

// IsValid reports whether t is one of the known entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case TypeString, TypeNumber, TypeBoolean, TypeNull, TypeObject:
		return true
	default:
		return false
	}
}

// ParseEntryType maps a user supplied type name to an EntryType.
// Unknown names map to the empty type.
func ParseEntryType(s string) EntryType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "string", "str", "text":
		return TypeString
	case "number", "num", "int", "float":
		return TypeNumber
	case "boolean", "bool":
		return TypeBoolean
	case "null", "nil":
		return TypeNull
	case "object", "map":
		return TypeObject
	default:
		return ""
	}
}

// Infer decides which scalar type raw text denotes. The first matching rule
// wins:
//
//  1. empty after trimming: string (empty is a valid value, never null)
//  2. exactly "true" or "false": boolean
//  3. exactly "null": null
//  4. a finite decimal number with nothing left over: number
//  5. anything else: string
func Infer(raw string) EntryType {
	t := strings.TrimSpace(raw)
	switch {
	case t == "":
		return TypeString
	case t == "true" || t == "false":
		return TypeBoolean
	case t == "null":
		return TypeNull
	case decimalPattern.MatchString(t):
		if _, err := ParseNumber(t); err == nil {
			return TypeNumber
		}
	}
	return TypeString
}

// InferNode materializes raw text as the node Infer selects for it.
// Strings keep their original, untrimmed text.
func InferNode(raw string) Node {
	switch Infer(raw) {
	case TypeBoolean:
		return Bool(strings.TrimSpace(raw) == "true")
	case TypeNull:
		return Null{}
	case TypeNumber:
		n, _ := ParseNumber(raw)
		return n
	default:
		return String(raw)
	}
}

// TypeOf returns the entry type describing n.
func TypeOf(n Node) EntryType {
	switch n.(type) {
	case Number:
		return TypeNumber
	case Bool:
		return TypeBoolean
	case Null, nil:
		return TypeNull
	case *Map:
		return TypeObject
	default:
		return TypeString
	}
}

// ScalarText returns the form-editable text for a scalar node. Maps have no
// scalar text and yield the empty string.
func ScalarText(n Node) string {
	switch v := n.(type) {
	case String:
		return string(v)
	case Number:
		return v.String()
	case Bool:
		if v {
			return "true"
		}
		return "false"
	case Null:
		return "null"
	default:
		return ""
	}
}
