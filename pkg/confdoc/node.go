package confdoc

// Kind identifies the variant held by a Node.
type Kind int

// Node kinds.
const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindNull
	KindMap
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Node is one value in a configuration document. The set of implementations
// is closed: String, Number, Bool, Null and *Map.
type Node interface {
	Kind() Kind
	isNode()
}

// String is a text value.
type String string

// Kind implements Node.
func (String) Kind() Kind { return KindString }
func (String) isNode()    {}

// Bool is a boolean value.
type Bool bool

// Kind implements Node.
func (Bool) Kind() Kind { return KindBool }
func (Bool) isNode()    {}

// Null is the explicit absence of a value.
type Null struct{}

// Kind implements Node.
func (Null) Kind() Kind { return KindNull }
func (Null) isNode()    {}

// Equal reports whether two nodes hold the same variant and value.
// Maps are compared key by key in order.
func Equal(a, b Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Map:
		return av.Equal(b.(*Map))
	default:
		return a == b
	}
}

// toAny converts a node into plain Go values.
func toAny(n Node) any {
	switch v := n.(type) {
	case String:
		return string(v)
	case Number:
		if v.IsInt() {
			return v.Int64()
		}
		return v.Float64()
	case Bool:
		return bool(v)
	case *Map:
		return v.ToAny()
	default:
		return nil
	}
}
