package confdoc

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an ordered mapping of unique string keys to nodes. Iteration follows
// insertion order. The zero value is an empty map ready to use.
type Map struct {
	om *orderedmap.OrderedMap[string, Node]
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{om: orderedmap.New[string, Node]()}
}

// Kind implements Node.
func (*Map) Kind() Kind { return KindMap }
func (*Map) isNode()    {}

// Len returns the number of keys.
func (m *Map) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Node, bool) {
	if m == nil || m.om == nil {
		return nil, false
	}
	return m.om.Get(key)
}

// Set stores v under key. An existing key keeps its position and takes the
// new value, which gives duplicate keys last-one-wins semantics. A nil v is
// stored as Null.
func (m *Map) Set(key string, v Node) {
	if m.om == nil {
		m.om = orderedmap.New[string, Node]()
	}
	if v == nil {
		v = Null{}
	}
	m.om.Set(key, v)
}

// Delete removes key and reports whether it was present.
func (m *Map) Delete(key string) bool {
	if m == nil || m.om == nil {
		return false
	}
	_, ok := m.om.Delete(key)
	return ok
}

// Keys returns the keys in order.
func (m *Map) Keys() []string {
	keys := make([]string, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// All iterates over the entries in order.
func (m *Map) All() iter.Seq2[string, Node] {
	return func(yield func(string, Node) bool) {
		if m == nil || m.om == nil {
			return
		}
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Equal reports whether both maps hold the same keys, in the same order,
// with equal values.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	keys := o.Keys()
	i := 0
	for k, v := range m.All() {
		if keys[i] != k {
			return false
		}
		v2, _ := o.Get(k)
		if !Equal(v, v2) {
			return false
		}
		i++
	}
	return true
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	out := NewMap()
	for k, v := range m.All() {
		if sub, ok := v.(*Map); ok {
			v = sub.Clone()
		}
		out.Set(k, v)
	}
	return out
}

// ToAny converts the map into plain Go values: string, int64, float64, bool,
// nil and nested map[string]any. Key order is lost.
func (m *Map) ToAny() map[string]any {
	out := make(map[string]any, m.Len())
	for k, v := range m.All() {
		out[k] = toAny(v)
	}
	return out
}
