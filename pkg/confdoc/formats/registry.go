package formats

import (
	"fmt"
	"slices"
	"sync"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// Codec parses and serializes one format.
type Codec interface {
	// Format returns the format handled by this codec.
	Format() Format

	// Parse converts UTF-8 text into a document. Malformed input yields a
	// *confdoc.ParseError.
	Parse(text string) (*confdoc.Map, error)

	// Serialize renders a document. It returns the complete text or an
	// error, never partial output.
	Serialize(m *confdoc.Map) (string, error)
}

// Registry maps formats to codecs.
type Registry struct {
	mu     sync.RWMutex
	codecs map[Format]Codec
}

// defaultRegistry holds the built-in codecs.
var defaultRegistry = NewRegistry(
	propertiesCodec{},
	yamlCodec{},
	jsonCodec{},
	tomlCodec{},
)

// NewRegistry returns a registry holding the given codecs.
func NewRegistry(codecs ...Codec) *Registry {
	r := &Registry{codecs: make(map[Format]Codec, len(codecs))}
	for _, c := range codecs {
		r.Register(c)
	}
	return r
}

// Default returns the registry with the built-in codecs.
func Default() *Registry {
	return defaultRegistry
}

// Parse parses text with the default registry.
func Parse(format Format, text string) (*confdoc.Map, error) {
	return defaultRegistry.Parse(format, text)
}

// Serialize serializes m with the default registry.
func Serialize(format Format, m *confdoc.Map) (string, error) {
	return defaultRegistry.Serialize(format, m)
}

// Register adds a codec, replacing any codec for the same format.
func (r *Registry) Register(c Codec) {
	if c == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.codecs[c.Format()] = c
}

// Get returns the codec for format, or nil.
func (r *Registry) Get(format Format) Codec {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.codecs[format]
}

// Formats returns the registered formats in sorted order.
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Format, 0, len(r.codecs))
	for f := range r.codecs {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Parse checks the text encoding and parses it with the codec for format.
func (r *Registry) Parse(format Format, text string) (*confdoc.Map, error) {
	c := r.Get(format)
	if c == nil {
		return nil, fmt.Errorf("%w: %q", confdoc.ErrUnsupportedFormat, format)
	}
	text, err := decodeText(format, text)
	if err != nil {
		return nil, err
	}
	return c.Parse(text)
}

// Serialize renders m with the codec for format. A nil map serializes as an
// empty document.
func (r *Registry) Serialize(format Format, m *confdoc.Map) (string, error) {
	c := r.Get(format)
	if c == nil {
		return "", fmt.Errorf("%w: %q", confdoc.ErrUnsupportedFormat, format)
	}
	if m == nil {
		m = confdoc.NewMap()
	}
	return c.Serialize(m)
}
