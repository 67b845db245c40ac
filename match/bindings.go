package match

import (
	"fmt"
	"strings"
)

// Binding associates a capture name with a reference into the matched value.
type Binding[V any] struct {
	Name  string
	Value V
}

// Bindings is one solution of a match: the captures in the order they have
// been bound. Capture names are unique within one Bindings.
type Bindings[V any] []Binding[V]

// Get returns the value bound to name.
func (bs Bindings[V]) Get(name string) (V, bool) {
	for _, b := range bs {
		if b.Name == name {
			return b.Value, true
		}
	}
	var zero V
	return zero, false
}

// Names returns the capture names in binding order.
func (bs Bindings[V]) Names() []string {
	names := make([]string, len(bs))
	for i, b := range bs {
		names[i] = b.Name
	}
	return names
}

// Map collects the bindings into a map keyed by capture name.
func (bs Bindings[V]) Map() map[string]V {
	m := make(map[string]V, len(bs))
	for _, b := range bs {
		m[b.Name] = b.Value
	}
	return m
}

func (bs Bindings[V]) String() string {
	b := strings.Builder{}
	b.WriteByte('{')
	for i, binding := range bs {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprintf("%s = %v", binding.Name, binding.Value))
	}
	b.WriteByte('}')
	return b.String()
}
