/*
Package data implements the tree-shaped values patterns are matched against.

A value is either an atom (number, string or symbol), a named constructor with a
fixed list of children, or a list of values:

    v := data.Cons("cons", data.Symbol("a"), data.List(data.Number(1), data.String("x")))
    fmt.Println(v)   // cons(:a, [1, "x"])

Values are immutable once built. *Value implements
pattern.Matchable[data.Atom, *data.Value]; the matcher binds captures to pointers
into the original tree, never to copies.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package data

import (
	"fmt"
	"strings"

	"github.com/npillmayer/treematch/pattern"
)

// Value is a node of a value tree.
type Value struct {
	shape    pattern.Shape
	atom     Atom
	name     string  // constructor name
	children []Value // children of constructors and lists
}

// Number creates a numeric atom value.
func Number(x float64) *Value {
	return &Value{shape: pattern.AtomShape, atom: NumberAtom(x)}
}

// String creates a string atom value.
func String(s string) *Value {
	return &Value{shape: pattern.AtomShape, atom: StringAtom(s)}
}

// Symbol creates a symbol atom value (:name in surface syntax).
func Symbol(s string) *Value {
	return &Value{shape: pattern.AtomShape, atom: SymbolAtom(s)}
}

// FromAtom creates an atom value.
func FromAtom(a Atom) *Value {
	return &Value{shape: pattern.AtomShape, atom: a}
}

// Cons creates a constructor value. The children are copied into the new value;
// later modifications of the arguments are not visible in the result.
func Cons(name string, children ...*Value) *Value {
	return &Value{shape: pattern.ConsShape, name: name, children: collect(children)}
}

// List creates a list value. The items are copied into the new value.
func List(items ...*Value) *Value {
	return &Value{shape: pattern.ListShape, children: collect(items)}
}

func collect(vs []*Value) []Value {
	if len(vs) == 0 {
		return nil
	}
	cs := make([]Value, len(vs))
	for i, v := range vs {
		assertThat(v != nil, "child #%d is nil", i)
		cs[i] = *v
	}
	return cs
}

// --- pattern.Matchable -----------------------------------------------------

var _ pattern.Matchable[Atom, *Value] = (*Value)(nil)

// Shape classifies v as atom, constructor or list.
func (v *Value) Shape() pattern.Shape {
	return v.shape
}

// AtomValue returns the atom of an atom value.
func (v *Value) AtomValue() Atom {
	return v.atom
}

// ConsName returns the name of a constructor value.
func (v *Value) ConsName() string {
	return v.name
}

// Len returns the number of children of a constructor or list.
func (v *Value) Len() int {
	return len(v.children)
}

// Child returns a reference to the i-th child of a constructor or list.
func (v *Value) Child(i int) *Value {
	assertThat(i >= 0 && i < len(v.children), "child index out of bounds: %d with length %d",
		i, len(v.children))
	return &v.children[i]
}

// Pattern returns the literal pattern matching exactly v.
func (v *Value) Pattern() pattern.Pattern[Atom] {
	return pattern.Literal[Atom](v)
}

// --- Inspection ------------------------------------------------------------

// IsAtom is true for atom values.
func (v *Value) IsAtom() bool {
	return v.shape == pattern.AtomShape
}

// IsCons is true for constructor values.
func (v *Value) IsCons() bool {
	return v.shape == pattern.ConsShape
}

// IsList is true for list values.
func (v *Value) IsList() bool {
	return v.shape == pattern.ListShape
}

// Children returns references to all children of a constructor or list.
func (v *Value) Children() []*Value {
	cs := make([]*Value, len(v.children))
	for i := range v.children {
		cs[i] = &v.children[i]
	}
	return cs
}

// Equal reports whether v and w are structurally equal.
func (v *Value) Equal(w *Value) bool {
	if v == w {
		return true
	}
	if v == nil || w == nil {
		return false
	}
	if v.shape != w.shape || v.atom != w.atom || v.name != w.name || len(v.children) != len(w.children) {
		return false
	}
	for i := range v.children {
		if !v.children[i].Equal(&w.children[i]) {
			return false
		}
	}
	return true
}

// String renders v in surface syntax.
func (v *Value) String() string {
	if v == nil {
		return "<nil>"
	}
	b := strings.Builder{}
	v.write(&b)
	return b.String()
}

func (v *Value) write(b *strings.Builder) {
	switch v.shape {
	case pattern.AtomShape:
		b.WriteString(v.atom.String())
		return
	case pattern.ConsShape:
		b.WriteString(v.name)
		b.WriteByte('(')
	case pattern.ListShape:
		b.WriteByte('[')
	}
	for i := range v.children {
		if i > 0 {
			b.WriteString(", ")
		}
		v.children[i].write(b)
	}
	if v.shape == pattern.ConsShape {
		b.WriteByte(')')
	} else {
		b.WriteByte(']')
	}
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("data: "+msg, msgargs...)
		panic(msg)
	}
}
