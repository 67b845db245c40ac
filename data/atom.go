package data

import (
	"strconv"
	"strings"
)

// AtomKind discriminates atoms.
type AtomKind uint8

// Kinds of atoms.
const (
	NumberKind AtomKind = iota
	StringKind
	SymbolKind
)

// Atom is an indivisible, comparable leaf value. Two atoms are equal if they
// are of the same kind and carry the same payload.
type Atom struct {
	kind AtomKind
	num  float64
	text string
}

// NumberAtom creates a numeric atom.
func NumberAtom(x float64) Atom {
	return Atom{kind: NumberKind, num: x}
}

// StringAtom creates a string atom.
func StringAtom(s string) Atom {
	return Atom{kind: StringKind, text: s}
}

// SymbolAtom creates a symbol atom.
func SymbolAtom(s string) Atom {
	return Atom{kind: SymbolKind, text: s}
}

// Kind returns the kind of a.
func (a Atom) Kind() AtomKind {
	return a.kind
}

// Number returns the payload of a numeric atom.
func (a Atom) Number() float64 {
	return a.num
}

// Text returns the payload of a string or symbol atom.
func (a Atom) Text() string {
	return a.text
}

// String renders a in surface syntax: 1.5, "text" or :symbol.
func (a Atom) String() string {
	switch a.kind {
	case NumberKind:
		return strconv.FormatFloat(a.num, 'g', -1, 64)
	case StringKind:
		return Quote(a.text)
	case SymbolKind:
		return ":" + a.text
	}
	return "?"
}

// Quote puts s in double quotes, escaping the characters the surface syntax has
// escape codes for.
func Quote(s string) string {
	b := strings.Builder{}
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\\':
			b.WriteString(`\\`)
		case 0:
			b.WriteString(`\0`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
