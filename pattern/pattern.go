package pattern

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants of a pattern.
type Kind uint8

// Pattern variants.
const (
	AtomKind     Kind = iota // literal atom
	FailKind                 // never matches
	WildKind                 // _
	CaptureKind              // x
	ConsKind                 // name(p, …)
	ExactKind                // [p, …]
	ListPathKind             // [| p, … |]
	NextKind                 // ^
	PathKind                 // {| p, … |}
	AndKind                  // p.and(q)
	OrKind                   // p.or(q)
	TemplateKind             // %x
)

var kindNames = [...]string{"atom", "fail", "wild", "capture", "cons", "exact",
	"list-path", "next", "path", "and", "or", "template"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Pattern is a structural description of values with atoms of type T.
// Patterns are immutable; the zero value is not a valid pattern, use one
// of the constructor functions.
type Pattern[T comparable] struct {
	kind   Kind
	atom   T
	name   string       // name of capture, template or constructor
	params []Pattern[T] // cons params, list items, path steps, operands of and/or
}

// --- Constructors ----------------------------------------------------------

// Atom matches an atom equal to x.
func Atom[T comparable](x T) Pattern[T] {
	return Pattern[T]{kind: AtomKind, atom: x}
}

// Fail never matches.
func Fail[T comparable]() Pattern[T] {
	return Pattern[T]{kind: FailKind}
}

// Wild matches anything and binds nothing.
func Wild[T comparable]() Pattern[T] {
	return Pattern[T]{kind: WildKind}
}

// Capture matches anything and binds name to the matched value.
func Capture[T comparable](name string) Pattern[T] {
	return Pattern[T]{kind: CaptureKind, name: name}
}

// Cons matches a constructor value with the same name and the same number
// of children, matching children against params.
func Cons[T comparable](name string, params ...Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: ConsKind, name: name, params: params}
}

// Exact matches a list of exactly len(items) values, element-wise.
func Exact[T comparable](items ...Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: ExactKind, params: items}
}

// ListPath matches every contiguous window of len(items) values of a list.
func ListPath[T comparable](items ...Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: ListPathKind, params: items}
}

// Next marks a continuation point of a path step. It is valid inside of a
// Path only.
func Next[T comparable]() Pattern[T] {
	return Pattern[T]{kind: NextKind}
}

// Path matches steps one after the other: every Next produced by step i
// becomes a focus for step i+1.
func Path[T comparable](steps ...Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: PathKind, params: steps}
}

// And matches if both a and b match the same value.
func And[T comparable](a, b Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: AndKind, params: []Pattern[T]{a, b}}
}

// Or matches if any of a or b match the same value. Both contribute results.
func Or[T comparable](a, b Pattern[T]) Pattern[T] {
	return Pattern[T]{kind: OrKind, params: []Pattern[T]{a, b}}
}

// Template matches a value structurally equal to the value previously
// captured under name.
func Template[T comparable](name string) Pattern[T] {
	return Pattern[T]{kind: TemplateKind, name: name}
}

// --- Accessors -------------------------------------------------------------

// Kind returns the variant of p.
func (p Pattern[T]) Kind() Kind {
	return p.kind
}

// AtomValue returns the atom of an atom pattern.
func (p Pattern[T]) AtomValue() T {
	return p.atom
}

// Name returns the name of a capture, template or cons pattern.
func (p Pattern[T]) Name() string {
	return p.name
}

// Params returns the sub-patterns of p: constructor parameters, list items,
// path steps or the two operands of and/or. Clients must not modify the
// returned slice.
func (p Pattern[T]) Params() []Pattern[T] {
	return p.params
}

// Left returns the first operand of an and/or pattern.
func (p Pattern[T]) Left() Pattern[T] {
	assertThat(p.kind == AndKind || p.kind == OrKind, "Left() called for %s pattern", p.kind)
	return p.params[0]
}

// Right returns the second operand of an and/or pattern.
func (p Pattern[T]) Right() Pattern[T] {
	assertThat(p.kind == AndKind || p.kind == OrKind, "Right() called for %s pattern", p.kind)
	return p.params[1]
}

// Walk calls visit for p and all of its sub-patterns, depth-first and left to
// right. If visit returns false, the sub-patterns of the visited pattern are
// skipped.
func Walk[T comparable](p Pattern[T], visit func(Pattern[T]) bool) {
	if !visit(p) {
		return
	}
	for _, q := range p.params {
		Walk(q, visit)
	}
}

// Equal reports whether p and q are structurally identical.
func (p Pattern[T]) Equal(q Pattern[T]) bool {
	if p.kind != q.kind || p.atom != q.atom || p.name != q.name || len(p.params) != len(q.params) {
		return false
	}
	for i := range p.params {
		if !p.params[i].Equal(q.params[i]) {
			return false
		}
	}
	return true
}

// String renders p in surface syntax. Fail has no surface syntax and renders
// as <fail>, which the parser rejects; every other pattern reads back unchanged.
func (p Pattern[T]) String() string {
	b := strings.Builder{}
	p.write(&b)
	return b.String()
}

func (p Pattern[T]) write(b *strings.Builder) {
	switch p.kind {
	case AtomKind:
		b.WriteString(fmt.Sprintf("%v", p.atom))
	case FailKind:
		b.WriteString("<fail>")
	case WildKind:
		b.WriteByte('_')
	case CaptureKind:
		b.WriteString(p.name)
	case TemplateKind:
		b.WriteByte('%')
		b.WriteString(p.name)
	case NextKind:
		b.WriteByte('^')
	case ConsKind:
		b.WriteString(p.name)
		writeList(b, "(", p.params, ")")
	case ExactKind:
		writeList(b, "[", p.params, "]")
	case ListPathKind:
		writeList(b, "[| ", p.params, " |]")
	case PathKind:
		writeList(b, "{| ", p.params, " |}")
	case AndKind, OrKind:
		p.params[0].write(b)
		b.WriteByte('.')
		b.WriteString(p.kind.String())
		b.WriteByte('(')
		p.params[1].write(b)
		b.WriteByte(')')
	default:
		b.WriteString(p.kind.String())
	}
}

func writeList[T comparable](b *strings.Builder, open string, ps []Pattern[T], close string) {
	if len(ps) == 0 {
		b.WriteString(strings.TrimSpace(open))
		if open != "(" && open != "[" {
			b.WriteByte(' ')
		}
		b.WriteString(strings.TrimSpace(close))
		return
	}
	b.WriteString(open)
	for i, p := range ps {
		if i > 0 {
			b.WriteString(", ")
		}
		p.write(b)
	}
	b.WriteString(close)
}
