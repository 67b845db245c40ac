package syntax

import (
	"strconv"

	"github.com/npillmayer/treematch/data"
	"github.com/npillmayer/treematch/pattern"
)

// ParseValue parses the surface syntax of a value.
func ParseValue(src string) (v *data.Value, err error) {
	defer catch(&err)
	p := parser{lexer: newLexer(src)}
	v = p.value()
	p.end()
	return v, nil
}

// ParsePattern parses the surface syntax of a pattern. The pattern returned
// has not been type checked yet.
func ParsePattern(src string) (pt pattern.Pattern[data.Atom], err error) {
	defer catch(&err)
	p := parser{lexer: newLexer(src)}
	pt = p.pattern()
	p.end()
	return pt, nil
}

// parser is a recursive descent parser. Syntax errors are raised with fail and
// recovered at the entry points.
type parser struct {
	lexer *lexer
}

func (p *parser) end() {
	if tok := p.lexer.peek(); tok.kind != tokEOF {
		fail(tok.pos, "unexpected %s after end of input", tok)
	}
}

// list parses item {',' item} [','] close. The opening bracket has already
// been consumed.
func (p *parser) list(close string, item func()) {
	for {
		if p.lexer.peek().is(tokPunct, close) {
			p.lexer.next()
			return
		}
		item()
		tok := p.lexer.next()
		if tok.is(tokPunct, close) {
			return
		}
		if !tok.is(tokPunct, ",") {
			fail(tok.pos, "expected ',' or '%s', found %s", close, tok)
		}
	}
}

func atomOf(tok token) (data.Atom, bool) {
	switch tok.kind {
	case tokNumber:
		x, err := strconv.ParseFloat(tok.val, 64)
		if err != nil {
			fail(tok.pos, "malformed number %s", tok.val)
		}
		return data.NumberAtom(x), true
	case tokString:
		return data.StringAtom(tok.val), true
	case tokSymbol:
		return data.SymbolAtom(tok.val), true
	}
	return data.Atom{}, false
}

// --- Values ----------------------------------------------------------------

func (p *parser) value() *data.Value {
	tok := p.lexer.next()
	if a, ok := atomOf(tok); ok {
		return data.FromAtom(a)
	}
	switch {
	case tok.kind == tokIdent && tok.val != "_":
		p.lexer.expect("(")
		var children []*data.Value
		p.list(")", func() { children = append(children, p.value()) })
		return data.Cons(tok.val, children...)
	case tok.is(tokPunct, "["):
		var items []*data.Value
		p.list("]", func() { items = append(items, p.value()) })
		return data.List(items...)
	}
	fail(tok.pos, "expected value, found %s", tok)
	return nil
}

// --- Patterns --------------------------------------------------------------

type pat = pattern.Pattern[data.Atom]

// pattern parses a primary pattern followed by any number of and/or
// combinators, folding to the left.
func (p *parser) pattern() pat {
	result := p.primary()
	for {
		tok := p.lexer.peek()
		if !tok.is(tokPunct, ".") && !tok.is(tokPunct, "|>") {
			return result
		}
		p.lexer.next()
		op := p.lexer.next()
		if op.kind != tokIdent || (op.val != "and" && op.val != "or") {
			fail(op.pos, "expected 'and' or 'or' after %s, found %s", tok, op)
		}
		p.lexer.expect("(")
		operand := p.pattern()
		p.lexer.expect(")")
		if op.val == "and" {
			result = pattern.And(result, operand)
		} else {
			result = pattern.Or(result, operand)
		}
	}
}

func (p *parser) patterns(close string) []pat {
	var ps []pat
	p.list(close, func() { ps = append(ps, p.pattern()) })
	return ps
}

func (p *parser) primary() pat {
	tok := p.lexer.next()
	if a, ok := atomOf(tok); ok {
		return pattern.Atom(a)
	}
	switch tok.kind {
	case tokIdent:
		if tok.val == "_" {
			return pattern.Wild[data.Atom]()
		}
		if p.lexer.peek().is(tokPunct, "(") {
			p.lexer.next()
			return pattern.Cons(tok.val, p.patterns(")")...)
		}
		return pattern.Capture[data.Atom](tok.val)
	case tokPunct:
		switch tok.val {
		case "[":
			return pattern.Exact(p.patterns("]")...)
		case "[|":
			return pattern.ListPath(p.patterns("|]")...)
		case "{|":
			return pattern.Path(p.patterns("|}")...)
		case "^":
			return pattern.Next[data.Atom]()
		case "%":
			name := p.lexer.next()
			if name.kind != tokIdent || name.val == "_" {
				fail(name.pos, "expected capture name after '%%', found %s", name)
			}
			return pattern.Template[data.Atom](name.val)
		}
	}
	fail(tok.pos, "expected pattern, found %s", tok)
	return pat{}
}
