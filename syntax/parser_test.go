package syntax

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treematch/data"
	"github.com/npillmayer/treematch/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexerTokens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	l := newLexer(` name([| x |>or(_) |], -1.5e3, 5.and, "a\"b", :sym, %x, ^ {||} ) `)
	var toks []token
	for tok := l.next(); tok.kind != tokEOF; tok = l.next() {
		toks = append(toks, tok)
	}
	vals := make([]string, len(toks))
	for i, tok := range toks {
		vals[i] = tok.val
	}
	assert.Equal(t, []string{"name", "(", "[|", "x", "|>", "or", "(", "_", ")", "|]", ",",
		"-1.5e3", ",", "5", ".", "and", ",", `a"b`, ",", "sym", ",", "%", "x", ",", "^",
		"{|", "|}", ")"}, vals)
	assert.Equal(t, tokNumber, toks[11].kind)
	assert.Equal(t, tokString, toks[17].kind)
	assert.Equal(t, tokSymbol, toks[19].kind)
	assert.Equal(t, 1, toks[0].pos)
}

func TestParseValueAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	v, err := ParseValue("-123.456E-2")
	require.NoError(t, err)
	assert.Equal(t, data.NumberAtom(-123.456e-2), v.AtomValue())
	//
	v, err = ParseValue(` "line\n\ttab\\ \0 \"q\"\r" `)
	require.NoError(t, err)
	assert.Equal(t, data.StringAtom("line\n\ttab\\ \x00 \"q\"\r"), v.AtomValue())
	//
	v, err = ParseValue(":symbol_123")
	require.NoError(t, err)
	assert.Equal(t, data.SymbolAtom("symbol_123"), v.AtomValue())
}

func TestParseValueTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	v, err := ParseValue(` name ( other ( one( :a, :b, num([:c, :d, :e, [:blarg],]) ) ) , :inner  ) `)
	require.NoError(t, err)
	expected := data.Cons("name",
		data.Cons("other",
			data.Cons("one", data.Symbol("a"), data.Symbol("b"),
				data.Cons("num", data.List(data.Symbol("c"), data.Symbol("d"), data.Symbol("e"),
					data.List(data.Symbol("blarg")))))),
		data.Symbol("inner"))
	assert.True(t, expected.Equal(v), "got %v", v)
	assert.Equal(t, `name(other(one(:a, :b, num([:c, :d, :e, [:blarg]]))), :inner)`, v.String())
}

func TestParsePatternForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	type P = pattern.Pattern[data.Atom]
	sym := func(s string) P { return pattern.Atom(data.SymbolAtom(s)) }
	str := func(s string) P { return pattern.Atom(data.StringAtom(s)) }
	for _, tc := range []struct {
		src      string
		expected P
	}{
		{" _ ", pattern.Wild[data.Atom]()},
		{" symbol_123 ", pattern.Capture[data.Atom]("symbol_123")},
		{" :symbol_123 ", sym("symbol_123")},
		{"%x", pattern.Template[data.Atom]("x")},
		{"^", pattern.Next[data.Atom]()},
		{"[]", pattern.Exact[data.Atom]()},
		{"[| a, b, c |]", pattern.ListPath(pattern.Capture[data.Atom]("a"),
			pattern.Capture[data.Atom]("b"), pattern.Capture[data.Atom]("c"))},
		{"{| a, b, |}", pattern.Path(pattern.Capture[data.Atom]("a"), pattern.Capture[data.Atom]("b"))},
		{` name  ( :first, :inner, "5.5" )`, pattern.Cons("name", sym("first"), sym("inner"), str("5.5"))},
		{`:a . or ( "1.0" )`, pattern.Or(sym("a"), str("1.0"))},
		{`:a . and ( "1.0" )`, pattern.And(sym("a"), str("1.0"))},
		{`[] |>or(:a) |>and(x)`, pattern.And(pattern.Or(pattern.Exact[data.Atom](), sym("a")),
			pattern.Capture[data.Atom]("x"))},
		{"[8, -2]", pattern.Exact(pattern.Atom(data.NumberAtom(8)), pattern.Atom(data.NumberAtom(-2)))},
	} {
		p, err := ParsePattern(tc.src)
		if assert.NoError(t, err, tc.src) {
			assert.True(t, tc.expected.Equal(p), "%q: expected %v, got %v", tc.src, tc.expected, p)
		}
	}
}

func TestParsePatternRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	for _, src := range []string{
		`{| [| cons(^, x) |], [^].or(y(^)), z |}`,
		`[:a, "b\n", 3.25].and(%q).or(_)`,
		`[| |]`,
		`{| |}`,
		`name(:first, [], x.and(%x))`,
	} {
		p, err := ParsePattern(src)
		require.NoError(t, err, src)
		again, err := ParsePattern(p.String())
		require.NoError(t, err, p.String())
		assert.True(t, p.Equal(again), "%s did not survive round trip, got %v", src, again)
	}
}

func TestSyntaxErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	for _, src := range []string{
		"",
		"[1, 2",
		"[,]",
		"x.xor(y)",
		`"unterminated`,
		`"bad \q escape"`,
		"cons(1) extra",
		"a | b",
		"%_",
		": x",
	} {
		_, err := ParsePattern(src)
		var serr *Error
		if assert.Error(t, err, src) && assert.True(t, errors.As(err, &serr), src) {
			t.Logf("%q: %v", src, serr)
		}
	}
	_, err := ParseValue("x")
	assert.Error(t, err, "bare identifier is not a value")
	_, err = ParseValue("_")
	assert.Error(t, err)
	_, err = ParseValue("^")
	assert.Error(t, err)
	var serr *Error
	_, err = ParseValue("[1, 2] ]")
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, 7, serr.Pos)
}

func TestStringEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	v, err := ParseValue(`"größe ≥ 1"`)
	require.NoError(t, err)
	assert.Equal(t, data.StringAtom("größe ≥ 1"), v.AtomValue())
	//
	_, err = ParseValue("\"a\xffb\"")
	var serr *Error
	require.True(t, errors.As(err, &serr), "%v", err)
	assert.Equal(t, 2, serr.Pos)
	_, err = ParsePattern("[\"\xc3\"]")
	assert.True(t, errors.As(err, &serr), "%v", err)
}

func TestFailHasNoSurfaceSyntax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.syntax")
	defer teardown()
	//
	_, err := ParsePattern(pattern.Fail[data.Atom]().String())
	var serr *Error
	assert.True(t, errors.As(err, &serr), "%v", err)
}
