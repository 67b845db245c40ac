package treematch_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treematch"
	"github.com/npillmayer/treematch/match"
	"github.com/npillmayer/treematch/pattern"
	"github.com/npillmayer/treematch/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func table(bss []treematch.Bindings) []map[string]string {
	var t []map[string]string
	for _, bs := range bss {
		m := map[string]string{}
		for name, v := range bs.Map() {
			m[name] = v.String()
		}
		t = append(t, m)
	}
	return t
}

func TestQuery(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	results, err := treematch.Query("{| cons(^, ^), [^, ^], x |}", "cons([:a, :b], [:c, :d])")
	require.NoError(t, err)
	expected := []map[string]string{{"x": ":a"}, {"x": ":b"}, {"x": ":c"}, {"x": ":d"}}
	if diff := cmp.Diff(expected, table(results)); diff != "" {
		t.Errorf("query results mismatch (-want +got):\n%s", diff)
	}
	//
	results, err = treematch.Query("[a,_,_].and(b).and([_,:x,:y])", "[:one,:x,:y]")
	require.NoError(t, err)
	expected = []map[string]string{{"a": ":one", "b": "[:one, :x, :y]"}}
	if diff := cmp.Diff(expected, table(results)); diff != "" {
		t.Errorf("query results mismatch (-want +got):\n%s", diff)
	}
}

func TestQueryErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	_, err := treematch.Query("[x, x]", "[1, 1]")
	assert.True(t, errors.Is(err, pattern.ErrDuplicateSlot), "%v", err)
	assert.Contains(t, err.Error(), "pattern [x, x] rejected")
	//
	_, err = treematch.Query("[x", "[1]")
	var serr *syntax.Error
	assert.True(t, errors.As(err, &serr), "%v", err)
	assert.Contains(t, err.Error(), "cannot parse pattern")
	//
	_, err = treematch.Query("[x]", "[1")
	assert.True(t, errors.As(err, &serr), "%v", err)
	assert.Contains(t, err.Error(), "cannot parse value")
	//
	_, err = treematch.Query("[| a |]", "[1, 2, 3, 4]", match.MaxDeferred(1))
	assert.True(t, errors.Is(err, match.ErrSearchTooWide), "%v", err)
	//
	results, err := treematch.Query("cons(x, y, z)", "cons(:a, :b, :c, :d)")
	assert.NoError(t, err, "no match is not an error")
	assert.Empty(t, results)
}

func TestCompile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	c := treematch.MustCompile("cons(a, %a)")
	assert.True(t, c.Valid())
	assert.Equal(t, pattern.Signature{"a"}, c.Signature())
	assert.Panics(t, func() { treematch.MustCompile("cons(^)") })
	//
	v, err := syntax.ParseValue("cons(:a, :a)")
	require.NoError(t, err)
	seq := treematch.Matches(c, v, match.Limit(1))
	bs, ok := seq.Next()
	require.True(t, ok)
	a, _ := bs.Get("a")
	assert.Same(t, v.Child(0), a)
	_, ok = seq.Next()
	assert.False(t, ok)
}
