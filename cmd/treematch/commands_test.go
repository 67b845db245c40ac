package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treematch/pattern"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMatchCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	out, err := execute(t, "match", "{| cons(^, ^), [^, ^], x |}", "cons([:a, :b], [:c, :d])")
	require.NoError(t, err)
	assert.Equal(t, "#1 {x = :a}\n#2 {x = :b}\n#3 {x = :c}\n#4 {x = :d}\n", out)
	//
	out, err = execute(t, "match", "--limit", "1", "[| a |]", "[1, 2, 3]")
	require.NoError(t, err)
	assert.Equal(t, "#1 {a = 1}\n", out)
	//
	out, err = execute(t, "match", "cons(x, y, z)", "cons(:a, :b, :c, :d)")
	require.NoError(t, err)
	assert.Equal(t, "no match\n", out)
	//
	out, err = execute(t, "match", "--tree", "[a, b]", "[:x, [:y]]")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "#1\n"))
	assert.Contains(t, out, ":y")
}

func TestMatchCommandExpect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	_, err := execute(t, "match", "--expect", "x,y", "[x, y]", "[1, 2]")
	assert.NoError(t, err)
	_, err = execute(t, "match", "--expect", "x", "[x, y]", "[1, 2]")
	assert.True(t, errors.Is(err, pattern.ErrTypeDoesNotMatch), "%v", err)
	_, err = execute(t, "match", "[x, x]", "[1, 2]")
	assert.True(t, errors.Is(err, pattern.ErrDuplicateSlot), "%v", err)
}

func TestMatchCommandDot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	dot := filepath.Join(t.TempDir(), "value.dot")
	_, err := execute(t, "match", "--dot", dot, "cons(x, _)", "cons(:a, :b)")
	require.NoError(t, err)
	content, err := os.ReadFile(dot)
	require.NoError(t, err)
	assert.Contains(t, string(content), `xlabel="x"`)
}

func TestCheckCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.pattern")
	defer teardown()
	//
	out, err := execute(t, "check", "[b, a.or(a)]")
	require.NoError(t, err)
	assert.Equal(t, "signature: {a, b}\n", out)
	_, err = execute(t, "check", "--trace", "[%x, x]")
	assert.True(t, errors.Is(err, pattern.ErrUnknownTemplateVariable), "%v", err)
}

const queries = `
queries:
  - name: fan-out
    pattern: "{| cons(^, ^), [^, ^], x |}"
    value: "cons([:a, :b], [:c, :d])"
    signature: [x]
    expect: 4
  - name: windows
    pattern: "[| a, b |]"
    value: "[:a, :b, :c]"
  - name: wrong count
    pattern: "cons(a, %a)"
    value: "cons(:a, :b)"
    expect: 1
`

const brokenQueries = `
queries:
  - name: duplicate
    pattern: "[x, x]"
    value: "[1, 1]"
  - name: fine
    pattern: "x"
    value: "1"
  - name: next outside path
    pattern: "cons(^)"
    value: "cons(1)"
  - name: signature
    pattern: "[x]"
    value: "[1]"
    signature: [x, y]
`

func TestBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	out := &bytes.Buffer{}
	err := runBatch(out, []byte(queries))
	require.Error(t, err)
	assert.Equal(t, "ok   fan-out: 4 results\nok   windows: 2 results\nFAIL wrong count: 0 results\n", out.String())
	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 1)
	//
	out.Reset()
	err = runBatch(out, []byte(brokenQueries))
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 3, "all broken queries are reported")
	assert.Empty(t, out.String(), "nothing runs if any query is broken")
	assert.True(t, errors.Is(merr.Errors[0], pattern.ErrDuplicateSlot))
	assert.True(t, errors.Is(merr.Errors[1], pattern.ErrIncorrectNextUsage))
	assert.True(t, errors.Is(merr.Errors[2], pattern.ErrTypeDoesNotMatch))
	//
	err = runBatch(out, []byte("queries: [unclosed"))
	assert.Error(t, err)
}

func TestBatchCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treematch.match")
	defer teardown()
	//
	file := filepath.Join(t.TempDir(), "queries.yaml")
	require.NoError(t, os.WriteFile(file, []byte(queries), 0o644))
	out, err := execute(t, "batch", file)
	assert.Error(t, err)
	assert.Contains(t, out, "ok   fan-out: 4 results")
	_, err = execute(t, "batch", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
