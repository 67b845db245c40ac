/*
Package treematch is a structural pattern matcher for tree-shaped data.

Patterns are type checked before use, then matched lazily against values,
producing every binding set under which the pattern matches:

    results, err := treematch.Query("{| cons(^, ^), [^, ^], x |}", "cons([:a, :b], [:c, :d])")
    // 4 binding sets, x = :a, :b, :c, :d

Sub-packages:

    data      values: atoms, constructors, lists
    pattern   patterns, the type checker and pattern signatures
    match     the lazy backtracking matcher
    syntax    parser for the textual syntax of values and patterns
    matchdbg  debugging output for values, patterns and binding sets

Package treematch glues these together for the concrete value model of
package data.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package treematch

import (
	"github.com/npillmayer/treematch/data"
	"github.com/npillmayer/treematch/match"
	"github.com/npillmayer/treematch/pattern"
	"github.com/npillmayer/treematch/syntax"
	"github.com/pkg/errors"
)

// Checked is a type checked pattern over data.Atom.
type Checked = pattern.Checked[data.Atom]

// Bindings is one solution of a match against a data.Value.
type Bindings = match.Bindings[*data.Value]

// Sequence is a lazy sequence of solutions.
type Sequence = match.Sequence[data.Atom, *data.Value]

// Compile parses and type checks a pattern.
func Compile(src string) (Checked, error) {
	p, err := syntax.ParsePattern(src)
	if err != nil {
		return Checked{}, errors.Wrap(err, "cannot parse pattern")
	}
	c, err := pattern.Check(p)
	if err != nil {
		return Checked{}, errors.Wrapf(err, "pattern %s rejected", p)
	}
	return c, nil
}

// MustCompile is like Compile, but panics if the pattern cannot be compiled.
// It is intended for patterns in static tables and tests.
func MustCompile(src string) Checked {
	c, err := Compile(src)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// Matches starts a match of a checked pattern against a value.
func Matches(c Checked, v *data.Value, opts ...match.Option) *Sequence {
	return match.Match(c, v, opts...)
}

// Query compiles a pattern, parses a value and returns all binding sets.
func Query(patternSrc, valueSrc string, opts ...match.Option) ([]Bindings, error) {
	c, err := Compile(patternSrc)
	if err != nil {
		return nil, err
	}
	v, err := syntax.ParseValue(valueSrc)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse value")
	}
	seq := Matches(c, v, opts...)
	results := seq.Collect()
	if err = seq.Err(); err != nil {
		return results, errors.Wrapf(err, "matching %s", c.Pattern())
	}
	return results, nil
}
