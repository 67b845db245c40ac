/*
Package syntax parses the textual surface syntax of values and patterns.

Values are atoms, constructors and lists:

    -1.5e3   "text\n"   :symbol   name(v, …)   [v, …]

Patterns use the same literals plus

    _            wildcard
    x            capture (any identifier other than _)
    %x           template: a value structurally equal to the capture x
    [| p, … |]   list-path: every contiguous window of a list
    {| p, … |}   path: steps connected by continuation points
    ^            continuation point of a path step
    p.and(q)     both p and q match (also spelled p |>and(q))
    p.or(q)      p or q match (also spelled p |>or(q))

Combinators fold to the left: a.or(b).and(c) is (a or b) and c. Every bracketed
list allows a trailing comma.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package syntax

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treematch.syntax'.
func tracer() tracing.Trace {
	return tracing.Select("treematch.syntax")
}

// Error is a syntax error. Pos is the byte offset into the source text.
type Error struct {
	Pos int
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

func fail(pos int, format string, args ...interface{}) {
	panic(&Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// catch turns a syntax error raised with fail into an error return.
func catch(err *error) {
	if r := recover(); r != nil {
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		tracer().Debugf("%v", e)
		*err = e
	}
}
