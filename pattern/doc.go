/*
Package pattern defines structural patterns over tree-shaped values and a type
checker for them.

A pattern describes shape constraints, literal constraints and named captures:

    Cons("cons", Capture[T]("x"), Atom(sym))    // cons(x, :sym)
    ListPath(Capture[T]("a"), Capture[T]("b"))  // [| a, b |]
    Path(Cons("cons", Next[T](), Next[T]()), Capture[T]("x"))  // {| cons(^, ^), x |}

Patterns are parametrized over an atom type T, so the same engine can match
different concrete value representations. A value representation takes part in
matching by implementing Matchable.

Before a pattern is handed to the matcher it has to pass Check, which rejects
ill-formed patterns without looking at any data:

    checked, err := pattern.Check(p)
    if err != nil {
        // err is a *CheckError, compare with errors.Is(err, pattern.ErrDuplicateSlot) etc.
    }
    fmt.Println(checked.Signature())   // names the pattern is guaranteed to bind

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package pattern

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treematch.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("treematch.pattern")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("pattern: "+msg, msgargs...)
		panic(msg)
	}
}
