/*
Package match enumerates all the ways a checked pattern matches a value.

Matching is lazy and pull-based:

    seq := match.Match(checked, value)
    for bindings, ok := seq.Next(); ok; bindings, ok = seq.Next() {
        x, _ := bindings.Get("x")
        …
    }

Every call to Next continues a backtracking search where the previous one left
off. The search is deterministic: for the same pattern and value it produces the
same binding sets in the same order. Clients may stop pulling at any time.

Search machine

The matcher works with two stacks. Current work is a stack of frames, each frame
being a queue of (pattern, value) obligations. A frame opened by a path pattern
additionally holds the remaining path steps and the continuation points (^)
collected for the step currently executing. Deferred alternatives is a stack of
complete snapshots (bindings so far plus current work), one for every branch not
yet taken: list-path windows, the right side of an or, and all but the first
continuation point of a path step.

All parts of the search state are persistent lists (package persistent/list),
so taking a snapshot copies a couple of list headers; snapshots share structure
with each other and with the live state.

Ordering

Constructor children and list items are matched left to right; list-path windows
by ascending offset; the left side of an or before its right side; path
continuations in the order their ^ markers have been reached.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package match

import (
	"errors"
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'treematch.match'.
func tracer() tracing.Trace {
	return tracing.Select("treematch.match")
}

// ErrSearchTooWide is reported by Sequence.Err if the number of deferred
// alternatives exceeded the limit set with MaxDeferred.
var ErrSearchTooWide = errors.New("too many open alternatives; search aborted")

// ErrUncheckedPattern is reported by Sequence.Err if Match has been called with
// the zero value of pattern.Checked.
var ErrUncheckedPattern = errors.New("pattern has not been type checked")

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("match: "+msg, msgargs...)
		panic(msg)
	}
}
