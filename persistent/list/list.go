/*
Package list implements an immutable persistent singly linked list.

A list has copy-on-write behaviour: Push and Pop create a new incarnation of the
list, leaving the original unmodified. All incarnations share their common tail,
so "copying" a list means copying a small header.

Lists are used as stacks: the most recently pushed item is the head.

    l := list.Of(1, 2, 3)    // head is 1
    l2 := l.Push(0)          // l is unchanged, l2 shares all cells of l
    x, rest := l2.Pop()      // x = 0, rest shares all cells of l

Immutable lists are inherently concurrency-safe.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/treematch/maybe"
)

// tracer traces with key 'treematch.list'.
func tracer() tracing.Trace {
	return tracing.Select("treematch.list")
}

// List is an immutable list. The zero value is the empty list and ready to use.
type List[T any] struct {
	head   *cell[T]
	length int
}

type cell[T any] struct {
	value T
	next  *cell[T]
}

// Of creates a list from a sequence of items. xs[0] will be the head of the list.
func Of[T any](xs ...T) List[T] {
	return List[T]{}.PushAll(xs...)
}

// --- API -------------------------------------------------------------------

// Len returns the number of items in the list.
func (l List[T]) Len() int {
	return l.length
}

// Empty is true for a list without items.
func (l List[T]) Empty() bool {
	return l.head == nil
}

// Push returns a new list with value as its head. l is not modified.
func (l List[T]) Push(value T) List[T] {
	return List[T]{
		head:   &cell[T]{value: value, next: l.head},
		length: l.length + 1,
	}
}

// PushAll returns a new list with xs pushed such that xs[0] ends up as the head.
func (l List[T]) PushAll(xs ...T) List[T] {
	for i := len(xs) - 1; i >= 0; i-- {
		l = l.Push(xs[i])
	}
	return l
}

// Peek returns the head of the list, if any.
func (l List[T]) Peek() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	return l.head.value, true
}

// Head returns the head of the list as a Maybe.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.value)
}

// Pop returns the head of the list and the remaining list.
// Calling Pop on an empty list is an error and will panic.
func (l List[T]) Pop() (T, List[T]) {
	assertThat(l.head != nil, "attempt to pop item from empty list")
	return l.head.value, List[T]{head: l.head.next, length: l.length - 1}
}

// Tail returns the list without its head. The tail of the empty list is
// the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return l
	}
	return List[T]{head: l.head.next, length: l.length - 1}
}

// Find returns the first item, starting from the head, for which pred is true.
func (l List[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for c := l.head; c != nil; c = c.next {
		if pred(c.value) {
			return maybe.Just(c.value)
		}
	}
	return maybe.Nothing[T]()
}

// Each calls f for every item, starting with the head.
func (l List[T]) Each(f func(T)) {
	for c := l.head; c != nil; c = c.next {
		f(c.value)
	}
}

// Reverse returns a new list with the items in reverse order.
// Reverse does not share cells with l.
func (l List[T]) Reverse() List[T] {
	var r List[T]
	for c := l.head; c != nil; c = c.next {
		r = r.Push(c.value)
	}
	return r
}

// Slice copies the items of l into a slice, head first.
func (l List[T]) Slice() []T {
	if l.head == nil {
		return nil
	}
	s := make([]T, 0, l.length)
	for c := l.head; c != nil; c = c.next {
		s = append(s, c.value)
	}
	return s
}

// ReverseSlice copies the items of l into a slice, head last.
// For a list used as a stack, this is the order in which items have been pushed.
func (l List[T]) ReverseSlice() []T {
	if l.head == nil {
		return nil
	}
	s := make([]T, l.length)
	i := l.length - 1
	for c := l.head; c != nil; c = c.next {
		s[i] = c.value
		i--
	}
	assertThat(i == -1, "inconsistency: list length %d does not match its cells", l.length)
	return s
}

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('(')
	for c := l.head; c != nil; c = c.next {
		if c != l.head {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", c.value))
	}
	b.WriteByte(')')
	return b.String()
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
