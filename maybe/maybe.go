/*
Package maybe implements an optional value, modelled after Elm's Maybe type.

A Maybe is either Just(x) or Nothing. Clients inspect it either through
pattern-matching

    var v int
    switch m := x.Match(); m {
    case m.Just(&v):
        …
    case m.Nothing():
        …
    }

or, on hot paths, through Get, which does not allocate a matcher.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
	Get() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns the empty Maybe for type T.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

// Get returns the wrapped value and true, or the zero value of T and false.
func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a computation which may fail.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// AndThen2 chains a computation over two optional values. It yields Nothing
// if any of a or b is Nothing.
func AndThen2[A, B, C any](f func(A, B) Maybe[C], a Maybe[A], b Maybe[B]) Maybe[C] {
	va, ok := a.Get()
	if !ok {
		return Nothing[C]()
	}
	vb, ok := b.Get()
	if !ok {
		return Nothing[C]()
	}
	return f(va, vb)
}

// Map applies f to the value of x, if present.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Get(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// Map2 combines two optional values with f.
func Map2[A, B, C any](f func(A, B) C, a Maybe[A], b Maybe[B]) Maybe[C] {
	return AndThen2(func(x A, y B) Maybe[C] {
		return Just(f(x, y))
	}, a, b)
}

// --- Matching --------------------------------------------------------------

type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
