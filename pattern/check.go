package pattern

import (
	"github.com/npillmayer/treematch/maybe"
)

// Checked is a pattern which passed the type checker, together with its
// signature. Values of type Checked are created by Check only.
type Checked[T comparable] struct {
	pattern Pattern[T]
	sig     Signature
	valid   bool
}

// Pattern returns the checked pattern.
func (c Checked[T]) Pattern() Pattern[T] {
	return c.pattern
}

// Signature returns the names the pattern is guaranteed to bind.
func (c Checked[T]) Signature() Signature {
	return c.sig
}

// Valid is false for the zero value of Checked.
func (c Checked[T]) Valid() bool {
	return c.valid
}

// Check validates a pattern without looking at any data. It runs four passes,
// stopping at the first failing one:
//
//   1. ^ is used inside of paths only, every path step but the last one produces
//      at least one continuation, and the last step produces none
//   2. every constructor pattern has at least one parameter
//   3. every template %x is preceded, in traversal order, by a capture x
//   4. no capture name is bound twice, and both sides of an or bind the same names
//
// The error returned is of type *CheckError.
func Check[T comparable](p Pattern[T]) (Checked[T], error) {
	if n, ok := nextCount(p, false).Get(); !ok || n != 0 {
		tracer().Debugf("check: incorrect usage of ^ in %v", p)
		return Checked[T]{}, &CheckError{Kind: IncorrectNextUsage}
	}
	if name, ok := consHaveParams(p); !ok {
		tracer().Debugf("check: constructor %s() without params", name)
		return Checked[T]{}, &CheckError{Kind: ConsNeedsAtLeastOneParam, Name: name}
	}
	if err := checkTemplates(p, make(map[string]struct{})); err != nil {
		tracer().Debugf("check: %v", err)
		return Checked[T]{}, err
	}
	sig, err := signature(p)
	if err != nil {
		tracer().Debugf("check: %v", err)
		return Checked[T]{}, err
	}
	return Checked[T]{pattern: p, sig: sig, valid: true}, nil
}

// CheckSignature compares the signature of a checked pattern with a signature
// required by a client, e.g., the parameter list of a rule. The order of names
// in expected is irrelevant.
func CheckSignature[T comparable](c Checked[T], expected Signature) error {
	exp := NewSignature(expected...)
	if !c.sig.Equal(exp) {
		return &CheckError{Kind: TypeDoesNotMatch, Found: c.sig, Expected: exp}
	}
	return nil
}

// nextCount tells how many continuation points p contributes when used as a
// path step, or Nothing if p uses ^ incorrectly.
func nextCount[T comparable](p Pattern[T], inPath bool) maybe.Maybe[int] {
	switch p.kind {
	case AtomKind, FailKind, WildKind, CaptureKind, TemplateKind:
		return maybe.Just(0)
	case NextKind:
		if inPath {
			return maybe.Just(1)
		}
		return maybe.Nothing[int]()
	case ConsKind, ExactKind, ListPathKind, AndKind:
		sum := maybe.Just(0)
		for _, q := range p.params {
			sum = maybe.Map2(add, sum, nextCount(q, inPath))
		}
		return sum
	case OrKind:
		return maybe.AndThen2(func(a, b int) maybe.Maybe[int] {
			switch {
			case a == 0 && b == 0:
				return maybe.Just(0)
			case a > 0 && b > 0:
				return maybe.Just(1)
			}
			return maybe.Nothing[int]() // one side continues the path, the other does not
		}, nextCount(p.params[0], inPath), nextCount(p.params[1], inPath))
	case PathKind:
		if len(p.params) == 0 {
			return maybe.Just(0)
		}
		last := len(p.params) - 1
		if n, ok := nextCount(p.params[last], true).Get(); !ok || n != 0 {
			return maybe.Nothing[int]()
		}
		for _, step := range p.params[:last] {
			if n, ok := nextCount(step, true).Get(); !ok || n == 0 {
				return maybe.Nothing[int]()
			}
		}
		return maybe.Just(0)
	}
	return maybe.Nothing[int]()
}

func add(a, b int) int {
	return a + b
}

func consHaveParams[T comparable](p Pattern[T]) (string, bool) {
	var offender string
	ok := true
	Walk(p, func(q Pattern[T]) bool {
		if q.kind == ConsKind && len(q.params) == 0 {
			offender, ok = q.name, false
		}
		return ok
	})
	return offender, ok
}

// checkTemplates threads a single set of captured names through p, depth-first
// and left to right. Scoping is purely by traversal order, not by data flow.
func checkTemplates[T comparable](p Pattern[T], captured map[string]struct{}) error {
	switch p.kind {
	case CaptureKind:
		captured[p.name] = struct{}{}
	case TemplateKind:
		if _, ok := captured[p.name]; !ok {
			return &CheckError{Kind: TemplateReferencesUnknownCaptureVariable, Name: p.name}
		}
	default:
		for _, q := range p.params {
			if err := checkTemplates(q, captured); err != nil {
				return err
			}
		}
	}
	return nil
}

func signature[T comparable](p Pattern[T]) (Signature, error) {
	switch p.kind {
	case CaptureKind:
		return Signature{p.name}, nil
	case ConsKind, ExactKind, ListPathKind, PathKind, AndKind:
		sigs := make([]Signature, len(p.params))
		for i, q := range p.params {
			s, err := signature(q)
			if err != nil {
				return nil, err
			}
			sigs[i] = s
		}
		sig, dup := union(sigs...)
		if dup != "" {
			return nil, &CheckError{Kind: DuplicateSlot, Name: dup}
		}
		return sig, nil
	case OrKind:
		a, err := signature(p.params[0])
		if err != nil {
			return nil, err
		}
		b, err := signature(p.params[1])
		if err != nil {
			return nil, err
		}
		if !a.Equal(b) {
			return nil, &CheckError{Kind: OrPatternHasUnequalSig, Found: b, Expected: a}
		}
		return a, nil
	}
	return nil, nil
}
