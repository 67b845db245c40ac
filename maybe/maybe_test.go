package maybe_test

import (
	"testing"

	. "github.com/npillmayer/treematch/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()
	//t.Logf("x = %d", x.Just()) // might panic

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	var v int
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	x = Just(10)
	xx = Map(func(n int) int {
		return n * 2
	}, x)
	switch m := xx.Match(); m {
	case m.Just(&v):
	case m.Nothing():
	}
	if v != 20 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Map(…, Just 10) to return 20, didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
}

func TestMaybeGet(t *testing.T) {
	if v, ok := Just(3).Get(); !ok || v != 3 {
		t.Errorf("expected Just(3).Get() to return (3, true), is (%d, %v)", v, ok)
	}
	if v, ok := Nothing[string]().Get(); ok || v != "" {
		t.Errorf("expected Nothing.Get() to return (\"\", false), is (%q, %v)", v, ok)
	}
	if Nothing[int]().IsJust() {
		t.Error("expected Nothing not to be Just")
	}
}

func TestMaybeCombine(t *testing.T) {
	add := func(a, b int) int { return a + b }
	if v, ok := Map2(add, Just(2), Just(5)).Get(); !ok || v != 7 {
		t.Errorf("expected Map2(+, 2, 5) to be Just(7), is (%d, %v)", v, ok)
	}
	if Map2(add, Just(2), Nothing[int]()).IsJust() {
		t.Error("expected Map2 with Nothing operand to be Nothing")
	}
	positive := func(a, b int) Maybe[bool] {
		if a > 0 && b > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}
	if !AndThen2(positive, Just(1), Just(1)).IsJust() {
		t.Error("expected AndThen2 over positive operands to be Just")
	}
	if AndThen2(positive, Just(1), Just(0)).IsJust() {
		t.Error("expected AndThen2 to propagate Nothing from f")
	}
	length := Map(func(s string) int { return len(s) }, Just("four"))
	if length.WithDefault(0) != 4 {
		t.Errorf("expected Map(len, Just(four)) to be 4, is %d", length.WithDefault(0))
	}
}
