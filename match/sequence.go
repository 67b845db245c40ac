package match

import (
	"github.com/npillmayer/treematch/pattern"
	"github.com/npillmayer/treematch/persistent/list"
)

// obligation is a pattern which has to match a value for the current branch
// to succeed.
type obligation[T comparable, V pattern.Matchable[T, V]] struct {
	pat   pattern.Pattern[T]
	value V
}

// frame is a queue of obligations. Frames opened for a path pattern carry the
// path steps still to go and the continuation points collected by the step
// currently executing (most recent first).
type frame[T comparable, V pattern.Matchable[T, V]] struct {
	work   list.List[obligation[T, V]]
	isPath bool
	steps  []pattern.Pattern[T]
	nexts  list.List[V]
}

func pathFrame[T comparable, V pattern.Matchable[T, V]](step pattern.Pattern[T], focus V,
	remaining []pattern.Pattern[T]) frame[T, V] {
	//
	return frame[T, V]{
		work:   list.Of(obligation[T, V]{pat: step, value: focus}),
		isPath: true,
		steps:  remaining,
	}
}

type capture[V any] struct {
	name  string
	value V
}

// state is everything needed to resume a branch of the search. Copying a state
// is cheap, as all of its parts are persistent lists.
type state[T comparable, V pattern.Matchable[T, V]] struct {
	bindings list.List[capture[V]]  // most recent first
	frames   list.List[frame[T, V]] // innermost first
}

func (st state[T, V]) top() frame[T, V] {
	f, ok := st.frames.Peek()
	assertThat(ok, "no open frame")
	return f
}

func (st state[T, V]) replaceTop(f frame[T, V]) state[T, V] {
	st.frames = st.frames.Tail().Push(f)
	return st
}

// push adds obligations to the innermost frame; obs[0] will be processed first.
func (st state[T, V]) push(obs ...obligation[T, V]) state[T, V] {
	f := st.top()
	f.work = f.work.PushAll(obs...)
	return st.replaceTop(f)
}

// pushChildren adds obligations ps[i] against the children of v, starting at
// child number offset.
func (st state[T, V]) pushChildren(ps []pattern.Pattern[T], v V, offset int) state[T, V] {
	f := st.top()
	for i := len(ps) - 1; i >= 0; i-- {
		f.work = f.work.Push(obligation[T, V]{pat: ps[i], value: v.Child(offset + i)})
	}
	return st.replaceTop(f)
}

func (st state[T, V]) bind(name string, v V) state[T, V] {
	st.bindings = st.bindings.Push(capture[V]{name: name, value: v})
	return st
}

func (st state[T, V]) recordNext(v V) state[T, V] {
	f := st.top()
	assertThat(f.isPath, "continuation point ^ outside of a path")
	f.nexts = f.nexts.Push(v)
	return st.replaceTop(f)
}

func (st state[T, V]) lookup(name string) (V, bool) {
	c, ok := st.bindings.Find(func(c capture[V]) bool {
		return c.name == name
	}).Get()
	return c.value, ok
}

func (st state[T, V]) solution() Bindings[V] {
	captures := st.bindings.ReverseSlice()
	bs := make(Bindings[V], len(captures))
	for i, c := range captures {
		bs[i] = Binding[V]{Name: c.name, Value: c.value}
	}
	return bs
}

// --- Sequence --------------------------------------------------------------

// Sequence is a lazy sequence of binding sets, one for every way a pattern
// matches a value. A Sequence is single-pass; to re-run a search, call Match
// again. A Sequence must not be used concurrently, but any number of sequences
// may match the same value at the same time.
type Sequence[T comparable, V pattern.Matchable[T, V]] struct {
	current  state[T, V]
	live     bool // current is a branch which has neither failed nor been yielded
	deferred []state[T, V]
	opts     options
	stats    Stats
	done     bool
	err      error
}

// Stats reports on the work a search has done so far.
type Stats struct {
	Solutions   int // binding sets yielded
	Steps       int // obligations processed
	Backtracks  int // deferred alternatives resumed
	MaxDeferred int // high water mark of deferred alternatives
}

// Match starts matching a checked pattern against a value. No work is done
// before the first call to Next.
func Match[T comparable, V pattern.Matchable[T, V]](c pattern.Checked[T], value V,
	opts ...Option) *Sequence[T, V] {
	//
	s := &Sequence[T, V]{}
	for _, option := range opts {
		s.opts = option(s.opts)
	}
	if !c.Valid() {
		s.finish(ErrUncheckedPattern)
		return s
	}
	root := frame[T, V]{work: list.Of(obligation[T, V]{pat: c.Pattern(), value: value})}
	s.current = state[T, V]{frames: list.Of(root)}
	s.live = true
	return s
}

// Next returns the next binding set, or false if the search is exhausted.
func (s *Sequence[T, V]) Next() (Bindings[V], bool) {
	if s.done {
		return nil, false
	}
	if s.opts.limit > 0 && s.stats.Solutions >= s.opts.limit {
		tracer().Debugf("match: limit of %d solutions reached", s.opts.limit)
		s.finish(nil)
		return nil, false
	}
	for {
		if !s.live && !s.backtrack() {
			s.finish(nil)
			return nil, false
		}
		if s.current.frames.Empty() {
			s.live = false
			s.stats.Solutions++
			bs := s.current.solution()
			tracer().Debugf("match: solution #%d = %v", s.stats.Solutions, bs)
			return bs, true
		}
		s.live = s.step()
		if s.err != nil {
			s.finish(s.err)
			return nil, false
		}
	}
}

// Collect pulls all remaining binding sets.
func (s *Sequence[T, V]) Collect() []Bindings[V] {
	var all []Bindings[V]
	for bs, ok := s.Next(); ok; bs, ok = s.Next() {
		all = append(all, bs)
	}
	return all
}

// Err returns the reason for a search which ended prematurely, or nil.
func (s *Sequence[T, V]) Err() error {
	return s.err
}

// Stats returns counters for the work done so far.
func (s *Sequence[T, V]) Stats() Stats {
	return s.stats
}

func (s *Sequence[T, V]) finish(err error) {
	s.done, s.live, s.err = true, false, err
	s.deferred = nil
	s.current = state[T, V]{}
}

// backtrack resumes the most recently deferred alternative.
func (s *Sequence[T, V]) backtrack() bool {
	n := len(s.deferred)
	if n == 0 {
		return false
	}
	s.current = s.deferred[n-1]
	s.deferred[n-1] = state[T, V]{}
	s.deferred = s.deferred[:n-1]
	s.live = true
	s.stats.Backtracks++
	return true
}

// deferAlt saves an alternative branch for later.
func (s *Sequence[T, V]) deferAlt(st state[T, V]) {
	s.deferred = append(s.deferred, st)
	if len(s.deferred) > s.stats.MaxDeferred {
		s.stats.MaxDeferred = len(s.deferred)
	}
	if s.opts.maxDeferred > 0 && len(s.deferred) > s.opts.maxDeferred {
		tracer().Infof("match: more than %d open alternatives, giving up", s.opts.maxDeferred)
		s.err = ErrSearchTooWide
	}
}

// step processes one obligation of the innermost frame, or closes the frame
// if it has no work left. It returns false if the current branch failed.
func (s *Sequence[T, V]) step() bool {
	f := s.current.top()
	if f.work.Empty() {
		return s.closeFrame(f)
	}
	ob, rest := f.work.Pop()
	f.work = rest
	s.current = s.current.replaceTop(f)
	s.stats.Steps++
	return s.dispatch(ob.pat, ob.value)
}

func (s *Sequence[T, V]) dispatch(p pattern.Pattern[T], v V) bool {
	switch p.Kind() {
	case pattern.WildKind:
		return true
	case pattern.FailKind:
		return false
	case pattern.CaptureKind:
		s.current = s.current.bind(p.Name(), v)
		return true
	case pattern.AtomKind:
		return v.Shape() == pattern.AtomShape && v.AtomValue() == p.AtomValue()
	case pattern.ConsKind:
		ps := p.Params()
		if v.Shape() != pattern.ConsShape || v.ConsName() != p.Name() || v.Len() != len(ps) {
			return false
		}
		s.current = s.current.pushChildren(ps, v, 0)
		return true
	case pattern.ExactKind:
		ps := p.Params()
		if v.Shape() != pattern.ListShape || v.Len() != len(ps) {
			return false
		}
		s.current = s.current.pushChildren(ps, v, 0)
		return true
	case pattern.ListPathKind:
		return s.matchWindows(p.Params(), v)
	case pattern.TemplateKind:
		bound, ok := s.current.lookup(p.Name())
		if !ok {
			tracer().Debugf("match: template %%%s references a capture not bound on this branch", p.Name())
			return false
		}
		s.current = s.current.push(obligation[T, V]{pat: bound.Pattern(), value: v})
		return true
	case pattern.AndKind:
		s.current = s.current.push(
			obligation[T, V]{pat: p.Left(), value: v},
			obligation[T, V]{pat: p.Right(), value: v},
		)
		return true
	case pattern.OrKind:
		s.deferAlt(s.current.push(obligation[T, V]{pat: p.Right(), value: v}))
		s.current = s.current.push(obligation[T, V]{pat: p.Left(), value: v})
		return true
	case pattern.NextKind:
		s.current = s.current.recordNext(v)
		return true
	case pattern.PathKind:
		steps := p.Params()
		if len(steps) == 0 {
			return true
		}
		s.current.frames = s.current.frames.Push(pathFrame(steps[0], v, steps[1:]))
		return true
	}
	return false
}

// matchWindows matches ps against every window of v of length len(ps). The
// window at offset 0 is explored eagerly, the others are deferred such that
// they will be resumed by ascending offset.
func (s *Sequence[T, V]) matchWindows(ps []pattern.Pattern[T], v V) bool {
	if v.Shape() != pattern.ListShape || len(ps) > v.Len() {
		return false
	}
	if len(ps) == 0 { // all windows are empty and would produce identical results
		return true
	}
	for offset := v.Len() - len(ps); offset > 0; offset-- {
		s.deferAlt(s.current.pushChildren(ps, v, offset))
	}
	s.current = s.current.pushChildren(ps, v, 0)
	return true
}

// closeFrame is called for a frame without remaining work. For a path frame,
// the next path step is started for every continuation point collected.
func (s *Sequence[T, V]) closeFrame(f frame[T, V]) bool {
	if !f.isPath {
		s.current.frames = s.current.frames.Tail()
		return true
	}
	if f.nexts.Empty() {
		if len(f.steps) == 0 { // path completed
			s.current.frames = s.current.frames.Tail()
			return true
		}
		tracer().Debugf("match: path step produced no continuation, %d steps left", len(f.steps))
		return false
	}
	if len(f.steps) == 0 {
		tracer().Errorf("match: continuation points after last path step")
		return false
	}
	nexts := f.nexts.ReverseSlice() // in the order they have been reached
	step, remaining := f.steps[0], f.steps[1:]
	for i := len(nexts) - 1; i > 0; i-- {
		s.deferAlt(s.current.replaceTop(pathFrame(step, nexts[i], remaining)))
	}
	s.current = s.current.replaceTop(pathFrame(step, nexts[0], remaining))
	return true
}
