package pattern

// Shape classifies a value for matching.
type Shape uint8

// Shapes of matchable values.
const (
	AtomShape Shape = iota // indivisible leaf
	ConsShape              // named constructor with ordered children
	ListShape              // sequence of values
)

func (s Shape) String() string {
	switch s {
	case AtomShape:
		return "atom"
	case ConsShape:
		return "cons"
	case ListShape:
		return "list"
	}
	return "?"
}

// Matchable is an interface for value types which can be pattern-matched.
// V is the type of the value itself, usually a pointer type, such that
// children may be handed out as references into the original tree.
//
// Implementations must be immutable for the duration of a match.
type Matchable[T comparable, V any] interface {
	Shape() Shape        // classify as atom, constructor or list
	AtomValue() T        // the atom, if Shape() is AtomShape
	ConsName() string    // the constructor name, if Shape() is ConsShape
	Len() int            // number of children of a constructor or list
	Child(i int) V       // i-th child of a constructor or list
	Pattern() Pattern[T] // literal pattern that matches exactly this value
}

// Literal returns the pattern which exactly reproduces v: atoms become atom
// patterns, constructors become cons patterns and lists become exact-list
// patterns. Matching the result against v yields a single empty binding set.
//
// Implementations of Matchable may use Literal to implement Pattern().
func Literal[T comparable, V Matchable[T, V]](v V) Pattern[T] {
	switch v.Shape() {
	case AtomShape:
		return Atom(v.AtomValue())
	case ConsShape:
		return Pattern[T]{kind: ConsKind, name: v.ConsName(), params: children[T](v)}
	case ListShape:
		return Pattern[T]{kind: ExactKind, params: children[T](v)}
	}
	panic("pattern: cannot build literal pattern for value of unknown shape")
}

func children[T comparable, V Matchable[T, V]](v V) []Pattern[T] {
	if v.Len() == 0 {
		return nil
	}
	ps := make([]Pattern[T], v.Len())
	for i := range ps {
		ps[i] = Literal[T](v.Child(i))
	}
	return ps
}
