package match

// Option is a type to help configuring a match at creation time.
//
// Use it like this:
//
//     seq := match.Match(checked, value, match.Limit(10))
//
type Option func(options) options

type options struct {
	limit       int // max. number of solutions to yield, 0 = unlimited
	maxDeferred int // max. number of deferred alternatives, 0 = unlimited
}

// Limit stops a match after n solutions have been produced.
// n <= 0 means no limit.
func Limit(n int) Option {
	return func(o options) options {
		if n < 0 {
			n = 0
		}
		o.limit = n
		return o
	}
}

// MaxDeferred aborts a match as soon as more than n alternatives are waiting to
// be explored. The sequence then reports ErrSearchTooWide.
// n <= 0 means no limit.
func MaxDeferred(n int) Option {
	return func(o options) options {
		if n < 0 {
			n = 0
		}
		o.maxDeferred = n
		return o
	}
}
