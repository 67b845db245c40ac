package pattern

import (
	"sort"
	"strings"
)

// Signature is the set of capture names a pattern is guaranteed to bind,
// kept as a sorted slice.
type Signature []string

// NewSignature creates a signature from a set of names in any order.
func NewSignature(names ...string) Signature {
	sig := make(Signature, len(names))
	copy(sig, names)
	sort.Strings(sig)
	return sig
}

// Equal is true if sig and other contain the same names.
func (sig Signature) Equal(other Signature) bool {
	if len(sig) != len(other) {
		return false
	}
	for i := range sig {
		if sig[i] != other[i] {
			return false
		}
	}
	return true
}

// Contains reports whether name is part of the signature.
func (sig Signature) Contains(name string) bool {
	i := sort.SearchStrings(sig, name)
	return i < len(sig) && sig[i] == name
}

func (sig Signature) String() string {
	return "{" + strings.Join(sig, ", ") + "}"
}

// union merges signatures which must not share any name. If they do, the
// first name found twice is returned as well.
func union(sigs ...Signature) (Signature, string) {
	var all Signature
	for _, s := range sigs {
		all = append(all, s...)
	}
	sort.Strings(all)
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			return nil, all[i]
		}
	}
	return all, ""
}
