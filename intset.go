package automata

import "slices"

// Hashable is a key usable with HashMap: a precomputable hash plus an
// equality check that disambiguates hash collisions.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// IntSet is a set of dense state indexes used as a key during subset
// construction. Members enumerates the set in ascending order.
type IntSet interface {
	Hashable

	Members() []int

	Size() int
}

func intSetsEqual(a, b IntSet) bool {
	return a.Size() == b.Size() && slices.Equal(a.Members(), b.Members())
}
