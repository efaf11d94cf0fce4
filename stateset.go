package automata

import "slices"

var _ IntSet = &StateSet{}

// StateSet is a mutable set of state indexes with counted membership and an
// incrementally maintained hash. The determinizer reuses one StateSet to
// accumulate the successor set for each (subset, symbol) pair, then calls
// Freeze to obtain an immutable key.
type StateSet struct {
	inner       map[int]int
	hashUpdated bool
	hashCode    uint64
}

func NewStateSet() *StateSet {
	return &StateSet{
		inner: make(map[int]int),
	}
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = uint64(len(s.inner))
	for k := range s.inner {
		s.hashCode += uint64(mix(k))
	}
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return s.Hash() == is.Hash() && intSetsEqual(s, is)
}

// Members returns the member indexes in ascending order.
func (s *StateSet) Members() []int {
	keys := make([]int, 0, len(s.inner))
	for k := range s.inner {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func (s *StateSet) Size() int {
	return len(s.inner)
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Incr adds one occurrence of state to the set.
func (s *StateSet) Incr(state int) {
	s.inner[state]++
	if s.inner[state] == 1 {
		s.keyChanged()
	}
}

// Decr removes one occurrence of state; the state leaves the set when its
// count drops to zero.
func (s *StateSet) Decr(state int) {
	count, ok := s.inner[state]
	if !ok {
		return
	}
	if count == 1 {
		delete(s.inner, state)
		s.keyChanged()
	} else {
		s.inner[state]--
	}
}

// Clear empties the set so it can be reused for the next successor
// computation.
func (s *StateSet) Clear() {
	clear(s.inner)
	s.keyChanged()
}

// Freeze snapshots the set into an immutable FrozenIntSet associated with
// the given result-automaton state.
func (s *StateSet) Freeze(state int) *FrozenIntSet {
	return NewFrozenIntSet(s.Members(), s.Hash(), state)
}
