package automata

var _ IntSet = &FrozenIntSet{}

// FrozenIntSet is an immutable set of state indexes with a precomputed
// hash, remembering which result-automaton state was assigned to it. Equal
// member sets always carry equal hashes, so repeated determinization of the
// same input discovers identical keys in identical order.
type FrozenIntSet struct {
	values   []int
	state    int
	hashCode uint64
}

// NewFrozenIntSet wraps the already sorted values; the caller hands over
// ownership of the slice.
func NewFrozenIntSet(values []int, hashCode uint64, state int) *FrozenIntSet {
	return &FrozenIntSet{values: values, state: state, hashCode: hashCode}
}

func (f *FrozenIntSet) Hash() uint64 {
	return f.hashCode
}

func (f *FrozenIntSet) Equals(other Hashable) bool {
	is, ok := other.(IntSet)
	if !ok {
		return false
	}
	return f.hashCode == is.Hash() && intSetsEqual(f, is)
}

// Members returns the member indexes in ascending order. The slice is owned
// by the set and must not be mutated.
func (f *FrozenIntSet) Members() []int {
	return f.values
}

func (f *FrozenIntSet) Size() int {
	return len(f.values)
}

// State returns the result-automaton state this set was frozen for.
func (f *FrozenIntSet) State() int {
	return f.state
}
