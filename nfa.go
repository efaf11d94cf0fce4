package automata

import (
	"github.com/bits-and-blooms/bitset"
)

var _ Automaton = (*NFA)(nil)

// NFA is a non-deterministic finite automaton: any number of initial states
// and zero or more targets per (state, symbol) pair.
type NFA struct {
	core
}

// NewNFA returns an empty NFA over the given alphabet.
func NewNFA(alphabet *Alphabet) *NFA {
	return &NFA{core: newCore(alphabet)}
}

// AddState registers a new state. It fails with DuplicateLabelError if the
// label is taken.
func (n *NFA) AddState(label int, initial, final bool) error {
	return n.addState(label, initial, final)
}

// AddTransition adds an edge from→to for each distinct symbol in symbols.
// Ambiguous transitions are allowed.
func (n *NFA) AddTransition(symbols string, from, to int) error {
	return n.addTransition(symbols, from, to, false)
}

// IsDeterministic reports whether the NFA happens to be deterministic: at
// most one initial state and at most one target per (state, symbol) pair.
func (n *NFA) IsDeterministic() bool {
	if len(n.initials) > 1 {
		return false
	}
	for _, s := range n.states {
		for _, targets := range s.next {
			if len(targets) > 1 {
				return false
			}
		}
	}
	return true
}

// Accepts simulates the NFA on word by tracking the set of states reachable
// on the prefix consumed so far, starting from the set of initial states.
// The word is accepted iff the final set intersects the final states. A
// symbol outside the alphabet fails with InvalidSymbolError; an NFA without
// any initial state fails with NoInitialStateError.
func (n *NFA) Accepts(word string) (bool, error) {
	if err := n.checkWord(word); err != nil {
		return false, err
	}
	if len(n.initials) == 0 {
		return false, &NoInitialStateError{}
	}

	current := make(map[int]struct{}, len(n.initials))
	for label := range n.initials {
		current[label] = struct{}{}
	}
	for _, symbol := range word {
		if len(current) == 0 {
			// The empty set is absorbing; the rest of the word cannot
			// resurrect the run.
			break
		}
		current = n.reachable(current, symbol)
	}

	for label := range current {
		if n.IsFinal(label) {
			return true, nil
		}
	}
	return false, nil
}

// reachable returns the union of the transition targets over symbol from
// every state in from.
func (n *NFA) reachable(from map[int]struct{}, symbol rune) map[int]struct{} {
	out := make(map[int]struct{})
	for label := range from {
		for to := range n.states[label].next[symbol] {
			out[to] = struct{}{}
		}
	}
	return out
}

// Determinize builds a DFA accepting the same language via subset
// construction. Worst case the result has 2^n states for an n-state NFA;
// that blow-up is inherent to the algorithm.
//
// Discovered state sets are assigned labels 0,1,2,… in discovery order,
// with symbols visited in ascending order, so determinizing the same NFA
// twice yields structurally identical DFAs. A subset without successors on
// some symbol gets no transition; the result is left partial, completion is
// a separate step.
func (n *NFA) Determinize() (*DFA, error) {
	if len(n.initials) == 0 {
		return nil, &NoInitialStateError{}
	}

	labels, index := n.denseIndex()
	finals := bitset.New(uint(len(labels)))
	for label := range n.finals {
		finals.Set(uint(index[label]))
	}

	dfa := NewDFA(n.alphabet)

	set := NewStateSet()
	for label := range n.initials {
		set.Incr(index[label])
	}
	initialSet := set.Freeze(0)
	if err := dfa.AddState(0, true, anyFinal(initialSet, finals)); err != nil {
		return nil, err
	}

	newLabels := NewHashMap[int](WithCapacity(1))
	newLabels.Set(initialSet, 0)
	worklist := []*FrozenIntSet{initialSet}

	scratch := NewStateSet()
	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		for _, symbol := range n.alphabet.sorted {
			scratch.Clear()
			for _, idx := range current.Members() {
				for to := range n.states[labels[idx]].next[symbol] {
					scratch.Incr(index[to])
				}
			}
			if scratch.Size() == 0 {
				continue
			}

			to, ok := newLabels.Get(scratch)
			if !ok {
				to = newLabels.Size()
				frozen := scratch.Freeze(to)
				if err := dfa.AddState(to, false, anyFinal(frozen, finals)); err != nil {
					return nil, err
				}
				newLabels.Set(frozen, to)
				worklist = append(worklist, frozen)
			}
			if err := dfa.AddTransition(string(symbol), current.State(), to); err != nil {
				return nil, err
			}
		}
	}

	return dfa, nil
}

func anyFinal(set IntSet, finals *bitset.BitSet) bool {
	for _, idx := range set.Members() {
		if finals.Test(uint(idx)) {
			return true
		}
	}
	return false
}
