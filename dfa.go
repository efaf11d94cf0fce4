package automata

import (
	"github.com/bits-and-blooms/bitset"
)

var _ Automaton = (*DFA)(nil)

// DFA is a deterministic finite automaton: a single initial state and at
// most one target per (state, symbol) pair. Both restrictions are enforced
// at construction time, so a DFA value never becomes nondeterministic.
type DFA struct {
	core
}

// NewDFA returns an empty DFA over the given alphabet.
func NewDFA(alphabet *Alphabet) *DFA {
	return &DFA{core: newCore(alphabet)}
}

// AddState registers a new state. It fails with DuplicateLabelError if the
// label is taken and with MultipleInitialStatesError if a second state is
// marked initial.
func (d *DFA) AddState(label int, initial, final bool) error {
	if initial {
		if existing, ok := d.initialState(); ok {
			return &MultipleInitialStatesError{Existing: existing, Label: label}
		}
	}
	return d.addState(label, initial, final)
}

// AddTransition adds an edge from→to for each distinct symbol in symbols.
// A second transition on the same (state, symbol) pair with a different
// target fails with NondeterministicTransitionError.
func (d *DFA) AddTransition(symbols string, from, to int) error {
	return d.addTransition(symbols, from, to, true)
}

// IsDeterministic always reports true; determinism is a construction
// invariant of the DFA variant.
func (d *DFA) IsDeterministic() bool {
	return true
}

// Accepts runs the DFA on word: starting at the initial state, follow the
// unique transition for each symbol. The run dies, and the word is
// rejected, as soon as a transition is missing. A symbol outside the
// alphabet fails with InvalidSymbolError; a DFA without an initial state
// fails with NoInitialStateError.
func (d *DFA) Accepts(word string) (bool, error) {
	if err := d.checkWord(word); err != nil {
		return false, err
	}
	current, ok := d.initialState()
	if !ok {
		return false, &NoInitialStateError{}
	}

	for _, symbol := range word {
		next, ok := d.successor(current, symbol)
		if !ok {
			return false, nil
		}
		current = next
	}
	return d.IsFinal(current), nil
}

// ReachablePart returns a new DFA restricted to the states reachable from
// the initial state. Labels are preserved.
func (d *DFA) ReachablePart() (*DFA, error) {
	initial, ok := d.initialState()
	if !ok {
		return nil, &NoInitialStateError{}
	}

	labels, index := d.denseIndex()
	marked := bitset.New(uint(len(labels)))
	marked.Set(uint(index[initial]))
	worklist := []int{initial}

	for len(worklist) > 0 {
		label := worklist[0]
		worklist = worklist[1:]
		for _, symbol := range d.alphabet.sorted {
			if next, ok := d.successor(label, symbol); ok {
				if !marked.Test(uint(index[next])) {
					marked.Set(uint(index[next]))
					worklist = append(worklist, next)
				}
			}
		}
	}

	out := NewDFA(d.alphabet)
	for _, label := range labels {
		if !marked.Test(uint(index[label])) {
			continue
		}
		s := d.states[label]
		if err := out.AddState(label, s.initial, s.final); err != nil {
			return nil, err
		}
	}
	for _, label := range labels {
		if !marked.Test(uint(index[label])) {
			continue
		}
		for _, symbol := range d.alphabet.sorted {
			if next, ok := d.successor(label, symbol); ok {
				if err := out.AddTransition(string(symbol), label, next); err != nil {
					return nil, err
				}
			}
		}
	}
	return out, nil
}

// successor returns the unique target of the transition leaving from on
// symbol, if any.
func (d *DFA) successor(from int, symbol rune) (int, bool) {
	s, ok := d.states[from]
	if !ok {
		return 0, false
	}
	for to := range s.next[symbol] {
		return to, true
	}
	return 0, false
}

func (d *DFA) initialState() (int, bool) {
	for label := range d.initials {
		return label, true
	}
	return 0, false
}
