package automata

import (
	"slices"
)

// Automaton is the operation surface shared by the NFA and DFA variants.
// An automaton owns its states and a reference to the alphabet its
// transitions and input words are drawn from. Construction is incremental:
// add states first, then transitions between existing states. Every
// transformation (Determinize, Complete, Minimize) derives a brand-new
// automaton and never mutates its input.
type Automaton interface {
	// Alphabet returns the alphabet the automaton was built over.
	Alphabet() *Alphabet

	// AddState registers a new state under the given label.
	AddState(label int, initial, final bool) error

	// AddTransition adds, for each distinct symbol in symbols, an edge
	// from the state labeled from to the state labeled to.
	AddTransition(symbols string, from, to int) error

	// Accepts simulates the automaton on word. A symbol outside the
	// alphabet fails with InvalidSymbolError.
	Accepts(word string) (bool, error)

	// IsDeterministic reports whether the automaton has at most one
	// initial state and at most one target per (state, symbol) pair.
	IsDeterministic() bool

	// IsComplete reports whether every (state, symbol) pair has at least
	// one target.
	IsComplete() bool

	// NumStates returns how many states the automaton has.
	NumStates() int

	// Labels returns all state labels in ascending order.
	Labels() []int

	// InitialStates returns the labels of all initial states in ascending
	// order.
	InitialStates() []int

	// FinalStates returns the labels of all final states in ascending
	// order.
	FinalStates() []int

	// IsFinal reports whether the state labeled label is final.
	IsFinal(label int) bool

	// Successors returns the targets of the transitions leaving the state
	// labeled from on symbol, in ascending order.
	Successors(from int, symbol rune) []int
}

// state is a single automaton state: a stable label, the initial/final
// flags, and the outgoing transition table. Target sets are owned by the
// enclosing automaton and never aliased across automata.
type state struct {
	label   int
	initial bool
	final   bool
	next    map[rune]map[int]struct{}
}

func newState(label int, initial, final bool) *state {
	return &state{
		label:   label,
		initial: initial,
		final:   final,
		next:    make(map[rune]map[int]struct{}),
	}
}

func (s *state) addEdge(symbol rune, to int) {
	targets, ok := s.next[symbol]
	if !ok {
		targets = make(map[int]struct{})
		s.next[symbol] = targets
	}
	targets[to] = struct{}{}
}

// core holds the state table shared by both automaton variants.
type core struct {
	alphabet *Alphabet
	states   map[int]*state
	initials map[int]struct{}
	finals   map[int]struct{}
}

func newCore(alphabet *Alphabet) core {
	return core{
		alphabet: alphabet,
		states:   make(map[int]*state),
		initials: make(map[int]struct{}),
		finals:   make(map[int]struct{}),
	}
}

func (c *core) addState(label int, initial, final bool) error {
	if _, ok := c.states[label]; ok {
		return &DuplicateLabelError{Label: label}
	}
	c.states[label] = newState(label, initial, final)
	if initial {
		c.initials[label] = struct{}{}
	}
	if final {
		c.finals[label] = struct{}{}
	}
	return nil
}

// addTransition validates the whole request before touching any state, so a
// failed call leaves the automaton exactly as it was.
func (c *core) addTransition(symbols string, from, to int, deterministic bool) error {
	fromState, ok := c.states[from]
	if !ok {
		return &UnknownStateError{Label: from}
	}
	if _, ok := c.states[to]; !ok {
		return &UnknownStateError{Label: to}
	}

	distinct := make([]rune, 0, len(symbols))
	seen := make(map[rune]struct{}, len(symbols))
	for _, r := range symbols {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		if !c.alphabet.Contains(r) {
			return &InvalidSymbolError{Symbol: r}
		}
		distinct = append(distinct, r)
	}

	if deterministic {
		for _, r := range distinct {
			for existing := range fromState.next[r] {
				if existing != to {
					return &NondeterministicTransitionError{
						From:     from,
						Symbol:   r,
						Existing: existing,
						Target:   to,
					}
				}
			}
		}
	}

	for _, r := range distinct {
		fromState.addEdge(r, to)
	}
	return nil
}

func (c *core) Alphabet() *Alphabet {
	return c.alphabet
}

func (c *core) NumStates() int {
	return len(c.states)
}

func (c *core) Labels() []int {
	labels := make([]int, 0, len(c.states))
	for label := range c.states {
		labels = append(labels, label)
	}
	slices.Sort(labels)
	return labels
}

func (c *core) InitialStates() []int {
	return sortedKeys(c.initials)
}

func (c *core) FinalStates() []int {
	return sortedKeys(c.finals)
}

func (c *core) IsFinal(label int) bool {
	_, ok := c.finals[label]
	return ok
}

func (c *core) Successors(from int, symbol rune) []int {
	s, ok := c.states[from]
	if !ok {
		return nil
	}
	return sortedKeys(s.next[symbol])
}

func (c *core) IsComplete() bool {
	for _, s := range c.states {
		for _, symbol := range c.alphabet.sorted {
			if len(s.next[symbol]) == 0 {
				return false
			}
		}
	}
	return true
}

// checkWord verifies every symbol of word against the alphabet before any
// simulation starts.
func (c *core) checkWord(word string) error {
	for _, r := range word {
		if !c.alphabet.Contains(r) {
			return &InvalidSymbolError{Symbol: r}
		}
	}
	return nil
}

// clone deep-copies the state table. The alphabet is shared by reference;
// it is immutable.
func (c *core) clone() core {
	out := newCore(c.alphabet)
	for label, s := range c.states {
		cp := newState(label, s.initial, s.final)
		for symbol, targets := range s.next {
			set := make(map[int]struct{}, len(targets))
			for t := range targets {
				set[t] = struct{}{}
			}
			cp.next[symbol] = set
		}
		out.states[label] = cp
	}
	for label := range c.initials {
		out.initials[label] = struct{}{}
	}
	for label := range c.finals {
		out.finals[label] = struct{}{}
	}
	return out
}

// denseIndex enumerates the labels in ascending order and returns the
// enumeration together with its inverse. Bitset-based bookkeeping works on
// the dense index because labels may be sparse.
func (c *core) denseIndex() ([]int, map[int]int) {
	labels := c.Labels()
	index := make(map[int]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}
	return labels, index
}

func sortedKeys(set map[int]struct{}) []int {
	keys := make([]int, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
