package automata

import (
	"fmt"
	"slices"

	"github.com/bits-and-blooms/bitset"
)

// IsEmptyLanguage reports whether a accepts no word at all: no final state
// is reachable from any initial state.
func IsEmptyLanguage(a Automaton) bool {
	labels := a.Labels()
	index := make(map[int]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	seen := bitset.New(uint(len(labels)))
	worklist := make([]int, 0, len(labels))
	for _, label := range a.InitialStates() {
		if a.IsFinal(label) {
			return false
		}
		seen.Set(uint(index[label]))
		worklist = append(worklist, label)
	}

	symbols := a.Alphabet().Symbols()
	for len(worklist) > 0 {
		label := worklist[0]
		worklist = worklist[1:]
		for _, symbol := range symbols {
			for _, to := range a.Successors(label, symbol) {
				if seen.Test(uint(index[to])) {
					continue
				}
				if a.IsFinal(to) {
					return false
				}
				seen.Set(uint(index[to]))
				worklist = append(worklist, to)
			}
		}
	}
	return true
}

// Equivalent reports whether a and b accept the same language. Both are
// brought to their canonical form (determinize if needed, complete,
// minimize) and the canonical DFAs are compared for isomorphism. Automata
// over different alphabets are never equivalent.
func Equivalent(a, b Automaton) (bool, error) {
	if !a.Alphabet().Equal(b.Alphabet()) {
		return false, nil
	}
	ca, err := canonical(a)
	if err != nil {
		return false, err
	}
	cb, err := canonical(b)
	if err != nil {
		return false, err
	}
	return Isomorphic(ca, cb), nil
}

func canonical(a Automaton) (*DFA, error) {
	var d *DFA
	switch v := a.(type) {
	case *DFA:
		d = v
	case *NFA:
		det, err := v.Determinize()
		if err != nil {
			return nil, err
		}
		d = det
	default:
		return nil, fmt.Errorf("unsupported automaton type %T", a)
	}
	return d.Complete().Minimize()
}

// Isomorphic reports whether a and b are the same DFA up to relabeling of
// states: a parallel walk from the initial states matches finality and
// transition structure pairwise.
func Isomorphic(a, b *DFA) bool {
	if a.NumStates() != b.NumStates() || !a.Alphabet().Equal(b.Alphabet()) {
		return false
	}
	ia, okA := a.initialState()
	ib, okB := b.initialState()
	if okA != okB {
		return false
	}
	if !okA {
		return a.NumStates() == 0 && b.NumStates() == 0
	}

	forward := map[int]int{ia: ib}
	backward := map[int]int{ib: ia}
	queue := [][2]int{{ia, ib}}

	for len(queue) > 0 {
		x, y := queue[0][0], queue[0][1]
		queue = queue[1:]
		if a.IsFinal(x) != b.IsFinal(y) {
			return false
		}
		for _, symbol := range a.alphabet.sorted {
			sx, okX := a.successor(x, symbol)
			sy, okY := b.successor(y, symbol)
			if okX != okY {
				return false
			}
			if !okX {
				continue
			}
			mapped, seen := forward[sx]
			mappedBack, seenBack := backward[sy]
			if seen != seenBack {
				return false
			}
			if seen {
				if mapped != sy || mappedBack != sx {
					return false
				}
				continue
			}
			forward[sx] = sy
			backward[sy] = sx
			queue = append(queue, [2]int{sx, sy})
		}
	}
	return true
}

// StructurallyEqual reports whether a and b have identical labels, flags,
// and transition tables over equal alphabets. This is stricter than
// Isomorphic: no relabeling is allowed.
func StructurallyEqual(a, b Automaton) bool {
	if !a.Alphabet().Equal(b.Alphabet()) {
		return false
	}
	la, lb := a.Labels(), b.Labels()
	if !slices.Equal(la, lb) {
		return false
	}
	if !slices.Equal(a.InitialStates(), b.InitialStates()) {
		return false
	}
	if !slices.Equal(a.FinalStates(), b.FinalStates()) {
		return false
	}
	symbols := a.Alphabet().Symbols()
	for _, label := range la {
		for _, symbol := range symbols {
			if !slices.Equal(a.Successors(label, symbol), b.Successors(label, symbol)) {
				return false
			}
		}
	}
	return true
}
