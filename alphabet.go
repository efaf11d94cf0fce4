package automata

import (
	"errors"
	"slices"
)

// Alphabet is an immutable, non-empty set of symbols. An alphabet is fixed
// when the automaton is constructed and shared by reference by every
// automaton derived from it; it is never mutated afterwards.
type Alphabet struct {
	symbols map[rune]struct{}
	sorted  []rune
}

// NewAlphabet builds an alphabet from the distinct runes of symbols.
func NewAlphabet(symbols string) (*Alphabet, error) {
	set := make(map[rune]struct{})
	for _, r := range symbols {
		set[r] = struct{}{}
	}
	if len(set) == 0 {
		return nil, errors.New("alphabet must contain at least one symbol")
	}

	sorted := make([]rune, 0, len(set))
	for r := range set {
		sorted = append(sorted, r)
	}
	slices.Sort(sorted)

	return &Alphabet{symbols: set, sorted: sorted}, nil
}

// Contains reports whether r belongs to the alphabet.
func (ab *Alphabet) Contains(r rune) bool {
	_, ok := ab.symbols[r]
	return ok
}

// Symbols returns the alphabet's symbols in ascending order. The returned
// slice is a copy.
func (ab *Alphabet) Symbols() []rune {
	return slices.Clone(ab.sorted)
}

// Len returns the number of symbols in the alphabet.
func (ab *Alphabet) Len() int {
	return len(ab.sorted)
}

// Equal reports whether both alphabets contain the same symbols.
func (ab *Alphabet) Equal(other *Alphabet) bool {
	return slices.Equal(ab.sorted, other.sorted)
}
