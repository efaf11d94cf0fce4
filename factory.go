package automata

// Canonical automata over a given alphabet. Handy as building blocks and as
// fixtures for the transformation properties.

// MakeEmpty returns a DFA with the empty language: a single non-final
// initial state and no transitions.
func MakeEmpty(alphabet *Alphabet) *DFA {
	d := NewDFA(alphabet)
	_ = d.AddState(0, true, false)
	return d
}

// MakeEmptyString returns a DFA that accepts only the empty word.
func MakeEmptyString(alphabet *Alphabet) *DFA {
	d := NewDFA(alphabet)
	_ = d.AddState(0, true, true)
	return d
}

// MakeAnyString returns a DFA that accepts every word over the alphabet.
func MakeAnyString(alphabet *Alphabet) *DFA {
	d := NewDFA(alphabet)
	_ = d.AddState(0, true, true)
	for _, symbol := range alphabet.sorted {
		_ = d.AddTransition(string(symbol), 0, 0)
	}
	return d
}

// MakeString returns a DFA that accepts exactly word. It fails with
// InvalidSymbolError if word uses a symbol outside the alphabet.
func MakeString(alphabet *Alphabet, word string) (*DFA, error) {
	d := NewDFA(alphabet)
	runes := []rune(word)
	if err := d.AddState(0, true, len(runes) == 0); err != nil {
		return nil, err
	}
	for i, symbol := range runes {
		if err := d.AddState(i+1, false, i == len(runes)-1); err != nil {
			return nil, err
		}
		if err := d.AddTransition(string(symbol), i, i+1); err != nil {
			return nil, err
		}
	}
	return d, nil
}
