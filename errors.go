package automata

import "fmt"

// DuplicateLabelError indicates that a state with the same label has already
// been added to the automaton.
type DuplicateLabelError struct {
	Label int
}

func (e *DuplicateLabelError) Error() string {
	return fmt.Sprintf("a state with label %d already exists", e.Label)
}

// UnknownStateError indicates that a transition references a label for which
// no state has been added.
type UnknownStateError struct {
	Label int
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("state with label %d does not exist", e.Label)
}

// InvalidSymbolError indicates a symbol outside the automaton's alphabet,
// either in a transition or in a word passed to Accepts.
type InvalidSymbolError struct {
	Symbol rune
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("symbol %q is not in the automaton's alphabet", e.Symbol)
}

// NondeterministicTransitionError indicates an attempt to add a second
// transition with a different target for the same (state, symbol) pair of a
// DFA.
type NondeterministicTransitionError struct {
	From     int
	Symbol   rune
	Existing int
	Target   int
}

func (e *NondeterministicTransitionError) Error() string {
	return fmt.Sprintf("state %d already has a transition on %q to %d; cannot add one to %d",
		e.From, e.Symbol, e.Existing, e.Target)
}

// IncompleteAutomatonError indicates a (state, symbol) pair without a target,
// found where a complete automaton is required.
type IncompleteAutomatonError struct {
	Label  int
	Symbol rune
}

func (e *IncompleteAutomatonError) Error() string {
	return fmt.Sprintf("automaton is not complete: state %d has no transition on %q", e.Label, e.Symbol)
}

// NoInitialStateError indicates an automaton without any initial state where
// execution or determinization requires one.
type NoInitialStateError struct{}

func (e *NoInitialStateError) Error() string {
	return "automaton has no initial state"
}

// MultipleInitialStatesError indicates an attempt to mark a second state of a
// DFA as initial.
type MultipleInitialStatesError struct {
	Existing int
	Label    int
}

func (e *MultipleInitialStatesError) Error() string {
	return fmt.Sprintf("state %d is already initial; a DFA must have a single initial state (got %d)",
		e.Existing, e.Label)
}
