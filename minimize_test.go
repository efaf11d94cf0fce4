package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimizeRequiresCompleteInput(t *testing.T) {
	d := NewDFA(mustAlphabet(t, "ab"))
	require.NoError(t, d.AddState(0, true, true))
	require.NoError(t, d.AddState(1, false, false))
	require.NoError(t, d.AddTransition("a", 0, 1))

	var incomplete *IncompleteAutomatonError
	_, err := d.Minimize()
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, 0, incomplete.Label)
	assert.Equal(t, 'b', incomplete.Symbol)
}

func TestMinimizeRequiresInitialState(t *testing.T) {
	d := NewDFA(mustAlphabet(t, "a"))
	require.NoError(t, d.AddState(0, false, true))
	require.NoError(t, d.AddTransition("a", 0, 0))

	var noInit *NoInitialStateError
	_, err := d.Minimize()
	require.ErrorAs(t, err, &noInit)
}

func TestMinimizeDropsUnreachableStates(t *testing.T) {
	// States 2 and 3 mirror 0's transitions but are unreachable.
	d := NewDFA(mustAlphabet(t, "01"))
	require.NoError(t, d.AddState(0, true, true))
	require.NoError(t, d.AddState(1, false, false))
	require.NoError(t, d.AddState(2, false, false))
	require.NoError(t, d.AddState(3, false, false))
	require.NoError(t, d.AddTransition("0", 0, 0))
	require.NoError(t, d.AddTransition("1", 0, 1))
	require.NoError(t, d.AddTransition("1", 1, 1))
	require.NoError(t, d.AddTransition("0", 1, 0))
	require.NoError(t, d.AddTransition("0", 2, 0))
	require.NoError(t, d.AddTransition("1", 2, 1))
	require.NoError(t, d.AddTransition("0", 3, 0))
	require.NoError(t, d.AddTransition("1", 3, 1))

	m, err := d.Minimize()
	require.NoError(t, err)

	assert.Equal(t, 2, m.NumStates())
	assert.True(t, m.IsComplete())
	requireSameLanguage(t, d, m, "01", 6)
}

func TestMinimizeMergesEquivalentStates(t *testing.T) {
	// "Ends in a", built deliberately redundantly: two interchangeable
	// final states and two interchangeable non-final states.
	d := NewDFA(mustAlphabet(t, "ab"))
	require.NoError(t, d.AddState(0, true, false))
	require.NoError(t, d.AddState(1, false, true))
	require.NoError(t, d.AddState(2, false, true))
	require.NoError(t, d.AddState(3, false, false))
	require.NoError(t, d.AddTransition("a", 0, 1))
	require.NoError(t, d.AddTransition("b", 0, 3))
	require.NoError(t, d.AddTransition("a", 1, 2))
	require.NoError(t, d.AddTransition("b", 1, 0))
	require.NoError(t, d.AddTransition("a", 2, 1))
	require.NoError(t, d.AddTransition("b", 2, 3))
	require.NoError(t, d.AddTransition("a", 3, 2))
	require.NoError(t, d.AddTransition("b", 3, 0))

	m, err := d.Minimize()
	require.NoError(t, err)

	// The minimal complete DFA for "ends in a" has two states.
	assert.Equal(t, 2, m.NumStates())
	assert.True(t, m.IsDeterministic())
	assert.True(t, m.IsComplete())
	requireSameLanguage(t, d, m, "ab", 6)
}

func TestMinimizePipelineFromNFA(t *testing.T) {
	n := referenceNFA(t)

	d, err := n.Determinize()
	require.NoError(t, err)
	m, err := d.Complete().Minimize()
	require.NoError(t, err)

	// The reference language ("ends in a") needs exactly two states.
	assert.Equal(t, 2, m.NumStates())
	requireSameLanguage(t, n, m, "ab", 6)

	// Minimality: no equivalent DFA is smaller than the minimized one.
	assert.LessOrEqual(t, m.NumStates(), d.Complete().NumStates())
}

func TestMinimizeIsIdempotent(t *testing.T) {
	n := referenceNFA(t)
	d, err := n.Determinize()
	require.NoError(t, err)
	m, err := d.Complete().Minimize()
	require.NoError(t, err)

	again, err := m.Minimize()
	require.NoError(t, err)

	assert.Equal(t, m.NumStates(), again.NumStates())
	assert.True(t, Isomorphic(m, again))
}

func TestMinimizeAllStatesEquivalent(t *testing.T) {
	// Both states accept everything; one block remains.
	d := NewDFA(mustAlphabet(t, "a"))
	require.NoError(t, d.AddState(0, true, true))
	require.NoError(t, d.AddState(1, false, true))
	require.NoError(t, d.AddTransition("a", 0, 1))
	require.NoError(t, d.AddTransition("a", 1, 0))

	m, err := d.Minimize()
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumStates())
	assert.True(t, Isomorphic(m, MakeAnyString(mustAlphabet(t, "a"))))
}

func TestMinimizeEmptyBlockStillRefines(t *testing.T) {
	// No final state at all: the final block starts empty and the result
	// collapses to a single rejecting state.
	d := NewDFA(mustAlphabet(t, "ab"))
	require.NoError(t, d.AddState(0, true, false))
	require.NoError(t, d.AddState(1, false, false))
	require.NoError(t, d.AddTransition("ab", 0, 1))
	require.NoError(t, d.AddTransition("ab", 1, 0))

	m, err := d.Minimize()
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumStates())
	assert.True(t, IsEmptyLanguage(m))
}

func TestMinimizeDoesNotMutateInput(t *testing.T) {
	d := lastSymbolDFA(t)
	require.True(t, d.IsComplete())

	_, err := d.Minimize()
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
	assert.Equal(t, []int{0, 1}, d.Labels())
}
