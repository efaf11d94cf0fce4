package automata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteDFA(t *testing.T) {
	// Accepts (b(a+b))*: 0 --b--> 1, 1 --a,b--> 0.
	d := NewDFA(mustAlphabet(t, "ab"))
	require.NoError(t, d.AddState(0, true, true))
	require.NoError(t, d.AddState(1, false, false))
	require.NoError(t, d.AddTransition("b", 0, 1))
	require.NoError(t, d.AddTransition("ab", 1, 0))
	require.False(t, d.IsComplete())

	c := d.Complete()
	assert.True(t, c.IsComplete())
	assert.Equal(t, 3, c.NumStates())

	// The sink takes the next free label, is non-final, and loops on
	// every symbol.
	assert.Equal(t, []int{2}, c.Successors(0, 'a'))
	assert.Equal(t, []int{2}, c.Successors(2, 'a'))
	assert.Equal(t, []int{2}, c.Successors(2, 'b'))
	assert.False(t, c.IsFinal(2))

	for word, want := range map[string]bool{
		"babb":   true,
		"abbaba": false,
	} {
		got, err := c.Accepts(word)
		require.NoError(t, err)
		assert.Equal(t, want, got, "word %q", word)
	}

	// The input keeps its missing transitions.
	assert.False(t, d.IsComplete())
	assert.Equal(t, 2, d.NumStates())
}

func TestCompletePreservesLanguage(t *testing.T) {
	t.Run("DFA", func(t *testing.T) {
		d := NewDFA(mustAlphabet(t, "ab"))
		require.NoError(t, d.AddState(0, true, false))
		require.NoError(t, d.AddState(1, false, true))
		require.NoError(t, d.AddTransition("a", 0, 1))
		require.NoError(t, d.AddTransition("b", 1, 0))

		requireSameLanguage(t, d, d.Complete(), "ab", 6)
	})

	t.Run("NFA", func(t *testing.T) {
		n := NewNFA(mustAlphabet(t, "ab"))
		require.NoError(t, n.AddState(0, true, false))
		require.NoError(t, n.AddState(1, false, true))
		require.NoError(t, n.AddTransition("a", 0, 0))
		require.NoError(t, n.AddTransition("a", 0, 1))

		c := n.Complete()
		assert.True(t, c.IsComplete())
		requireSameLanguage(t, n, c, "ab", 6)
	})
}

func TestCompleteIsIdempotent(t *testing.T) {
	d := NewDFA(mustAlphabet(t, "ab"))
	require.NoError(t, d.AddState(0, true, true))
	require.NoError(t, d.AddState(1, false, false))
	require.NoError(t, d.AddTransition("b", 0, 1))

	once := d.Complete()
	twice := once.Complete()

	// An already total automaton is returned unchanged: no second sink.
	assert.Same(t, once, twice)
	assert.True(t, StructurallyEqual(once, twice))
}

func TestCompleteAlreadyTotal(t *testing.T) {
	d := MakeAnyString(mustAlphabet(t, "ab"))
	require.True(t, d.IsComplete())
	assert.Same(t, d, d.Complete())
}

func TestCompleteSparseLabels(t *testing.T) {
	// Sink label must not collide with user labels.
	d := NewDFA(mustAlphabet(t, "a"))
	require.NoError(t, d.AddState(3, true, true))
	require.NoError(t, d.AddState(7, false, false))
	require.NoError(t, d.AddTransition("a", 3, 7))

	c := d.Complete()
	assert.True(t, c.IsComplete())
	assert.Equal(t, []int{3, 7, 8}, c.Labels())
	assert.Equal(t, []int{8}, c.Successors(7, 'a'))
}
