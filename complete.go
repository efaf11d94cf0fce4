package automata

import (
	"github.com/bits-and-blooms/bitset"
)

// Complete returns a DFA whose transition function is total: every
// (state, symbol) pair has exactly one target. If d is already complete it
// is returned unchanged, which makes completion idempotent; otherwise a
// copy is returned with one new non-final sink state that carries a
// self-loop on every symbol and receives every missing transition.
func (d *DFA) Complete() *DFA {
	out, added := completedCore(&d.core)
	if !added {
		return d
	}
	return &DFA{core: out}
}

// Complete is the NFA counterpart of (*DFA).Complete: same sink-state
// construction, same idempotence.
func (n *NFA) Complete() *NFA {
	out, added := completedCore(&n.core)
	if !added {
		return n
	}
	return &NFA{core: out}
}

// completedCore reports whether any transition was missing and, if so,
// returns a totalized copy of c. The sink is labeled one past the highest
// existing label so it can never collide.
func completedCore(c *core) (core, bool) {
	symbols := c.alphabet.sorted

	labels := c.Labels()
	missing := make(map[int][]rune)
	for _, label := range labels {
		s := c.states[label]
		covered := bitset.New(uint(len(symbols)))
		for i, symbol := range symbols {
			if len(s.next[symbol]) > 0 {
				covered.Set(uint(i))
			}
		}
		if covered.Count() == uint(len(symbols)) {
			continue
		}
		for i, symbol := range symbols {
			if !covered.Test(uint(i)) {
				missing[label] = append(missing[label], symbol)
			}
		}
	}

	if len(missing) == 0 {
		return core{}, false
	}

	out := c.clone()
	sink := labels[len(labels)-1] + 1
	out.states[sink] = newState(sink, false, false)
	for _, symbol := range symbols {
		out.states[sink].addEdge(symbol, sink)
	}
	for label, runes := range missing {
		for _, symbol := range runes {
			out.states[label].addEdge(symbol, sink)
		}
	}
	return out, true
}
