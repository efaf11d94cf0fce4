package automata

import (
	"strconv"
	"strings"
)

// Minimize returns the unique minimal complete DFA recognizing the same
// language, computed by Moore partition refinement over the reachable part
// of d. Two states end in the same block iff no suffix distinguishes their
// acceptance behavior.
//
// The input must be complete; a missing (state, symbol) pair fails with
// IncompleteAutomatonError. A DFA without an initial state fails with
// NoInitialStateError.
func (d *DFA) Minimize() (*DFA, error) {
	initial, ok := d.initialState()
	if !ok {
		return nil, &NoInitialStateError{}
	}
	for _, label := range d.Labels() {
		for _, symbol := range d.alphabet.sorted {
			if _, ok := d.successor(label, symbol); !ok {
				return nil, &IncompleteAutomatonError{Label: label, Symbol: symbol}
			}
		}
	}

	// The minimal DFA is only unique over the reachable part; unreachable
	// states never influence the language.
	reach, err := d.ReachablePart()
	if err != nil {
		return nil, err
	}

	order := reach.discoveryOrder(initial)

	// Partition refinement. Block ids are assigned by first appearance in
	// discovery order, which keeps repeated minimization reproducible and
	// pins the initial state's block to id 0.
	var blockOf map[int]int
	assign := func(signature func(label int) string) int {
		ids := make(map[string]int)
		next := make(map[int]int, len(order))
		for _, label := range order {
			key := signature(label)
			id, ok := ids[key]
			if !ok {
				id = len(ids)
				ids[key] = id
			}
			next[label] = id
		}
		blockOf = next
		return len(ids)
	}

	numBlocks := assign(func(label int) string {
		if reach.IsFinal(label) {
			return "f"
		}
		return "n"
	})

	// Split states that disagree on their successor block for some symbol,
	// until a full pass produces no further splits. Each pass either grows
	// the block count or is the last, so this terminates within
	// len(order) passes.
	for {
		split := assign(func(label int) string {
			var sb strings.Builder
			sb.WriteString(strconv.Itoa(blockOf[label]))
			for _, symbol := range reach.alphabet.sorted {
				to, _ := reach.successor(label, symbol)
				sb.WriteByte(',')
				sb.WriteString(strconv.Itoa(blockOf[to]))
			}
			return sb.String()
		})
		if split == numBlocks {
			break
		}
		numBlocks = split
	}

	// One state per block. By the fixed point, every member of a block
	// agrees on its successor block for every symbol, so any
	// representative defines the block's transitions.
	reps := make([]int, numBlocks)
	filled := make([]bool, numBlocks)
	for _, label := range order {
		b := blockOf[label]
		if !filled[b] {
			reps[b] = label
			filled[b] = true
		}
	}

	out := NewDFA(d.alphabet)
	for b := 0; b < numBlocks; b++ {
		if err := out.AddState(b, b == blockOf[initial], reach.IsFinal(reps[b])); err != nil {
			return nil, err
		}
	}
	for b := 0; b < numBlocks; b++ {
		for _, symbol := range d.alphabet.sorted {
			to, _ := reach.successor(reps[b], symbol)
			if err := out.AddTransition(string(symbol), b, blockOf[to]); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// discoveryOrder returns all states reachable from initial, in BFS order
// with symbols visited ascending. The receiver must only contain reachable
// states for the order to cover it.
func (d *DFA) discoveryOrder(initial int) []int {
	order := make([]int, 0, len(d.states))
	seen := make(map[int]struct{}, len(d.states))
	seen[initial] = struct{}{}
	queue := []int{initial}
	for len(queue) > 0 {
		label := queue[0]
		queue = queue[1:]
		order = append(order, label)
		for _, symbol := range d.alphabet.sorted {
			if to, ok := d.successor(label, symbol); ok {
				if _, dup := seen[to]; !dup {
					seen[to] = struct{}{}
					queue = append(queue, to)
				}
			}
		}
	}
	return order
}
