// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"

	"github.com/katalvlaran/acgt/alphabet"
)

// newArena allocates every table for capacity nodes. All transitions and
// failure links start Absent.
func newArena(capacity int) *Automaton {
	a := &Automaton{
		next:     make([]NodeID, capacity*alphabet.Size),
		fail:     make([]NodeID, capacity),
		depth:    make([]int, capacity),
		out:      make([]outputSet, capacity),
		capacity: capacity,
		nodes:    1, // root
	}
	for i := range a.next {
		a.next[i] = Absent
	}
	for i := range a.fail {
		a.fail[i] = Absent
	}
	return a
}

// buildTrie inserts already sanitized patterns into a fresh arena sized to
// the upper bound Σlen(patterns)+1.
func buildTrie(patterns []string) (*Automaton, error) {
	capacity := 1
	for _, p := range patterns {
		capacity += len(p)
	}
	a := newArena(capacity)

	ids := make(map[string]int, len(patterns))
	for _, p := range patterns {
		if _, dup := ids[p]; dup {
			continue
		}
		id := len(a.patterns)
		if err := a.insert(p, id); err != nil {
			return nil, err
		}
		ids[p] = id
		a.patterns = append(a.patterns, p)
	}
	return a, nil
}

// insert walks p from the root, creating missing nodes with the next free
// id, and records id in the terminal node's output set.
func (a *Automaton) insert(p string, id int) error {
	cur := Root
	for i := 0; i < len(p); i++ {
		sym, ok := alphabet.Lookup(p[i])
		if !ok {
			return fmt.Errorf("automaton: pattern %q offset %d: %w", p, i, alphabet.ErrInvalidSymbol)
		}
		slot := a.slot(cur, sym)
		if a.next[slot] == Absent {
			// depth ≤ len(p) keeps a.nodes within capacity
			child := NodeID(a.nodes)
			a.nodes++
			a.next[slot] = child
			a.depth[child] = a.depth[cur] + 1
		}
		cur = a.next[slot]
	}
	a.out[cur].insert(id)
	return nil
}

// slot is the index of (node, sym) in the row-major goto table.
func (a *Automaton) slot(node NodeID, sym int) int {
	return int(node)*alphabet.Size + sym
}
