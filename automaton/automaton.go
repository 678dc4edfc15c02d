// SPDX-License-Identifier: MIT

package automaton

import (
	"fmt"

	"github.com/katalvlaran/acgt/alphabet"
	"github.com/katalvlaran/acgt/sanitize"
)

// Automaton is a finished Aho–Corasick automaton. It is read-only after New
// returns and safe for concurrent use.
type Automaton struct {
	// next[node*alphabet.Size+sym] is the goto table; Absent where undefined.
	// The root row is total.
	next []NodeID
	// fail[node] is the failure link; fail[Root] == Absent.
	fail []NodeID
	// depth[node] is the trie depth (length of the node's path).
	depth []int
	// out[node] holds pattern ids recognised at node, inherited ones included.
	out []outputSet
	// patterns are the unique sanitized patterns, indexed by pattern id.
	patterns []string

	nodes    int // live nodes, root included
	capacity int // upper bound the tables were sized to
}

// New sanitizes patterns and builds the automaton.
// Returns ErrEmptyPatternSet if nothing survives sanitization, unless
// WithAllowEmpty is given.
// Complexity: O(m·|Σ|) time and space for m = Σlen(patterns).
func New(patterns []string, opts ...Option) (*Automaton, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	clean := sanitize.Patterns(patterns)
	if len(clean) == 0 && !o.AllowEmpty {
		return nil, fmt.Errorf("%w: %d candidates rejected", ErrEmptyPatternSet, len(patterns))
	}

	a, err := buildTrie(clean)
	if err != nil {
		return nil, err
	}
	newLinker(a, o).run()
	a.shrink()

	return a, nil
}

// shrink drops the unused tail of every table. The backing arrays keep
// their upper-bound size; only the visible length changes.
func (a *Automaton) shrink() {
	a.next = a.next[:a.nodes*alphabet.Size]
	a.fail = a.fail[:a.nodes]
	a.depth = a.depth[:a.nodes]
	a.out = a.out[:a.nodes]
}

// NodeCount returns the number of trie nodes, root included.
func (a *Automaton) NodeCount() int { return a.nodes }

// Capacity returns the node upper bound computed before construction:
// the summed length of the sanitized patterns plus one.
func (a *Automaton) Capacity() int { return a.capacity }

// PatternCount returns the number of unique sanitized patterns.
func (a *Automaton) PatternCount() int { return len(a.patterns) }

// Patterns returns a copy of the unique sanitized patterns in first-seen order.
func (a *Automaton) Patterns() []string {
	return append([]string(nil), a.patterns...)
}

// has reports whether node is a live node id.
func (a *Automaton) has(node NodeID) bool {
	return node >= 0 && int(node) < a.nodes
}

// Goto returns the direct transition of node on symbol index sym.
// ok is false when the transition is absent or the arguments are out of range.
// Root's row is total, so Goto(Root, s) always succeeds for valid s.
func (a *Automaton) Goto(node NodeID, sym int) (NodeID, bool) {
	if !a.has(node) || sym < 0 || sym >= alphabet.Size {
		return Absent, false
	}
	next := a.next[a.slot(node, sym)]
	return next, next != Absent
}

// Fail returns node's failure link. ok is false for Root and unknown ids.
func (a *Automaton) Fail(node NodeID) (NodeID, bool) {
	if !a.has(node) || node == Root {
		return Absent, false
	}
	return a.fail[node], true
}

// Depth returns the trie depth of node. ok is false for unknown ids.
func (a *Automaton) Depth(node NodeID) (int, bool) {
	if !a.has(node) {
		return 0, false
	}
	return a.depth[node], true
}

// Output returns the patterns recognised at node, longest first, including
// those inherited through failure links. Nil for unknown ids.
func (a *Automaton) Output(node NodeID) []string {
	if !a.has(node) {
		return nil
	}
	ids := a.out[node]
	if len(ids) == 0 {
		return nil
	}
	res := make([]string, len(ids))
	for i, id := range ids {
		res[i] = a.patterns[id]
	}
	return res
}

// Step returns the state reached from node on symbol index sym, following
// failure links while the direct transition is absent. ok is false when
// the arguments are out of range.
func (a *Automaton) Step(node NodeID, sym int) (NodeID, bool) {
	if !a.has(node) || sym < 0 || sym >= alphabet.Size {
		return Absent, false
	}
	return a.step(node, sym), true
}

// step is Step without validation.
func (a *Automaton) step(node NodeID, sym int) NodeID {
	for {
		if next := a.next[a.slot(node, sym)]; next != Absent {
			return next
		}
		node = a.fail[node]
	}
}
