// SPDX-License-Identifier: MIT

package graphview

import (
	"github.com/katalvlaran/acgt/alphabet"
	"github.com/katalvlaran/acgt/automaton"
)

// Export builds the vertex/edge view of a.
// Returns ErrNilAutomaton if a is nil.
// Complexity: O(V·|Σ|) time and O(V·depth) space for the labels.
func Export(a *automaton.Automaton, opts ...Option) (*Graph, error) {
	if a == nil {
		return nil, ErrNilAutomaton
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := a.NodeCount()
	g := &Graph{
		Vertices: make([]Vertex, n),
		Edges:    make([]Edge, 0, 2*n),
	}
	labels := trieLabels(a)

	for id := 0; id < n; id++ {
		node := automaton.NodeID(id)
		depth, _ := a.Depth(node)
		g.Vertices[id] = Vertex{
			ID:      node,
			Label:   labels[id],
			Depth:   depth,
			Outputs: a.Output(node),
		}
		for sym := 0; sym < alphabet.Size; sym++ {
			next, ok := a.Goto(node, sym)
			if !ok || (next == automaton.Root && !o.RootLinks) {
				continue
			}
			symbol, _ := alphabet.Symbol(sym)
			g.Edges = append(g.Edges, Edge{From: node, To: next, Kind: KindGoto, Symbol: symbol})
		}
	}

	for id := 1; id < n; id++ {
		node := automaton.NodeID(id)
		fail, ok := a.Fail(node)
		if !ok || (fail == automaton.Root && !o.RootLinks) {
			continue
		}
		g.Edges = append(g.Edges, Edge{From: node, To: fail, Kind: KindFail})
	}

	return g, nil
}

// trieLabels spells every node's path with a breadth-first walk over trie
// edges. Root completions are skipped so each node is reached once.
func trieLabels(a *automaton.Automaton) []string {
	labels := make([]string, a.NodeCount())
	queue := make([]automaton.NodeID, 0, a.NodeCount())
	queue = append(queue, automaton.Root)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for sym := 0; sym < alphabet.Size; sym++ {
			v, ok := a.Goto(u, sym)
			if !ok || v == automaton.Root {
				continue
			}
			symbol, _ := alphabet.Symbol(sym)
			labels[v] = labels[u] + string(symbol)
			queue = append(queue, v)
		}
	}
	return labels
}

// Children returns the trie children of every vertex in symbol order,
// indexed by NodeID. Root self-completions are not children.
func (g *Graph) Children() [][]automaton.NodeID {
	kids := make([][]automaton.NodeID, len(g.Vertices))
	for _, e := range g.Edges {
		if e.Kind != KindGoto || e.To == automaton.Root {
			continue
		}
		kids[e.From] = append(kids[e.From], e.To)
	}
	return kids
}

// Layout assigns every vertex a position: x = 10·depth; the first child
// shares its parent's y and each further sibling subtree starts 10 below
// the lowest y used so far.
func (g *Graph) Layout() []Position {
	const step = 10
	pos := make([]Position, len(g.Vertices))
	if len(pos) == 0 {
		return pos
	}
	kids := g.Children()

	var place func(u automaton.NodeID, y int) int
	place = func(u automaton.NodeID, y int) int {
		for i, v := range kids[u] {
			if i > 0 {
				y -= step
			}
			pos[v] = Position{X: pos[u].X + step, Y: y}
			y = place(v, y)
		}
		return y
	}
	place(automaton.Root, 0)
	return pos
}
