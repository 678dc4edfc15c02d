// SPDX-License-Identifier: MIT

// Package graphview turns a finished automaton into plain vertex and edge
// data for drawing. It reads the automaton only through its exported,
// read-only accessors and pulls in no drawing library; consumers (the acgt
// CLI, Graphviz, a plotting tool) decide how to render.
//
// What
//
//   - Export(a, opts...) → *Graph
//   - Vertices: one per trie node, ordered by NodeID, carrying the path
//     label spelled from the root, depth and output set.
//   - Edges: trie (goto) edges labelled with their symbol, ordered by
//     (From, Symbol), followed by failure edges ordered by From.
//   - By default the root's self-completions and failure links that point
//     at the root are left out. WithRootLinks() keeps them.
//   - (*Graph).Children() lists trie children per vertex in symbol order.
//   - (*Graph).Layout() places the trie as a left-to-right tree: x grows by
//     10 per level, each extra sibling subtree starts 10 lower on y.
//   - (*Graph).WriteDOT(w) emits Graphviz DOT: root blue, nodes with output
//     green, other nodes red, failure edges dashed green.
//
// Determinism
//
//	Vertex order, edge order, labels and layout depend only on the automaton,
//	so exporting the same automaton twice yields identical output.
package graphview
