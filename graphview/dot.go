// SPDX-License-Identifier: MIT

package graphview

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fill colours used by WriteDOT.
const (
	colorRoot     = "blue"
	colorTerminal = "green"
	colorInner    = "red"
)

// WriteDOT writes g as a Graphviz digraph. Vertex labels are the trie
// paths ("ε" for the root); terminal vertices carry their output set as
// a tooltip.
func (g *Graph) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph acgt {")
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tnode [shape=circle, style=filled, fontsize=8];")

	for _, v := range g.Vertices {
		label, color := v.Label, colorInner
		switch {
		case v.Root():
			label, color = "ε", colorRoot
		case v.Terminal():
			color = colorTerminal
		}
		fmt.Fprintf(bw, "\t%d [label=%q, fillcolor=%s", v.ID, label, color)
		if v.Terminal() {
			fmt.Fprintf(bw, ", tooltip=%q", strings.Join(v.Outputs, " "))
		}
		fmt.Fprintln(bw, "];")
	}

	for _, e := range g.Edges {
		switch e.Kind {
		case KindGoto:
			fmt.Fprintf(bw, "\t%d -> %d [label=%q];\n", e.From, e.To, string(e.Symbol))
		case KindFail:
			fmt.Fprintf(bw, "\t%d -> %d [style=dashed, color=%s, constraint=false];\n", e.From, e.To, colorTerminal)
		}
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
