package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/acgt/automaton"
	"github.com/katalvlaran/acgt/graphview"
)

// Tree colours follow the DOT output: root blue, terminal green, inner red.
var (
	rootStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	terminalStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("34"))
	innerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (e *env) render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(e.stderr)
	patternsPath := fs.String("patterns", "", "YAML pattern file")
	var inline stringSlice
	fs.Var(&inline, "p", "pattern to insert (repeatable)")
	format := fs.String("format", "tree", "output format: tree or dot")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := e.build(*patternsPath, inline)
	if err != nil {
		return err
	}
	return writeGraph(e.stdout, a, *format)
}

// writeGraph exports a and writes it in the requested format.
func writeGraph(w io.Writer, a *automaton.Automaton, format string) error {
	g, err := graphview.Export(a)
	if err != nil {
		return err
	}
	switch format {
	case "dot":
		return g.WriteDOT(w)
	case "tree":
		_, err = io.WriteString(w, renderTree(g))
		return err
	default:
		return fmt.Errorf("unknown -format %q (want tree or dot)", format)
	}
}

// renderTree draws the trie with box-drawing guides, one node per line:
//
//	ε
//	├─ A #4
//	│  └─ T #5 {AT}
//	└─ C #1
//	   └─ A #2 ⇢ #4
func renderTree(g *graphview.Graph) string {
	if len(g.Vertices) == 0 {
		return ""
	}
	kids := g.Children()
	fails := make(map[automaton.NodeID]automaton.NodeID)
	for _, e := range g.Edges {
		if e.Kind == graphview.KindFail {
			fails[e.From] = e.To
		}
	}

	var sb strings.Builder
	sb.WriteString(rootStyle.Render("ε"))
	sb.WriteByte('\n')

	var walk func(u automaton.NodeID, indent string)
	walk = func(u automaton.NodeID, indent string) {
		for i, v := range kids[u] {
			branch, next := "├─ ", "│  "
			if i == len(kids[u])-1 {
				branch, next = "└─ ", "   "
			}
			vx := g.Vertices[v]
			sym := vx.Label[len(vx.Label)-1:]
			line := fmt.Sprintf("%s #%d", sym, v)
			if vx.Terminal() {
				line = terminalStyle.Render(line + " {" + strings.Join(vx.Outputs, ",") + "}")
			} else {
				line = innerStyle.Render(line)
			}
			sb.WriteString(indent + branch + line)
			if f, ok := fails[v]; ok {
				sb.WriteString(failStyle.Render(fmt.Sprintf(" ⇢ #%d", f)))
			}
			sb.WriteByte('\n')
			walk(v, indent+next)
		}
	}
	walk(automaton.Root, "")
	return sb.String()
}
