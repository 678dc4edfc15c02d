// SPDX-License-Identifier: MIT

package graphview

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/acgt/automaton"
)

// ErrNilAutomaton is returned by Export for a nil automaton.
var ErrNilAutomaton = errors.New("graphview: automaton is nil")

// EdgeKind distinguishes trie transitions from failure links.
type EdgeKind int

const (
	// KindGoto is a direct trie transition.
	KindGoto EdgeKind = iota
	// KindFail is a failure link.
	KindFail
)

// String returns "goto" or "fail".
func (k EdgeKind) String() string {
	switch k {
	case KindGoto:
		return "goto"
	case KindFail:
		return "fail"
	default:
		return fmt.Sprintf("EdgeKind(%d)", int(k))
	}
}

// Vertex is one trie node.
type Vertex struct {
	// ID is the automaton node id.
	ID automaton.NodeID

	// Label is the path spelled from the root; empty for the root.
	Label string

	// Depth equals len(Label).
	Depth int

	// Outputs lists the patterns recognised at this node, longest first.
	Outputs []string
}

// Root reports whether v is the trie root.
func (v Vertex) Root() bool { return v.ID == automaton.Root }

// Terminal reports whether reaching v reports at least one pattern.
func (v Vertex) Terminal() bool { return len(v.Outputs) > 0 }

// Edge is a directed connection From→To.
type Edge struct {
	From automaton.NodeID
	To   automaton.NodeID
	Kind EdgeKind

	// Symbol is the alphabet symbol of a KindGoto edge; 0 for KindFail.
	Symbol byte
}

// Position is a 2-D layout coordinate.
type Position struct {
	X int
	Y int
}

// Graph is the exported view.
type Graph struct {
	// Vertices is indexed by NodeID.
	Vertices []Vertex

	// Edges holds goto edges sorted by (From, Symbol), then fail edges
	// sorted by From.
	Edges []Edge
}

// Option configures Export.
type Option func(*Options)

// Options holds Export parameters.
type Options struct {
	// RootLinks keeps root self-completions and failure links to the root.
	RootLinks bool
}

// DefaultOptions drops root links.
func DefaultOptions() Options {
	return Options{RootLinks: false}
}

// WithRootLinks keeps edges that point back at the root.
func WithRootLinks() Option {
	return func(o *Options) { o.RootLinks = true }
}
