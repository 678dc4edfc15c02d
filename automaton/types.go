// SPDX-License-Identifier: MIT

package automaton

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
)

// Sentinel errors for construction and batch search.
var (
	// ErrEmptyPatternSet is returned by New when no pattern survives
	// sanitization and WithAllowEmpty was not given.
	ErrEmptyPatternSet = errors.New("automaton: no usable patterns")

	// ErrOptionViolation is returned when an invalid option is supplied.
	ErrOptionViolation = errors.New("automaton: invalid option supplied")
)

// NodeID identifies a trie node. Ids are dense, start at Root and are
// stable for the lifetime of the Automaton.
type NodeID int32

const (
	// Root is the id of the trie root.
	Root NodeID = 0

	// Absent marks a missing transition or failure link.
	Absent NodeID = -1
)

// Match is one occurrence of a pattern: text[Start:End] == Pattern.
type Match struct {
	Pattern string
	Start   int
	End     int
}

// Matches maps each found pattern to its start offsets in increasing order.
// Patterns that were not found have no entry.
type Matches map[string][]int

// Patterns returns the found patterns in lexical order.
func (m Matches) Patterns() []string {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Total returns the number of occurrences across all patterns.
func (m Matches) Total() int {
	n := 0
	for _, offs := range m {
		n += len(offs)
	}
	return n
}

// Option configures construction via functional arguments.
type Option func(*Options)

// Options holds construction parameters and observation hooks.
type Options struct {
	// AllowEmpty turns an empty sanitized pattern set into a root-only
	// automaton instead of ErrEmptyPatternSet.
	AllowEmpty bool

	// OnEnqueue is called when a node joins the breadth-first work-list.
	OnEnqueue func(node NodeID, depth int)

	// OnDequeue is called when a node leaves the work-list, before its
	// children are linked.
	OnDequeue func(node NodeID, depth int)

	// OnLink is called once per non-root node with its failure link.
	OnLink func(node, fail NodeID)
}

// DefaultOptions returns Options with no-op hooks and AllowEmpty unset.
func DefaultOptions() Options {
	return Options{
		AllowEmpty: false,
		OnEnqueue:  func(NodeID, int) {},
		OnDequeue:  func(NodeID, int) {},
		OnLink:     func(NodeID, NodeID) {},
	}
}

// WithAllowEmpty accepts pattern sets that sanitize to nothing.
func WithAllowEmpty() Option {
	return func(o *Options) { o.AllowEmpty = true }
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(node NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(node NodeID, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnLink registers a callback that receives every computed failure link.
func WithOnLink(fn func(node, fail NodeID)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLink = fn
		}
	}
}

// SearchOption configures SearchAll.
type SearchOption func(*SearchOptions)

// SearchOptions holds parameters for SearchAll.
type SearchOptions struct {
	// Workers bounds the number of concurrent searches.
	Workers int

	// internal error recorded during option parsing
	err error
}

// DefaultSearchOptions uses one worker per available CPU.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers sets the concurrency limit of SearchAll.
//
//	n > 0:  at most n searches run at once
//	n == 0: one per available CPU
//	n < 0:  invalid option → ErrOptionViolation
func WithWorkers(n int) SearchOption {
	return func(o *SearchOptions) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}
