// SPDX-License-Identifier: MIT

package automaton

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/acgt/alphabet"
)

// Walk scans text once and calls fn for every match in scan order. At a
// given end position, longer patterns are reported before shorter ones.
// Walk stops early when fn returns false.
func (a *Automaton) Walk(text string, fn func(Match) bool) {
	cur := Root
	for i := 0; i < len(text); i++ {
		sym, ok := alphabet.Lookup(alphabet.Upper(text[i]))
		if !ok {
			// foreign byte: nothing may match across it
			cur = Root
			continue
		}
		cur = a.step(cur, sym)
		for _, id := range a.out[cur] {
			p := a.patterns[id]
			if !fn(Match{Pattern: p, Start: i - len(p) + 1, End: i + 1}) {
				return
			}
		}
	}
}

// Search returns every occurrence of every pattern in text.
// Overlapping and nested occurrences are all reported.
// Complexity: O(len(text) + z) for z reported occurrences.
func (a *Automaton) Search(text string) Matches {
	res := make(Matches)
	a.Walk(text, func(m Match) bool {
		res[m.Pattern] = append(res[m.Pattern], m.Start)
		return true
	})
	return res
}

// Contains reports whether any pattern occurs in text, stopping at the
// first match.
func (a *Automaton) Contains(text string) bool {
	found := false
	a.Walk(text, func(Match) bool {
		found = true
		return false
	})
	return found
}

// Count returns the total number of occurrences in text without
// materialising them.
func (a *Automaton) Count(text string) int {
	n := 0
	a.Walk(text, func(Match) bool {
		n++
		return true
	})
	return n
}

// SearchAll searches every text concurrently and returns the results in
// input order. The automaton is shared read-only; each search owns its
// cursor. Cancelling ctx stops texts that have not started yet and
// SearchAll returns ctx.Err().
// Returns ErrOptionViolation for bad options.
func (a *Automaton) SearchAll(ctx context.Context, texts []string, opts ...SearchOption) ([]Matches, error) {
	o := DefaultSearchOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Matches, len(texts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)
	for i := range texts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = a.Search(texts[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("automaton: SearchAll: %w", err)
	}
	return results, nil
}
