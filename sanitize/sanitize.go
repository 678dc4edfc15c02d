// SPDX-License-Identifier: MIT

// Package sanitize normalises raw pattern strings before they reach the
// automaton: every byte is ASCII upper-cased and a pattern is kept only if
// all of its bytes then belong to the alphabet. Offending patterns are
// dropped whole, never truncated.
//
// Patterns keeps input order and duplicates; Inspect additionally explains
// every rejection. Both are pure and deterministic.
package sanitize

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/acgt/alphabet"
)

// ErrEmptyPattern is recorded for a zero-length pattern, which would
// otherwise match at every position of every input.
var ErrEmptyPattern = errors.New("sanitize: empty pattern")

// Rejection describes one raw pattern that was excluded.
type Rejection struct {
	// Index is the position of the pattern in the raw input.
	Index int
	// Raw is the pattern exactly as supplied.
	Raw string
	// Err wraps alphabet.ErrInvalidSymbol or ErrEmptyPattern.
	Err error
}

// Report is the outcome of Inspect.
type Report struct {
	// Accepted holds the sanitized patterns in input order, duplicates kept.
	Accepted []string
	// Rejected lists every dropped pattern in input order.
	Rejected []Rejection
}

// Patterns returns the sanitized subset of raw.
func Patterns(raw []string) []string {
	return Inspect(raw).Accepted
}

// Inspect sanitizes raw and records why each rejected pattern was dropped.
func Inspect(raw []string) Report {
	rep := Report{Accepted: make([]string, 0, len(raw))}
	for i, p := range raw {
		clean, err := Pattern(p)
		if err != nil {
			rep.Rejected = append(rep.Rejected, Rejection{Index: i, Raw: p, Err: err})
			continue
		}
		rep.Accepted = append(rep.Accepted, clean)
	}
	return rep
}

// Pattern sanitizes a single pattern. The returned error wraps
// alphabet.ErrInvalidSymbol with the byte offset of the first foreign
// symbol, or is ErrEmptyPattern.
func Pattern(p string) (string, error) {
	if p == "" {
		return "", ErrEmptyPattern
	}
	buf := make([]byte, len(p))
	for i := 0; i < len(p); i++ {
		b := alphabet.Upper(p[i])
		if _, err := alphabet.Index(b); err != nil {
			return "", fmt.Errorf("sanitize: offset %d: %w", i, err)
		}
		buf[i] = b
	}
	return string(buf), nil
}
