// SPDX-License-Identifier: MIT

package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadSize indicates a count or length below 1.
var ErrBadSize = errors.New("generator: invalid size/length")

// ErrNeedRandSource indicates that no RNG was configured (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("generator: rng is required")

const (
	methodPatterns = "Patterns"
	methodSequence = "Sequence"
)

// Patterns returns count random words of exactly length symbols each.
// Duplicates are possible, as with any independent draw.
func Patterns(count, length int, opts ...Option) ([]string, error) {
	if count < 1 {
		return nil, fmt.Errorf("%s: count=%d < 1: %w", methodPatterns, count, ErrBadSize)
	}
	if length < 1 {
		return nil, fmt.Errorf("%s: length=%d < 1: %w", methodPatterns, length, ErrBadSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodPatterns, ErrNeedRandSource)
	}

	words := make([]string, count)
	for i := range words {
		words[i] = cfg.draw(length, 0)
	}
	return words, nil
}

// Sequence returns one random body of length symbols, honouring WithNoise.
func Sequence(length int, opts ...Option) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("%s: length=%d < 1: %w", methodSequence, length, ErrBadSize)
	}
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return "", fmt.Errorf("%s: %w", methodSequence, ErrNeedRandSource)
	}
	return cfg.draw(length, cfg.noise), nil
}

// draw builds one string from independent uniform draws over cfg.symbols.
// The noise trial is skipped entirely when noise is 0 so that noiseless
// output does not depend on how many extra draws noise would consume.
func (cfg config) draw(length int, noise float64) string {
	var sb strings.Builder
	sb.Grow(length)
	for i := 0; i < length; i++ {
		if noise > 0 && cfg.rng.Float64() < noise {
			sb.WriteByte(noiseSymbol)
			continue
		}
		sb.WriteByte(cfg.symbols[cfg.rng.Intn(len(cfg.symbols))])
	}
	return sb.String()
}
