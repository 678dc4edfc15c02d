// SPDX-License-Identifier: MIT
// Package: acgt/generator
//
// options.go — functional options and resolved configuration.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • newConfig applies options in order; later options override earlier ones.

package generator

import (
	"math/rand"

	"github.com/katalvlaran/acgt/alphabet"
)

// Defaults of the random demo.
const (
	DefaultPatternCount   = 10
	DefaultPatternLength  = 8
	DefaultSequenceLength = 10000
)

// noiseSymbol replaces a drawn symbol when WithNoise fires.
const noiseSymbol = 'N'

// Option customizes a generator call by mutating config.
type Option func(*config)

// config aggregates all knobs. It is passed by value to generators.
type config struct {
	// rng drives every draw; nil means "not configured".
	rng *rand.Rand
	// symbols is the pool draws are taken from.
	symbols string
	// noise is the per-symbol probability of emitting noiseSymbol.
	noise float64
}

// newConfig resolves defaults and applies opts in order.
func newConfig(opts ...Option) config {
	cfg := config{
		rng:     nil,
		symbols: alphabet.Symbols,
		noise:   0,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("generator: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSymbols restricts draws to the given alphabet symbols.
// Panics if symbols is empty or contains a byte outside the alphabet.
func WithSymbols(symbols string) Option {
	if symbols == "" {
		panic("generator: WithSymbols(\"\")")
	}
	for i := 0; i < len(symbols); i++ {
		if !alphabet.Valid(symbols[i]) {
			panic("generator: WithSymbols: " + symbols + " is not a subset of " + alphabet.Symbols)
		}
	}
	return func(c *config) {
		c.symbols = symbols
	}
}

// WithNoise makes Sequence emit 'N' instead of a drawn symbol with
// probability p. Panics unless 0 ≤ p ≤ 1.
func WithNoise(p float64) Option {
	if p < 0 || p > 1 {
		panic("generator: WithNoise(p) requires 0 <= p <= 1")
	}
	return func(c *config) {
		c.noise = p
	}
}
