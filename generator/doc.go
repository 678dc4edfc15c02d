// SPDX-License-Identifier: MIT

// Package generator produces random pattern sets and input sequences over
// the acgt alphabet for tests, benchmarks, examples and the CLI driver.
//
// The package sits outside the matching core: automaton never imports it
// and has no dependency on randomness.
//
// Components:
//
//   - Patterns(count, length, opts...) — count random words of fixed length.
//   - Sequence(length, opts...)        — one random body of the given length.
//   - Options:
//     – WithSeed(seed)      reproducible *rand.Rand.
//     – WithRand(r)         caller-owned RNG (shared stream across calls).
//     – WithSymbols(s)      draw from a subset of the alphabet, e.g. "AC".
//     – WithNoise(p)        replace each symbol by 'N' with probability p
//     (Sequence only), producing bytes outside the alphabet.
//
// Contract:
//
//   - An RNG is mandatory (ErrNeedRandSource); determinism is explicit.
//   - Sizes must be ≥ 1 (ErrBadSize).
//   - Option constructors panic on meaningless values (nil RNG, symbols
//     outside the alphabet, probability outside [0,1]); the generators
//     themselves never panic.
//
// Defaults match the random demo: 10 patterns of 8 symbols and a body
// of 10 000 symbols (DefaultPatternCount, DefaultPatternLength,
// DefaultSequenceLength).
package generator
