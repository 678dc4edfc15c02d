// SPDX-License-Identifier: MIT

// Package automaton builds an Aho–Corasick automaton over the four-symbol
// alphabet and uses it to report every occurrence of every pattern in a
// single left-to-right pass over the input.
//
// What
//
//   - New(patterns, opts...) sanitizes the raw patterns, inserts them into a
//     trie, computes failure links breadth-first and merges output sets.
//   - The result is an immutable *Automaton stored as parallel arrays indexed
//     by NodeID (an arena): goto table, failure links, depths, output sets.
//   - Search(text) returns Matches: pattern → start offsets in scan order.
//   - Walk(text, fn) streams Match values, longest pattern first at each
//     position; returning false from fn stops the scan.
//   - SearchAll(ctx, texts, opts...) runs independent searches concurrently.
//
// Construction
//
//  1. Trie. Tables are sized to Σlen(patterns)+1 nodes up front; node ids
//     are handed out sequentially and never reused. Duplicate patterns
//     collapse onto one path.
//  2. Failure links. Root children link to Root and are enqueued; every
//     absent root transition is completed to Root, which makes the root row
//     total. Nodes are then dequeued in FIFO (non-decreasing depth) order;
//     for each child v of u on symbol s, fail[v] is the s-successor of the
//     first node on u's failure chain that has one, and output[v] absorbs
//     output[fail[v]] in place.
//
// Only the root row is completed. Missing transitions of other nodes are
// resolved at query time by following failure links; each such step lowers
// the current depth, so a scan of n symbols costs O(n + z) for z reported
// matches.
//
// Input handling
//
//	Input bytes are ASCII upper-cased on the fly. A byte outside the alphabet
//	(for example N in a sequencing read) resets the cursor to Root: no match
//	spans it and no error is reported. Offsets are byte offsets into the
//	caller's string.
//
// Empty pattern sets
//
//	If no pattern survives sanitization New returns ErrEmptyPatternSet.
//	WithAllowEmpty() instead yields a root-only automaton that never matches.
//
// Concurrency
//
//	An *Automaton has no mutating methods once New returns, so any number of
//	goroutines may search it without synchronisation. Each scan keeps its
//	cursor on its own stack.
//
// Hooks
//
//	WithOnEnqueue, WithOnDequeue and WithOnLink observe the breadth-first
//	construction (node id, depth, chosen failure link) without affecting it.
package automaton
