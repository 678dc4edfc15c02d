// Package acgt finds every occurrence of many nucleotide motifs in one pass
// over a sequence, using an Aho–Corasick automaton over the fixed alphabet
// {A, C, G, T}.
//
// 🚀 What is acgt?
//
//	A small, dependency-light library and CLI that brings together:
//		• Alphabet: the A/C/G/T ↔ 0..3 mapping and ASCII normalisation
//		• Sanitizing: upper-case patterns, drop anything outside the alphabet
//		• Automaton: dense goto table, BFS failure links, merged output sets
//		• Search: one cursor per text, case-insensitive, linear in the text
//		• Generators: seeded random motifs and bodies for demos and tests
//		• Views: graph export, 2-D layout and Graphviz DOT of the trie
//
// ✨ Why choose acgt?
//
//   - Immutable automaton – build once, search from any number of goroutines
//   - Explicit errors – sentinel values wrapped with context, never panics on input
//   - Hooks – observe the BFS that links the automaton (OnEnqueue, OnLink…)
//
// Layout:
//
//	alphabet/   — symbol ↔ index mapping
//	sanitize/   — pattern normalisation and rejection reports
//	automaton/  — trie, failure links, Walk/Search/SearchAll
//	generator/  — seeded random patterns and sequences
//	graphview/  — Export, Layout, WriteDOT
//	cmd/acgt/   — scan, render and random subcommands
//
// Quick example, patterns {CAT, AT}:
//
//	    ε ─C─▶ 1 ─A─▶ 2 ─T─▶ 3 {CAT, AT}
//	    └─A─▶ 4 ─T─▶ 5 {AT}
//
//	fail(2)=4, fail(3)=5: reaching CAT also reports its suffix AT.
//
//	go get github.com/katalvlaran/acgt/automaton
package acgt
