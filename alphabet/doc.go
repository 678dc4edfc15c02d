// SPDX-License-Identifier: MIT

// Package alphabet fixes the four-symbol nucleotide vocabulary used by every
// other acgt package and maps it onto dense indices.
//
// What
//
//	Symbol  Index
//	  A       0
//	  C       1
//	  G       2
//	  T       3
//
// Functions:
//
//   - Index(b)  symbol → index, ErrInvalidSymbol for anything else.
//   - Symbol(i) index  → symbol, ErrIndexOutOfRange outside [0, Size).
//   - Lookup(b) the same mapping as Index, reported with a bool.
//   - Valid(b)  cheap membership test without an error value.
//   - Upper(b)  ASCII-only upper-casing used to normalise patterns and input.
//
// The mapping is case-sensitive: Index('a') fails. Callers normalise first
// with Upper, which leaves every non-ASCII byte untouched so that multi-byte
// UTF-8 sequences can never fold into an alphabet symbol.
//
// Complexity
//
//   - All functions are O(1), allocation-free on the success path and safe
//     for concurrent use (the tables are read-only).
package alphabet
