// SPDX-License-Identifier: MIT

package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for symbol mapping.
var (
	// ErrInvalidSymbol is returned when a byte is not one of A, C, G, T.
	ErrInvalidSymbol = errors.New("alphabet: invalid symbol")

	// ErrIndexOutOfRange is returned when an index lies outside [0, Size).
	ErrIndexOutOfRange = errors.New("alphabet: index out of range")
)

// Symbols lists the alphabet in index order.
const Symbols = "ACGT"

// Size is the number of symbols in the alphabet.
const Size = len(Symbols)

// invalid marks bytes that are not part of the alphabet in the lookup table.
const invalid = -1

// indexOf is a 256-entry lookup table, built once at package init.
var indexOf = func() (t [256]int8) {
	for i := range t {
		t[i] = invalid
	}
	for i := 0; i < Size; i++ {
		t[Symbols[i]] = int8(i)
	}
	return t
}()

// Index returns the dense index of symbol b.
// Returns ErrInvalidSymbol (wrapped with the offending byte) if b is not
// an upper-case alphabet symbol.
func Index(b byte) (int, error) {
	if i, ok := Lookup(b); ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, b)
}

// Lookup is the error-free form of Index for hot loops.
func Lookup(b byte) (int, bool) {
	i := indexOf[b]
	return int(i), i != invalid
}

// Symbol returns the alphabet symbol stored at index i.
func Symbol(i int) (byte, error) {
	if i < 0 || i >= Size {
		return 0, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, Size)
	}
	return Symbols[i], nil
}

// Valid reports whether b is an upper-case alphabet symbol.
func Valid(b byte) bool {
	return indexOf[b] != invalid
}

// Upper folds ASCII lower-case letters to upper case and returns every
// other byte unchanged.
func Upper(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
