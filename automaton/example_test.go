package automaton_test

import (
	"fmt"

	"github.com/katalvlaran/acgt/automaton"
)

// ExampleAutomaton_Search finds overlapping motifs in a short read. The
// pattern "tata" is upper-cased; "TATAN" is rejected because N is not a
// nucleotide symbol.
func ExampleAutomaton_Search() {
	a, err := automaton.New([]string{"tata", "ATA", "TATAN", "GC"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res := a.Search("GCTATATAGC")
	for _, p := range res.Patterns() {
		fmt.Println(p, res[p])
	}
	// Output:
	// ATA [3 5]
	// GC [0 8]
	// TATA [2 4]
}

// ExampleAutomaton_Walk streams matches in scan order; at one end position
// the longer pattern comes first.
func ExampleAutomaton_Walk() {
	a, _ := automaton.New([]string{"CAT", "AT"})
	a.Walk("XCAT", func(m automaton.Match) bool {
		fmt.Printf("%s [%d,%d)\n", m.Pattern, m.Start, m.End)
		return true
	})
	// Output:
	// CAT [1,4)
	// AT [2,4)
}

// ExampleNew_empty shows the two policies for a pattern set that sanitizes
// to nothing.
func ExampleNew_empty() {
	_, err := automaton.New([]string{"xyz"})
	fmt.Println(err)

	a, _ := automaton.New([]string{"xyz"}, automaton.WithAllowEmpty())
	fmt.Println(a.NodeCount(), a.Contains("ACGT"))
	// Output:
	// automaton: no usable patterns: 1 candidates rejected
	// 1 false
}
