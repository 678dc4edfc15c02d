package automaton_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	ac "github.com/petar-dambovaliev/aho-corasick"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acgt/alphabet"
	"github.com/katalvlaran/acgt/automaton"
	"github.com/katalvlaran/acgt/generator"
	"github.com/katalvlaran/acgt/sanitize"
)

// naiveSearch tries every pattern at every offset of the ASCII upper-cased
// text.
func naiveSearch(patterns []string, text string) automaton.Matches {
	buf := []byte(text)
	for i, b := range buf {
		buf[i] = alphabet.Upper(b)
	}
	text = string(buf)
	res := automaton.Matches{}
	seen := map[string]bool{}
	for _, p := range sanitize.Patterns(patterns) {
		if seen[p] {
			continue
		}
		seen[p] = true
		for i := 0; i+len(p) <= len(text); i++ {
			if text[i:i+len(p)] == p {
				res[p] = append(res[p], i)
			}
		}
	}
	return res
}

func TestSearch_RoundTripContainment(t *testing.T) {
	words, err := generator.Patterns(100, 9, generator.WithSeed(2))
	require.NoError(t, err)
	a := mustNew(t, words...)
	for _, p := range a.Patterns() {
		got := a.Search(p)
		require.Contains(t, got, p)
		assert.Equal(t, 0, got[p][0], "pattern %q", p)
	}
}

func TestSearch_SuffixPropagation(t *testing.T) {
	a := mustNew(t, "CAT", "AT")
	got := a.Search("XCAT")
	assert.Equal(t, automaton.Matches{"CAT": {1}, "AT": {2}}, got)
}

func TestSearch_OverlapCompleteness(t *testing.T) {
	a := mustNew(t, "AA")
	assert.Equal(t, automaton.Matches{"AA": {0, 1}}, a.Search("AAA"))
}

func TestSearch_NestedMatches(t *testing.T) {
	a := mustNew(t, "ACGTACGT", "GTAC", "TA")
	got := a.Search("ACGTACGT")
	want := automaton.Matches{"ACGTACGT": {0}, "GTAC": {2}, "TA": {3}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Search mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch_CaseAndAlphabetFiltering(t *testing.T) {
	a := mustNew(t, "acgtx", "acg")
	assert.Equal(t, []string{"ACG"}, a.Patterns())

	got := a.Search("acgtxACGTX")
	assert.NotContains(t, got, "ACGTX")
	assert.NotContains(t, got, "acgtx")
	assert.Equal(t, automaton.Matches{"ACG": {0, 5}}, got)
}

func TestSearch_LowercaseInput(t *testing.T) {
	a := mustNew(t, "GATTACA")
	assert.Equal(t, automaton.Matches{"GATTACA": {2}}, a.Search("ttgattacagg"))
}

func TestSearch_NoFalsePositives(t *testing.T) {
	a := mustNew(t, "GGGG", "TTT")
	got := a.Search("ACACACACGGGTTACA")
	assert.Empty(t, got["GGGG"])
	assert.Empty(t, got["TTT"])
	assert.Empty(t, got)
}

func TestSearch_ForeignByteResetsCursor(t *testing.T) {
	a := mustNew(t, "ACGT")
	assert.Empty(t, a.Search("ACNGT"))
	assert.Equal(t, automaton.Matches{"ACGT": {0, 5}}, a.Search("ACGTNACGT"))
	// multi-byte runes count as raw bytes in offsets
	assert.Equal(t, automaton.Matches{"ACGT": {2}}, a.Search("éACGT"))
}

func TestSearch_EmptyInput(t *testing.T) {
	a := mustNew(t, "A")
	assert.Empty(t, a.Search(""))
}

func TestSearch_Determinism(t *testing.T) {
	words, err := generator.Patterns(40, 5, generator.WithSeed(9), generator.WithSymbols("ACG"))
	require.NoError(t, err)
	body, err := generator.Sequence(5000, generator.WithSeed(10), generator.WithSymbols("ACG"))
	require.NoError(t, err)

	reversed := make([]string, len(words))
	for i, w := range words {
		reversed[len(words)-1-i] = w
	}
	first := mustNew(t, words...).Search(body)
	second := mustNew(t, reversed...).Search(body)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("insertion order changed results (-first +second):\n%s", diff)
	}
}

func TestSearch_AgainstNaive(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		words, err := generator.Patterns(30, 1+int(seed%6), generator.WithSeed(seed))
		require.NoError(t, err)
		extra, err := generator.Patterns(10, 3, generator.WithSeed(seed+100), generator.WithSymbols("AC"))
		require.NoError(t, err)
		words = append(words, extra...)

		body, err := generator.Sequence(2000, generator.WithSeed(seed+1000), generator.WithNoise(0.02))
		require.NoError(t, err)

		got := mustNew(t, words...).Search(body)
		want := naiveSearch(words, body)
		// noise bytes break matches in both implementations
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("seed %d: mismatch with naive scan (-want +got):\n%s", seed, diff)
		}
	}
}

// TestSearch_LeftmostLongestSubset cross-checks against an independent
// Aho–Corasick implementation: every leftmost-longest, non-overlapping
// match it finds must be among ours.
func TestSearch_LeftmostLongestSubset(t *testing.T) {
	words, err := generator.Patterns(60, 4, generator.WithSeed(21))
	require.NoError(t, err)
	body, err := generator.Sequence(20000, generator.WithSeed(22))
	require.NoError(t, err)

	a := mustNew(t, words...)
	patterns := a.Patterns()
	got := a.Search(body)

	builder := ac.NewAhoCorasickBuilder(ac.Opts{MatchKind: ac.LeftMostLongestMatch})
	oracle := builder.Build(patterns)
	found := oracle.FindAll(body)
	require.NotEmpty(t, found)
	for _, m := range found {
		p := patterns[m.Pattern()]
		assert.Contains(t, got[p], m.Start(), "pattern %q at %d", p, m.Start())
		assert.Equal(t, len(p), m.End()-m.Start())
	}
}

func TestWalk_OrderAndEarlyStop(t *testing.T) {
	a := mustNew(t, "CAT", "AT")
	var all []automaton.Match
	a.Walk("CATCAT", func(m automaton.Match) bool {
		all = append(all, m)
		return true
	})
	assert.Equal(t, []automaton.Match{
		{Pattern: "CAT", Start: 0, End: 3},
		{Pattern: "AT", Start: 1, End: 3},
		{Pattern: "CAT", Start: 3, End: 6},
		{Pattern: "AT", Start: 4, End: 6},
	}, all)

	var first []automaton.Match
	a.Walk("CATCAT", func(m automaton.Match) bool {
		first = append(first, m)
		return false
	})
	assert.Len(t, first, 1)
}

func TestContainsAndCount(t *testing.T) {
	a := mustNew(t, "AA")
	assert.True(t, a.Contains("CCAAC"))
	assert.False(t, a.Contains("CACAC"))
	assert.Equal(t, 3, a.Count("AAAA"))
	assert.Equal(t, 0, a.Count(""))
}

func TestMatches_Helpers(t *testing.T) {
	m := automaton.Matches{"TT": {1, 2}, "AC": {0}}
	assert.Equal(t, []string{"AC", "TT"}, m.Patterns())
	assert.Equal(t, 3, m.Total())
}

// TestSearch_LinearStress runs the worst case for failure-chain walks:
// nested runs of one symbol against a long homopolymer.
func TestSearch_LinearStress(t *testing.T) {
	if testing.Short() {
		t.Skip("stress test skipped in -short mode")
	}
	const (
		n    = 1 << 20
		maxK = 16
	)
	words := make([]string, 0, maxK)
	for k := 1; k <= maxK; k++ {
		words = append(words, strings.Repeat("A", k))
	}
	a := mustNew(t, words...)

	want := 0
	for k := 1; k <= maxK; k++ {
		want += n - k + 1
	}
	body := strings.Repeat("A", n/2) + strings.Repeat("AC", n/4)
	assert.Equal(t, a.Count(body), a.Search(body).Total())
	assert.Equal(t, want, a.Count(strings.Repeat("A", n)))
}

// TestSearch_LinearTime checks that quadrupling the input at most roughly
// quadruples the search time on the homopolymer worst case. Each size
// keeps its fastest of several runs to damp scheduler noise.
func TestSearch_LinearTime(t *testing.T) {
	if testing.Short() {
		t.Skip("timing test skipped in -short mode")
	}
	const (
		n      = 1 << 18
		runs   = 5
		factor = 12.0 // 4x input, generous slack for 4x expected time
	)
	words := make([]string, 0, 16)
	for k := 1; k <= 16; k++ {
		words = append(words, strings.Repeat("A", k))
	}
	a := mustNew(t, words...)

	fastest := func(text string) time.Duration {
		best := time.Duration(1<<63 - 1)
		for i := 0; i < runs; i++ {
			start := time.Now()
			a.Count(text)
			if d := time.Since(start); d < best {
				best = d
			}
		}
		return best
	}
	small := fastest(strings.Repeat("A", n))
	large := fastest(strings.Repeat("A", 4*n))
	if small <= 0 {
		t.Skip("timer resolution too coarse")
	}

	ratio := float64(large) / float64(small)
	assert.Less(t, ratio, factor, "small=%v large=%v", small, large)
}
