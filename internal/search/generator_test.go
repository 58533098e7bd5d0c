package search

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbscholtus/layoutgen/internal/ngram"
)

// buildBigramAnalyzer wires a tiny 3-character, 3-key bigram analyzer
// whose sole metric is the absolute distance between two key indices,
// weighted by bigram occurrence counts drawn from a real ngram.Stats.
func buildBigramAnalyzer(t *testing.T, alphabet *Encoding[rune]) *Analyzer {
	t.Helper()

	stats := ngram.New(2)
	require.NoError(t, stats.Add([]rune("abcabc")))
	counts, err := stats.NGrams(2)
	require.NoError(t, err)

	entries := make([]SparseEntry, 0, len(counts))
	for gram, count := range counts {
		runes := []rune(gram)
		tuple := make([]int, len(runes))
		for i, r := range runes {
			idx, err := alphabet.MustIndex(r)
			require.NoError(t, err)
			tuple[i] = idx
		}
		entries = append(entries, SparseEntry{Tuple: tuple, Weight: count})
	}
	tensor := BuildSparseTensor(3, 2, entries)

	dist, err := BuildNDArray(3, 2, func(tuple []int) uint64 {
		d := tuple[0] - tuple[1]
		if d < 0 {
			d = -d
		}
		return uint64(d)
	})
	require.NoError(t, err)

	analyzer, err := NewAnalyzer(2, map[string]*SparseTensor{"bigrams": tensor}, map[string]*NDArray{"dist": dist}, []AppliedMetric{
		{NGrams: "bigrams", Metric: "dist", Weight: 1},
	})
	require.NoError(t, err)
	return analyzer
}

func emptyTrigramAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	analyzer, err := NewAnalyzer(3, map[string]*SparseTensor{}, map[string]*NDArray{}, nil)
	require.NoError(t, err)
	return analyzer
}

func TestGenerateFindsMinimalDistanceLayout(t *testing.T) {
	alphabet, err := NewEncoding([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	bi := buildBigramAnalyzer(t, alphabet)
	tri := emptyTrigramAnalyzer(t)

	resolver, err := BuildResolver(3, func(int) (int, bool) { return 0, false })
	require.NoError(t, err)

	result, ok := Generate(3, resolver, bi, tri, math.MaxUint64)
	require.True(t, ok)
	require.Equal(t, uint64(6), result.Score)
	require.Len(t, result.KeyOf, 3)
}

func TestGenerateRespectsInitialCutoff(t *testing.T) {
	alphabet, err := NewEncoding([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	bi := buildBigramAnalyzer(t, alphabet)
	tri := emptyTrigramAnalyzer(t)

	resolver, err := BuildResolver(3, func(int) (int, bool) { return 0, false })
	require.NoError(t, err)

	_, ok := Generate(3, resolver, bi, tri, 5)
	require.False(t, ok, "every layout scores 6 or more, which should not satisfy a cutoff of 5")
}

func TestGenerateRespectsConstraint(t *testing.T) {
	alphabet, err := NewEncoding([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	stats := ngram.New(2)
	require.NoError(t, stats.Add([]rune("abcabc")))
	counts, err := stats.NGrams(2)
	require.NoError(t, err)

	entries := make([]SparseEntry, 0, len(counts))
	for gram, count := range counts {
		runes := []rune(gram)
		tuple := make([]int, len(runes))
		for i, r := range runes {
			idx, err := alphabet.MustIndex(r)
			require.NoError(t, err)
			tuple[i] = idx
		}
		entries = append(entries, SparseEntry{Tuple: tuple, Weight: count})
	}
	tensor := BuildSparseTensor(3, 2, entries)
	dist, err := BuildNDArray(3, 2, func(tuple []int) uint64 {
		d := tuple[0] - tuple[1]
		if d < 0 {
			d = -d
		}
		return uint64(d)
	})
	require.NoError(t, err)

	zero := uint64(0)
	bi, err := NewAnalyzer(2, map[string]*SparseTensor{"bigrams": tensor}, map[string]*NDArray{"dist": dist}, []AppliedMetric{
		{NGrams: "bigrams", Metric: "dist", Weight: 1, Constraint: &zero},
	})
	require.NoError(t, err)
	tri := emptyTrigramAnalyzer(t)

	resolver, err := BuildResolver(3, func(int) (int, bool) { return 0, false })
	require.NoError(t, err)

	_, ok := Generate(3, resolver, bi, tri, math.MaxUint64)
	require.False(t, ok, "no layout can keep every bigram at zero key distance")
}

// TestGenerateScoreMatchesRealKeyIdentity exercises a non-identity
// Resolver.Order (forced by a real parent relation) alongside a metric
// table built from "real" key properties, the way cmd/layoutgen builds
// its same-finger-bigram table: by decoding each table index through
// resolver.Order before consulting the real key's property. It checks
// that Result.Score is always reproducible by recomputing the same
// property directly from Result.KeyOf (the real key each character
// ultimately landed on) — the contract a table built without that
// Order-decode would silently violate, since Analyzer.Score indexes the
// table with raw PartialLayout positions, not real key indices.
func TestGenerateScoreMatchesRealKeyIdentity(t *testing.T) {
	entries := []SparseEntry{
		{Tuple: []int{0, 1}, Weight: 2},
		{Tuple: []int{1, 2}, Weight: 3},
		{Tuple: []int{2, 3}, Weight: 1},
	}
	tensor := BuildSparseTensor(4, 2, entries)

	// realValue is a property of the real key index, distinct for every
	// key, standing in for something like keygrid.FingerFor.
	realValue := []uint64{10, 20, 30, 40}

	// Key 0 must follow key 1, forcing Resolver.Order away from the
	// identity permutation.
	resolver, err := BuildResolver(4, func(key int) (int, bool) {
		if key == 0 {
			return 1, true
		}
		return 0, false
	})
	require.NoError(t, err)
	require.NotEqual(t, []int{0, 1, 2, 3}, resolver.Order, "test requires a non-identity order")

	table, err := BuildNDArray(4, 2, func(tuple []int) uint64 {
		return realValue[resolver.Order[tuple[0]]] + realValue[resolver.Order[tuple[1]]]
	})
	require.NoError(t, err)
	bi, err := NewAnalyzer(2, map[string]*SparseTensor{"bigrams": tensor}, map[string]*NDArray{"v": table}, []AppliedMetric{
		{NGrams: "bigrams", Metric: "v", Weight: 1},
	})
	require.NoError(t, err)
	tri := emptyTrigramAnalyzer(t)

	result, ok := Generate(4, resolver, bi, tri, math.MaxUint64)
	require.True(t, ok)

	var expected uint64
	for _, e := range entries {
		realA, realB := result.KeyOf[e.Tuple[0]], result.KeyOf[e.Tuple[1]]
		expected += (realValue[realA] + realValue[realB]) * e.Weight
	}
	require.Equal(t, expected, result.Score, "Score must match realValue computed from the real keys in KeyOf")
}

func TestAnalyzerRejectsUnknownName(t *testing.T) {
	_, err := NewAnalyzer(2, map[string]*SparseTensor{}, map[string]*NDArray{}, []AppliedMetric{
		{NGrams: "missing", Metric: "also-missing", Weight: 1},
	})
	require.Error(t, err)
}
