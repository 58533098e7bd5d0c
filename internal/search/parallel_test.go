package search

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestParallelGenerateAgreesWithGenerate mirrors
// TestGenerateFindsMinimalDistanceLayout's fixture and checks that
// ParallelGenerate finds the same score (and a valid layout) as the
// single-threaded Generate, per SPEC_FULL.md's promise that
// ParallelGenerate is tested only for agreement with Generate on small
// fixtures.
func TestParallelGenerateAgreesWithGenerate(t *testing.T) {
	alphabet, err := NewEncoding([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	resolver, err := BuildResolver(3, func(int) (int, bool) { return 0, false })
	require.NoError(t, err)

	want, ok := Generate(3, resolver, buildBigramAnalyzer(t, alphabet), emptyTrigramAnalyzer(t), math.MaxUint64)
	require.True(t, ok)

	got, ok, err := ParallelGenerate(context.Background(), 3, resolver,
		buildBigramAnalyzer(t, alphabet), emptyTrigramAnalyzer(t), 0, math.MaxUint64)
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, want.Score, got.Score)
	require.Len(t, got.KeyOf, 3)
}

// TestParallelGenerateRespectsInitialCutoff mirrors
// TestGenerateRespectsInitialCutoff: a cutoff below every layout's score
// must leave ParallelGenerate with nothing to report, same as Generate.
func TestParallelGenerateRespectsInitialCutoff(t *testing.T) {
	alphabet, err := NewEncoding([]rune{'a', 'b', 'c'})
	require.NoError(t, err)

	resolver, err := BuildResolver(3, func(int) (int, bool) { return 0, false })
	require.NoError(t, err)

	_, ok, err := ParallelGenerate(context.Background(), 3, resolver,
		buildBigramAnalyzer(t, alphabet), emptyTrigramAnalyzer(t), 2, 5)
	require.NoError(t, err)
	require.False(t, ok, "every layout scores 6 or more, which should not satisfy a cutoff of 5")
}
