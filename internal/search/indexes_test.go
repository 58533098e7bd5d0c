package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIndexesEnumeratesAllTuples(t *testing.T) {
	it := NewIndexes(3, 2)
	var got [][]int
	for {
		tuple, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, tuple)
	}

	want := [][]int{
		{0, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 1, 1},
		{1, 0, 0}, {1, 0, 1}, {1, 1, 0}, {1, 1, 1},
	}
	assert.Equal(t, want, got)
}

func TestIndexesEmptyWhenMaxZero(t *testing.T) {
	it := NewIndexes(2, 0)
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestIndexesSingleEmptyTupleWhenDimZero(t *testing.T) {
	it := NewIndexes(0, 5)
	tuple, ok := it.Next()
	assert.True(t, ok)
	assert.Empty(t, tuple)

	_, ok = it.Next()
	assert.False(t, ok)
}

func TestAllIndexesMatchesNext(t *testing.T) {
	var got [][]int
	for tuple := range AllIndexes(2, 3) {
		got = append(got, tuple)
	}
	assert.Len(t, got, 9)
	assert.Equal(t, []int{0, 0}, got[0])
	assert.Equal(t, []int{2, 2}, got[8])
}
