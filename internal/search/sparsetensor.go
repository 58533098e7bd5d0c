package search

import (
	"fmt"
	"math"
)

// SparseEntry is one non-zero weighted n-gram tuple: Tuple holds the
// dense character indices of the n-gram (in order), Weight its
// occurrence count.
type SparseEntry struct {
	Tuple  []int
	Weight uint64
}

// SparseTensor buckets the non-zero entries of a dim-dimensional n-gram
// weight tensor by the largest character index each tuple contains. Since
// PartialLayout assigns characters to keys in index order (character m is
// the (m+1)-th one placed), bucket m holds exactly the tuples that become fully
// assignable the moment character m is placed — no earlier placement can
// score them, and no later scan needs to revisit them. This is what lets
// Analyzer.Score touch only the newly-relevant tuples at each step
// instead of rescanning every n-gram on every placement.
type SparseTensor struct {
	size    int
	dim     int
	buckets [][]SparseEntry
}

// BuildSparseTensor groups entries into size buckets by each entry's
// maximum tuple component. Zero-weight entries are dropped.
func BuildSparseTensor(size, dim int, entries []SparseEntry) *SparseTensor {
	buckets := make([][]SparseEntry, size)
	for _, e := range entries {
		if e.Weight == 0 {
			continue
		}
		maxIdx := 0
		for _, v := range e.Tuple {
			if v > maxIdx {
				maxIdx = v
			}
		}
		buckets[maxIdx] = append(buckets[maxIdx], e)
	}
	return &SparseTensor{size: size, dim: dim, buckets: buckets}
}

// Bucket returns the entries newly scorable when character index m is
// placed.
func (s *SparseTensor) Bucket(m int) []SparseEntry {
	return s.buckets[m]
}

// Dim returns the tuple arity this tensor was built for.
func (s *SparseTensor) Dim() int { return s.dim }

// TotalWeight sums every entry's occurrence count across all buckets,
// returning ErrOverflow rather than wrapping if the sum would not fit in
// a uint64. Used by NewAnalyzer to bound a metric's worst-case
// contribution before any layout is known.
func (s *SparseTensor) TotalWeight() (uint64, error) {
	var total uint64
	for _, bucket := range s.buckets {
		for _, e := range bucket {
			if total > math.MaxUint64-e.Weight {
				return 0, fmt.Errorf("%w: sum of n-gram weights exceeds u64 range", ErrOverflow)
			}
			total += e.Weight
		}
	}
	return total, nil
}
