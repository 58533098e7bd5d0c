package search

import (
	"fmt"
	"math"
)

// AppliedMetric binds a named n-gram set to a named metric table, with
// an optional hard constraint and a weight used when combining several
// applied metrics into one objective value.
type AppliedMetric struct {
	NGrams     string
	Metric     string
	Constraint *uint64
	Weight     uint64
}

// Analyzer evaluates a fixed set of AppliedMetrics against a
// PartialLayout as characters are placed one at a time, in placement
// order. It holds exactly one fixed n-gram arity (dim): a generator
// typically holds one Analyzer for bigrams (dim=2) and one for trigrams
// (dim=3), scoring every placement against both.
type Analyzer struct {
	dim       int
	ngramSets map[string]*SparseTensor
	metrics   map[string]*NDArray
	applied   []AppliedMetric
}

// NewAnalyzer validates that every applied metric's NGrams/Metric name
// resolves to a registered tensor/table of the given dim, returning
// ErrUnknownName for an unregistered name and ErrInvalidInput for a
// tensor or table of another dim. It also bounds each applied metric's
// worst-case total contribution (occurrences * max table value * weight)
// to fit in a uint64, returning ErrOverflow if it would not: Score never
// checks for overflow on the hot path, so this precondition has to be
// enforced once, here, at construction.
func NewAnalyzer(dim int, ngramSets map[string]*SparseTensor, metrics map[string]*NDArray, applied []AppliedMetric) (*Analyzer, error) {
	for _, am := range applied {
		tensor, ok := ngramSets[am.NGrams]
		if !ok {
			return nil, fmt.Errorf("%w: ngram set %q", ErrUnknownName, am.NGrams)
		}
		if tensor.Dim() != dim {
			return nil, fmt.Errorf("%w: ngram set %q has dim %d, analyzer wants %d", ErrInvalidInput, am.NGrams, tensor.Dim(), dim)
		}
		table, ok := metrics[am.Metric]
		if !ok {
			return nil, fmt.Errorf("%w: metric %q", ErrUnknownName, am.Metric)
		}
		if table.Dim() != dim {
			return nil, fmt.Errorf("%w: metric %q has dim %d, analyzer wants %d", ErrInvalidInput, am.Metric, table.Dim(), dim)
		}

		occurrences, err := tensor.TotalWeight()
		if err != nil {
			return nil, fmt.Errorf("applied metric %q/%q: %w", am.NGrams, am.Metric, err)
		}
		if _, err := checkedMulMul(occurrences, table.Max(), am.Weight); err != nil {
			return nil, fmt.Errorf("applied metric %q/%q: %w", am.NGrams, am.Metric, err)
		}
	}
	return &Analyzer{dim: dim, ngramSets: ngramSets, metrics: metrics, applied: applied}, nil
}

// checkedMulMul computes a*b*c, returning ErrOverflow instead of wrapping
// if either multiplication would exceed the uint64 range.
func checkedMulMul(a, b, c uint64) (uint64, error) {
	ab, err := checkedMul(a, b)
	if err != nil {
		return 0, err
	}
	return checkedMul(ab, c)
}

func checkedMul(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxUint64/b {
		return 0, fmt.Errorf("%w: %d * %d exceeds u64 range", ErrOverflow, a, b)
	}
	return a * b, nil
}

// InitScore returns a fresh zeroed per-applied-metric score accumulator,
// one entry per AppliedMetric, to be carried alongside a PartialLayout
// and updated via Score as characters are placed.
func (a *Analyzer) InitScore() []uint64 {
	return make([]uint64, len(a.applied))
}

// Score updates score in place with the contribution of every n-gram
// tuple that becomes scorable the moment character index placed
// receives a key (i.e. the tuples in each applied metric's bucket
// placed — see SparseTensor). It reports whether every applied metric
// with a constraint still has a cumulative score at or under it; once
// false, the caller should abandon this branch rather than keep
// scoring, since scores only grow as more characters are placed.
//
// Every metric table passed to NewAnalyzer must be indexed in the same
// space layout.Assigned returns values in: Resolver position-space, not
// raw key indices. A table built from physical key properties (e.g.
// finger identity) has to decode each table index through the same
// Resolver's Order before evaluating the metric, or every lookup here
// is silently off by whatever reordering the Resolver introduced.
func (a *Analyzer) Score(score []uint64, layout *PartialLayout, placed int) bool {
	mapped := make([]int, a.dim)
	for i, am := range a.applied {
		tensor := a.ngramSets[am.NGrams]
		table := a.metrics[am.Metric]
		for _, entry := range tensor.Bucket(placed) {
			for j, charIdx := range entry.Tuple {
				mapped[j] = layout.Assigned(charIdx)
			}
			score[i] += table.Get(mapped) * entry.Weight
		}
		if am.Constraint != nil && score[i] > *am.Constraint {
			return false
		}
	}
	return true
}

// WeightedSum combines a score accumulator into a single objective
// value, weighting each applied metric independently.
func (a *Analyzer) WeightedSum(score []uint64) uint64 {
	var total uint64
	for i, am := range a.applied {
		total += score[i] * am.Weight
	}
	return total
}
