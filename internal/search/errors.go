package search

import "errors"

// Sentinel errors distinguishable via errors.Is, following the same
// var-per-kind convention as internal/ngram and katalvlaran-lvlath/core.
var (
	// ErrInvalidInput marks malformed caller input: duplicate values in an
	// Encoding, or an n-gram set or metric table whose arity differs from
	// the Analyzer's.
	ErrInvalidInput = errors.New("search: invalid input")
	// ErrUnknownName is returned when an Analyzer references an n-gram
	// set or metric name that was never registered.
	ErrUnknownName = errors.New("search: unknown name")
	// ErrCycleDetected is returned when a symmetry relation does not
	// resolve to a forest (a key transitively precedes itself).
	ErrCycleDetected = errors.New("search: cycle in symmetry relation")
	// ErrOverflow marks a table size that would overflow the index
	// arithmetic used to build a dense metric table, or n-gram weights
	// whose sum, or worst-case weighted score, would not fit in a uint64.
	ErrOverflow = errors.New("search: dimension overflow")
)
