package search

import "fmt"

// Encoding is a bijection between a set of comparable values (characters,
// keys, metric names — whatever the caller's alphabet is) and the dense
// integer range [0, N). It lets the rest of the package work entirely in
// small-integer index space, which is what NDArray, SparseTensor, and
// PartialLayout all need for O(1) array indexing.
type Encoding[T comparable] struct {
	forward map[T]int
	inverse []T
}

// NewEncoding builds an Encoding over values, assigning indices in the
// order given. Returns ErrInvalidInput if values contains a duplicate.
func NewEncoding[T comparable](values []T) (*Encoding[T], error) {
	forward := make(map[T]int, len(values))
	inverse := make([]T, len(values))
	for i, v := range values {
		if _, dup := forward[v]; dup {
			return nil, fmt.Errorf("%w: duplicate value %v", ErrInvalidInput, v)
		}
		forward[v] = i
		inverse[i] = v
	}
	return &Encoding[T]{forward: forward, inverse: inverse}, nil
}

// Len returns the number of distinct values in the encoding.
func (e *Encoding[T]) Len() int { return len(e.inverse) }

// Index returns the dense index for v. ok is false if v is unknown.
func (e *Encoding[T]) Index(v T) (idx int, ok bool) {
	idx, ok = e.forward[v]
	return
}

// MustIndex is like Index but returns ErrUnknownName instead of a bool.
func (e *Encoding[T]) MustIndex(v T) (int, error) {
	idx, ok := e.forward[v]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrUnknownName, v)
	}
	return idx, nil
}

// Value returns the value at dense index i.
func (e *Encoding[T]) Value(i int) T { return e.inverse[i] }
