// Package weights decodes the precomputed-weights wire format: a JSON
// document carrying an optional 30-character alphabet and a bigram to
// occurrence-count map, for callers that already have n-gram weights
// computed elsewhere and want to feed the generator directly rather than
// build them from a raw corpus via internal/ngram.
//
// The original parser used serde_json with a custom Visitor per field;
// encoding/json's struct-tag decoding plus a validating wrapper gives the
// same two-stage "decode then validate" shape.
package weights

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// AlphabetSize is the fixed character-set size the generator's built-in
// keygrid symmetry functions assume.
const AlphabetSize = 30

var (
	// ErrInvalidAlphabet is returned when the alphabet field is present
	// but not exactly AlphabetSize runes.
	ErrInvalidAlphabet = errors.New("weights: alphabet must have exactly 30 characters")
	// ErrInvalidBigram is returned when a weights key is not exactly 2
	// runes.
	ErrInvalidBigram = errors.New("weights: bigram key must be exactly 2 characters")
)

// Options is the parsed, validated form of the wire format.
type Options struct {
	// Alphabet is nil if the document omitted it.
	Alphabet []rune
	Weights  map[[2]rune]uint64
}

type wireOptions struct {
	Alphabet *string           `json:"alphabet"`
	Weights  map[string]uint64 `json:"weights"`
}

// Parse decodes and validates a precomputed-weights document.
func Parse(data []byte) (*Options, error) {
	var wire wireOptions
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, err
	}
	return fromWire(wire)
}

// ParseReader is a streaming convenience over Parse.
func ParseReader(r io.Reader) (*Options, error) {
	var wire wireOptions
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}
	return fromWire(wire)
}

func fromWire(wire wireOptions) (*Options, error) {
	var alphabet []rune
	if wire.Alphabet != nil {
		runes := []rune(*wire.Alphabet)
		if len(runes) != AlphabetSize {
			return nil, fmt.Errorf("%w: got %d characters", ErrInvalidAlphabet, len(runes))
		}
		alphabet = runes
	}

	weights := make(map[[2]rune]uint64, len(wire.Weights))
	for key, count := range wire.Weights {
		runes := []rune(key)
		if len(runes) != 2 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidBigram, key)
		}
		weights[[2]rune{runes[0], runes[1]}] = count
	}

	return &Options{Alphabet: alphabet, Weights: weights}, nil
}
