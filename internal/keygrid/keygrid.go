// Package keygrid describes the fixed physical layout the generator
// targets: a 3-row by 10-column keyboard grid, finger/hand assignment
// per column, and the built-in symmetry relations that prune equivalent
// layouts from the search. Everything in internal/search stays
// parametric in N and treats keys as opaque comparable values; this
// package is where that parametricity gets pinned down to one concrete
// 30-key board, the way internal/keycraft/keys.go pins its generic key
// handling down to one physical board.
package keygrid

import "fmt"

// Key identifies one physical key by its row (0-2) and column (0-9).
type Key struct {
	Row, Col int
}

// Keys returns the 30 keys of the grid in row-major order.
func Keys() []Key {
	keys := make([]Key, 0, 30)
	for row := 0; row < 3; row++ {
		for col := 0; col < 10; col++ {
			keys = append(keys, Key{Row: row, Col: col})
		}
	}
	return keys
}

// Hand is which hand a key is reached with.
type Hand int

const (
	Left Hand = iota
	Right
)

// FingerKind is which finger a key is reached with, ordered pinky to
// thumb so FingerKind values can be compared.
type FingerKind int

const (
	Pinky FingerKind = iota
	Ring
	Middle
	Index
	Thumb
)

// Finger is the hand/finger combination that reaches a key.
type Finger struct {
	Kind FingerKind
	Hand Hand
}

// FingerFor returns the finger that reaches key, under the standard
// touch-typing column assignment: columns 0 and 9 are pinky, 1 and 8
// ring, 2 and 7 middle, and 3-6 index (the two columns nearest the
// center are stretched to by the index fingers on a 10-column board).
func FingerFor(key Key) Finger {
	hand := Left
	if key.Col > 4 {
		hand = Right
	}
	var kind FingerKind
	switch key.Col {
	case 1, 8:
		kind = Ring
	case 2, 7:
		kind = Middle
	case 3, 4, 5, 6:
		kind = Index
	default:
		kind = Pinky
	}
	return Finger{Kind: kind, Hand: hand}
}

// InteriorColumnSymmetries says the keys within a column are
// interchangeable: a row-0 key must be placed after the row-1 key of its
// column, and a row-2 key after the row-0 key of its column. The row-1
// keys of columns 4 and 5 (the inner index-stretch columns) must be
// placed after the row-2 key of columns 3 and 6 respectively, so the six
// keys each index finger reaches form one chain. It never mirrors across
// hands.
func InteriorColumnSymmetries(key Key) (Key, bool) {
	switch {
	case key.Row == 0:
		return Key{Row: 1, Col: key.Col}, true
	case key.Row == 2:
		return Key{Row: 0, Col: key.Col}, true
	case key.Row == 1 && key.Col == 4:
		return Key{Row: 2, Col: 3}, true
	case key.Row == 1 && key.Col == 5:
		return Key{Row: 2, Col: 6}, true
	case key.Row == 1:
		return Key{}, false
	default:
		panic(fmt.Sprintf("keygrid: unreachable key %v", key))
	}
}

// ColumnSetSymmetries extends InteriorColumnSymmetries with whole-column
// interchangeability: the row-1 key of each single-finger column must be
// placed after the row-1 key of the column before it in the chain
// 0, 1, 2, 7, 8, 9, and column 6 after column 3 (the two index-finger
// column pairs). Columns 0 and 3 have no column-set parent; the row-1
// keys of columns 4 and 5 are already linked by InteriorColumnSymmetries.
func ColumnSetSymmetries(key Key) (Key, bool) {
	if parent, ok := InteriorColumnSymmetries(key); ok {
		return parent, true
	}
	switch key.Col {
	case 0, 3:
		return Key{}, false
	case 4, 5:
		panic(fmt.Sprintf("keygrid: %v has no column mirror (inner stretch column)", key))
	case 6:
		return Key{Row: 1, Col: 3}, true
	case 7:
		return Key{Row: 1, Col: 2}, true
	default:
		return Key{Row: 1, Col: key.Col - 1}, true
	}
}

// SFBDistanceSymmetries says every bottom-row key may be swapped with the
// top-row key of its column, since same-finger-bigram distance treats
// them equivalently once the home-row key in that column is fixed. In the
// inner columns 4 and 5, both the top-row and the bottom-row key must be
// placed after the top-row key of columns 3 and 6 respectively.
func SFBDistanceSymmetries(key Key) (Key, bool) {
	switch {
	case key.Row == 2 && key.Col == 4:
		return Key{Row: 0, Col: 3}, true
	case key.Row == 0 && key.Col == 4:
		return Key{Row: 0, Col: 3}, true
	case key.Row == 2 && key.Col == 5:
		return Key{Row: 0, Col: 6}, true
	case key.Row == 0 && key.Col == 5:
		return Key{Row: 0, Col: 6}, true
	case key.Row == 2:
		return Key{Row: 0, Col: key.Col}, true
	default:
		return Key{}, false
	}
}

// Precedes adapts a Key-based symmetry function into the index-based
// "must precede" relation internal/search.BuildResolver expects, over
// the keys slice in the order given (normally Keys()).
func Precedes(keys []Key, sym func(Key) (Key, bool)) func(int) (int, bool) {
	index := make(map[Key]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return func(i int) (int, bool) {
		parent, ok := sym(keys[i])
		if !ok {
			return 0, false
		}
		parentIdx, known := index[parent]
		if !known {
			return 0, false
		}
		return parentIdx, true
	}
}
