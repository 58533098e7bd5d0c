package search

// PartialLayout is a permutation-in-progress over key positions (in
// Resolver position-space, not raw key indices). keys[0:length] holds
// the positions assigned so far, one per character in placement order;
// keys[length:] holds the remaining unassigned positions in no
// particular order beyond whatever rotation Children has left them in.
type PartialLayout struct {
	keys   []int
	length int
}

// NewPartialLayout returns the empty layout over n key positions.
func NewPartialLayout(n int) *PartialLayout {
	keys := make([]int, n)
	for i := range keys {
		keys[i] = i
	}
	return &PartialLayout{keys: keys}
}

// Len returns how many characters have been placed so far.
func (p *PartialLayout) Len() int { return p.length }

// Assigned returns the key position assigned to character i, for
// 0 <= i < Len().
func (p *PartialLayout) Assigned(i int) int { return p.keys[i] }

// Complete reports whether every key position has been assigned.
func (p *PartialLayout) Complete() bool { return p.length == len(p.keys) }

// Children returns one PartialLayout per valid next placement: for each
// remaining key position, place it next, except positions that are
// symmetric duplicates of one already tried in this same call. A
// position is a duplicate when resolver.Parent names another remaining
// position that was already considered earlier in this loop — expanding
// it would explore a placement the resolver has already ruled equivalent
// to one already covered.
func (p *PartialLayout) Children(resolver *Resolver) []*PartialLayout {
	n := len(p.keys)
	children := make([]*PartialLayout, 0, n-p.length)

	for i := p.length; i < n; i++ {
		candidate := p.keys[i]
		parentPos := resolver.Parent[candidate]
		if parentPos != -1 && containsInt(p.keys[p.length:i], parentPos) {
			continue
		}

		next := make([]int, n)
		copy(next, p.keys)
		rotateRight(next[p.length : i+1])
		children = append(children, &PartialLayout{keys: next, length: p.length + 1})
	}
	return children
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

// rotateRight rotates s in place by one position to the right: the last
// element moves to the front, and everything else shifts right by one.
func rotateRight(s []int) {
	if len(s) == 0 {
		return
	}
	last := s[len(s)-1]
	copy(s[1:], s[:len(s)-1])
	s[0] = last
}
