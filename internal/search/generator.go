package search

// Result is a completed character-to-key assignment: KeyOf[c] is the
// physical key (already translated through the Resolver's Order, so it
// is a real key index, not a PartialLayout position) assigned to
// character index c.
type Result struct {
	Score uint64
	KeyOf []int
}

type frame struct {
	layout *PartialLayout
	score2 []uint64
	score3 []uint64
}

// Generator performs an explicit stack-based depth-first search over
// completions of a PartialLayout, scoring every candidate against a
// bigram Analyzer and a trigram Analyzer as it descends. It is
// stack-based rather than recursive so a caller can interleave bound
// tightening (SetMax) between successive calls to Next — exactly what
// Generate below does to turn plain exhaustive search into
// branch-and-bound.
type Generator struct {
	resolver *Resolver
	bi, tri  *Analyzer
	stack    []frame
	max      uint64
}

// NewGenerator creates a Generator over n key positions, bounded by the
// caller's initial cutoff maxScore: any layout scoring maxScore or higher
// is never returned by Next. Pass math.MaxUint64 for an unbounded search.
func NewGenerator(n int, resolver *Resolver, bi, tri *Analyzer, maxScore uint64) *Generator {
	root := NewPartialLayout(n)
	return &Generator{
		resolver: resolver,
		bi:       bi,
		tri:      tri,
		stack:    []frame{{layout: root, score2: bi.InitScore(), score3: tri.InitScore()}},
		max:      maxScore,
	}
}

// SetMax tightens the generator's bound: any frame (partial or
// complete) whose running score is already >= max is abandoned, since
// scores only grow as more characters are placed.
func (g *Generator) SetMax(max uint64) { g.max = max }

// Next advances the search, returning the next complete layout found
// within the current bound. Returns ok=false once the search space is
// exhausted.
func (g *Generator) Next() (result *Result, ok bool) {
	for len(g.stack) > 0 {
		f := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]

		total := g.bi.WeightedSum(f.score2) + g.tri.WeightedSum(f.score3)
		if total >= g.max {
			continue
		}
		if f.layout.Complete() {
			return g.buildResult(f.layout, total), true
		}
		g.stack = append(g.stack, g.expand(f)...)
	}
	return nil, false
}

// expand scores every child of f's layout against both analyzers,
// keeping only the children that stay within every applied metric's
// constraint.
func (g *Generator) expand(f frame) []frame {
	children := f.layout.Children(g.resolver)
	out := make([]frame, 0, len(children))
	for _, child := range children {
		placed := child.Len() - 1
		score2 := append([]uint64(nil), f.score2...)
		score3 := append([]uint64(nil), f.score3...)
		withinBi := g.bi.Score(score2, child, placed)
		withinTri := g.tri.Score(score3, child, placed)
		if !withinBi || !withinTri {
			continue
		}
		out = append(out, frame{layout: child, score2: score2, score3: score3})
	}
	return out
}

func (g *Generator) buildResult(layout *PartialLayout, score uint64) *Result {
	n := layout.Len()
	keyOf := make([]int, n)
	for i := 0; i < n; i++ {
		keyOf[i] = g.resolver.Order[layout.Assigned(i)]
	}
	return &Result{Score: score, KeyOf: keyOf}
}

// Generate exhaustively searches completions of an n-key layout, scoring
// every candidate against bi (bigram metrics) and tri (trigram metrics),
// and returns the best (lowest-scoring) complete layout found, starting
// from the caller's cutoff maxScore. Pass math.MaxUint64 for no cutoff.
// It drains the Generator fully, tightening the bound to each newly
// found completion's score so later, worse branches are pruned without
// being explored — the last completion the Generator yields is
// therefore the best one. Returns ok=false if no layout satisfies every
// applied metric's constraint within maxScore, including the case where
// layouts exist but all of them meet or exceed the initial cutoff.
func Generate(n int, resolver *Resolver, bi, tri *Analyzer, maxScore uint64) (best *Result, ok bool) {
	gen := NewGenerator(n, resolver, bi, tri, maxScore)
	for {
		result, found := gen.Next()
		if !found {
			return best, ok
		}
		best = result
		ok = true
		gen.SetMax(result.Score)
	}
}
