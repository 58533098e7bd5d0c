package search

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ParallelGenerate partitions the root layout's first-level children
// across workers (GOMAXPROCS if workers <= 0), each driving its own
// Generator over one subtree while sharing a single atomic upper bound on
// the score, seeded from the caller's cutoff maxScore (math.MaxUint64 for no
// cutoff), and returns the best Result found across all of them. This is
// an optional, additive alternative to Generate for large search spaces;
// Generate remains the canonical single-threaded driver and the one
// every correctness property is checked against — ParallelGenerate is
// only required to agree with it on the winning score.
func ParallelGenerate(ctx context.Context, n int, resolver *Resolver, bi, tri *Analyzer, workers int, maxScore uint64) (*Result, bool, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	root := NewPartialLayout(n)
	seed := frame{layout: root, score2: bi.InitScore(), score3: tri.InitScore()}
	rootGen := &Generator{resolver: resolver, bi: bi, tri: tri}
	firstLevel := rootGen.expand(seed)

	var bound atomic.Uint64
	bound.Store(maxScore)

	results := make([]*Result, len(firstLevel))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range firstLevel {
		i, f := i, f
		g.Go(func() error {
			gen := &Generator{
				resolver: resolver,
				bi:       bi,
				tri:      tri,
				stack:    []frame{f},
				max:      bound.Load(),
			}
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				gen.SetMax(bound.Load())
				result, ok := gen.Next()
				if !ok {
					return nil
				}
				results[i] = result
				tightenBound(&bound, result.Score)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var best *Result
	for _, r := range results {
		if r == nil {
			continue
		}
		if best == nil || r.Score < best.Score {
			best = r
		}
	}
	return best, best != nil, nil
}

// tightenBound atomically lowers bound to score if score is smaller,
// retrying under concurrent updates from other workers.
func tightenBound(bound *atomic.Uint64, score uint64) {
	for {
		cur := bound.Load()
		if score >= cur {
			return
		}
		if bound.CompareAndSwap(cur, score) {
			return
		}
	}
}
