package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/rbscholtus/layoutgen/internal/keygrid"
	"github.com/rbscholtus/layoutgen/internal/ngram"
	"github.com/rbscholtus/layoutgen/internal/render"
	"github.com/rbscholtus/layoutgen/internal/search"
	"github.com/rbscholtus/layoutgen/internal/weights"
)

const defaultAlphabet = "abcdefghijklmnopqrstuvwxyz',./"

var generateCommand = &cli.Command{
	Name:   "generate",
	Usage:  "Search for the best layout under the loaded n-gram weights, scored by same-finger bigrams.",
	Flags:  flagsSlice("corpus", "weights", "alphabet", "max-score", "workers"),
	Action: runGenerate,
}

func runGenerate(ctx context.Context, c *cli.Command) error {
	corpusPath := c.String("corpus")
	weightsPath := c.String("weights")
	if corpusPath == "" && weightsPath == "" {
		return fmt.Errorf("generate: one of --corpus or --weights is required")
	}

	var alphabet []rune
	var bigramCounts map[string]uint64
	var err error
	if corpusPath != "" {
		alphabet, bigramCounts, err = loadFromCorpus(corpusPath, c.String("alphabet"))
	} else {
		alphabet, bigramCounts, err = loadFromWeights(weightsPath, c.String("alphabet"))
	}
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if len(alphabet) != weights.AlphabetSize {
		return fmt.Errorf("generate: alphabet must have exactly %d characters, got %d", weights.AlphabetSize, len(alphabet))
	}

	charEncoding, err := search.NewEncoding(alphabet)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	keys := keygrid.Keys()
	tensor := bigramTensor(charEncoding, len(keys), bigramCounts)

	resolver, err := search.BuildResolver(len(keys), keygrid.Precedes(keys, keygrid.ColumnSetSymmetries))
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	// Analyzer.Score indexes metric tables with PartialLayout.Assigned
	// values, which live in resolver position-space, not raw key indices
	// (see buildResult's own Order translation in internal/search). The
	// table must therefore be evaluated through the same translation,
	// resolver.Order[position] -> real key, or every lookup is off by
	// whatever reordering the resolver introduced.
	sfbTable, err := search.BuildNDArray(len(keys), 2, func(tuple []int) uint64 {
		keyA := keys[resolver.Order[tuple[0]]]
		keyB := keys[resolver.Order[tuple[1]]]
		if keygrid.FingerFor(keyA) == keygrid.FingerFor(keyB) {
			return 1
		}
		return 0
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	bi, err := search.NewAnalyzer(2,
		map[string]*search.SparseTensor{"bigrams": tensor},
		map[string]*search.NDArray{"sfb": sfbTable},
		[]search.AppliedMetric{{NGrams: "bigrams", Metric: "sfb", Weight: 1}})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	tri, err := search.NewAnalyzer(3, map[string]*search.SparseTensor{}, map[string]*search.NDArray{}, nil)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	maxScore := c.Uint64("max-score")
	if maxScore == 0 {
		maxScore = math.MaxUint64
	}

	var result *search.Result
	var found bool
	if workers := c.Int("workers"); workers > 0 {
		result, found, err = search.ParallelGenerate(ctx, len(keys), resolver, bi, tri, workers, maxScore)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
	} else {
		result, found = search.Generate(len(keys), resolver, bi, tri, maxScore)
	}
	if !found {
		fmt.Println("no layout satisfies the supplied constraints or cutoff")
		return nil
	}

	out, err := render.Layout(result, alphabet)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	fmt.Println(out)
	fmt.Println(render.Summary(result))
	return nil
}

func bigramTensor(enc *search.Encoding[rune], size int, counts map[string]uint64) *search.SparseTensor {
	entries := make([]search.SparseEntry, 0, len(counts))
	for gram, count := range counts {
		runes := []rune(gram)
		tuple := make([]int, len(runes))
		known := true
		for i, r := range runes {
			idx, ok := enc.Index(r)
			if !ok {
				known = false
				break
			}
			tuple[i] = idx
		}
		if !known {
			continue
		}
		entries = append(entries, search.SparseEntry{Tuple: tuple, Weight: count})
	}
	return search.BuildSparseTensor(size, 2, entries)
}

func loadFromCorpus(path, alphabetOverride string) ([]rune, map[string]uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	stats, err := ngram.LoadJSON(file)
	if err != nil {
		return nil, nil, err
	}

	bigrams, err := stats.NGrams(2)
	if err != nil {
		return nil, nil, err
	}

	alphabet := []rune(alphabetOverride)
	if len(alphabet) == 0 {
		unigrams, err := stats.NGrams(1)
		if err != nil {
			return nil, nil, err
		}
		alphabet = frequencyOrderedAlphabet(unigrams)
	}
	return alphabet, bigrams, nil
}

func loadFromWeights(path, alphabetOverride string) ([]rune, map[string]uint64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	opts, err := weights.ParseReader(file)
	if err != nil {
		return nil, nil, err
	}

	alphabet := []rune(alphabetOverride)
	if len(alphabet) == 0 {
		alphabet = opts.Alphabet
	}
	if len(alphabet) == 0 {
		alphabet = []rune(defaultAlphabet)
	}

	counts := make(map[string]uint64, len(opts.Weights))
	for bigram, count := range opts.Weights {
		counts[string(bigram[:])] = count
	}
	return alphabet, counts, nil
}

// frequencyOrderedAlphabet sorts the default alphabet by descending
// unigram frequency, as main.rs's chars() does.
func frequencyOrderedAlphabet(unigrams map[string]uint64) []rune {
	base := []rune(defaultAlphabet)
	sort.SliceStable(base, func(i, j int) bool {
		return unigrams[string(base[i])] > unigrams[string(base[j])]
	})
	return base
}
