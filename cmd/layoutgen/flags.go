package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// appFlagsMap centralizes flag definitions so each command can pick only
// the ones it needs, the way cmd/keycraft/flags.go does.
var appFlagsMap = map[string]cli.Flag{
	"out": &cli.StringFlag{
		Name:    "out",
		Aliases: []string{"o"},
		Usage:   "Output path for the JSON corpus cache (defaults to <input>.json).",
	},
	"window": &cli.IntFlag{
		Name:  "window",
		Usage: "N-gram window size to accumulate.",
		Value: 3,
		Action: func(ctx context.Context, c *cli.Command, value int) error {
			if value < 2 {
				return fmt.Errorf("--window must be at least 2 (got %d)", value)
			}
			return nil
		},
	},
	"corpus": &cli.StringFlag{
		Name:    "corpus",
		Aliases: []string{"c"},
		Usage:   "JSON corpus cache produced by \"corpus build\".",
	},
	"weights": &cli.StringFlag{
		Name:    "weights",
		Aliases: []string{"w"},
		Usage:   "Precomputed-weights JSON file (alternative to --corpus).",
	},
	"alphabet": &cli.StringFlag{
		Name:  "alphabet",
		Usage: "Override the 30-character alphabet (defaults to frequency order from the corpus; for --weights, the file's own alphabet, else a-z followed by ',./).",
	},
	"max-score": &cli.Uint64Flag{
		Name:  "max-score",
		Usage: "Reject layouts scoring this or higher (0 means unbounded).",
		Value: 0,
	},
	"workers": &cli.IntFlag{
		Name:  "workers",
		Usage: "Partition the search across this many goroutines via search.ParallelGenerate (0 runs single-threaded search.Generate).",
		Value: 0,
	},
}

// flagsSlice returns the cli.Flag values for the given keys, in order.
func flagsSlice(keys ...string) []cli.Flag {
	flags := make([]cli.Flag, 0, len(keys))
	for _, k := range keys {
		if f, ok := appFlagsMap[k]; ok {
			flags = append(flags, f)
		}
	}
	return flags
}
