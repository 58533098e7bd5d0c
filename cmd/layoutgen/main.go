// Package main provides the layoutgen CLI entrypoint.
//
// corpus.go implements "corpus build", which accumulates n-gram
// statistics from a text file into a JSON cache.
//
// generate.go implements "generate", which loads a corpus cache or a
// precomputed-weights file and runs the branch-and-bound search for the
// best same-finger-bigram-minimizing layout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "layoutgen",
		Usage: "Search for optimized keyboard layouts over a weighted n-gram objective.",
		Commands: []*cli.Command{
			corpusCommand,
			generateCommand,
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
