package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/rbscholtus/layoutgen/internal/ngram"
)

var corpusCommand = &cli.Command{
	Name:  "corpus",
	Usage: "Build and cache corpus n-gram statistics.",
	Commands: []*cli.Command{
		buildCommand,
	},
}

var buildCommand = &cli.Command{
	Name:      "build",
	Usage:     "Accumulate n-gram statistics from a text file and write a JSON cache.",
	ArgsUsage: "<text-file>",
	Flags:     flagsSlice("out", "window"),
	Action:    runBuild,
}

func runBuild(ctx context.Context, c *cli.Command) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("corpus build: a text file argument is required")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("corpus build: %w", err)
	}
	defer file.Close()

	stats := ngram.New(c.Int("window"))
	if err := stats.AddReader(file); err != nil {
		return fmt.Errorf("corpus build: %w", err)
	}

	out := c.String("out")
	if out == "" {
		out = path + ".json"
	}
	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("corpus build: %w", err)
	}
	defer outFile.Close()

	if err := stats.SaveJSON(outFile); err != nil {
		return fmt.Errorf("corpus build: %w", err)
	}

	fmt.Printf("wrote %s\n", out)
	return nil
}
