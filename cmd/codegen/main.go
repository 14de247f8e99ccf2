package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/delaneyj/cellgraph/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityKey  = "arity"
	outputKey = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate arity combinators for cellgraph",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityKey,
				Usage: "Maximum number of typed dependencies to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputKey,
				Usage: "Package directory to write into",
				Value: "cells",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for cellgraph started")
	defer func() {
		log.Printf("Codegen for cellgraph finished in %v", time.Since(start))
	}()

	arity := int(cmd.Uint(arityKey))
	out := cmd.String(outputKey)
	log.Printf("Max arity: %d", arity)

	contents := templates.CombinatorsGen(arity)
	return os.WriteFile(filepath.Join(out, "combinators.go"), []byte(contents), 0644)
}
