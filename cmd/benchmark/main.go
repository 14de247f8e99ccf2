package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	itersKey   = "iters"
	profileKey = "profile"
	repeatsKey = "repeats"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Benchmark the cellgraph engine",
		Commands: []*cli.Command{
			{
				Name:  "propagate",
				Usage: "Time write propagation through chains of computeds",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  itersKey,
						Usage: "Writes per graph shape",
						Value: 100,
					},
					&cli.StringFlag{
						Name:  profileKey,
						Usage: "Write a CPU profile to this file",
					},
				},
				Action: runPropagate,
			},
			{
				Name:  "layers",
				Usage: "Run layered dependency graphs of varying shape",
				Flags: []cli.Flag{
					&cli.UintFlag{
						Name:  repeatsKey,
						Usage: "Repeats per config, best run wins",
						Value: 5,
					},
				},
				Action: runLayers,
			},
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
