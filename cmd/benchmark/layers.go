package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/delaneyj/cellgraph/cells"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v3"
)

type layersConfig struct {
	name           string  // friendly name for the test, should be unique
	width          int     // width of dependency graph to construct
	totalLayers    int     // depth of dependency graph to construct
	staticFraction float64 // fraction of nodes with a fixed read-set
	nSources       int     // sources feeding each node
	readFraction   float64 // fraction of leaves read each iteration
	iterations     int     // number of test iterations
}

var layersConfigs = []layersConfig{
	{
		name:           "simple component",
		width:          10,
		totalLayers:    5,
		staticFraction: 1,
		nSources:       2,
		readFraction:   0.2,
		iterations:     600000,
	},
	{
		name:           "dynamic component",
		width:          10,
		totalLayers:    10,
		staticFraction: 0.75,
		nSources:       6,
		readFraction:   0.2,
		iterations:     15000,
	},
	{
		name:           "large web app",
		width:          1000,
		totalLayers:    12,
		staticFraction: 0.95,
		nSources:       4,
		readFraction:   1,
		iterations:     7000,
	},
	{
		name:           "wide dense",
		width:          1000,
		totalLayers:    5,
		staticFraction: 1,
		nSources:       25,
		readFraction:   1,
		iterations:     3000,
	},
	{
		name:           "deep",
		width:          5,
		totalLayers:    500,
		staticFraction: 1,
		nSources:       3,
		readFraction:   1,
		iterations:     500,
	},
	{
		name:           "very dynamic",
		width:          100,
		totalLayers:    15,
		staticFraction: 0.5,
		nSources:       6,
		readFraction:   1,
		iterations:     2000,
	},
}

// layersGraph is a grid of derived nodes over a row of writable sources.
// Nodes are held as getters so cells and computeds mix in one row.
type layersGraph struct {
	sources []*cells.Cell[int]
	layers  [][]func() int
}

func runLayers(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting layers benchmark, please wait...")
	defer log.Print("Finished layers benchmark")

	repeats := int(cmd.Uint(repeatsKey))

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{
		"framework", "size", "nSources", "read%", "static%",
		"nTimes", "test", "time", "updateRate", "title",
	})

	for _, cfg := range layersConfigs {
		log.Printf("Running '%s' config", cfg.name)
		counter := new(int64)
		rs := cells.NewReactiveSystem(func(from cells.Node, err error) {
			log.Panic(err)
		})
		graph := makeLayersGraph(rs, counter, cfg)

		runOnce := func() int {
			return runLayersGraph(rs, graph, cfg)
		}
		// run once to warm up
		runOnce()

		best := time.Hour
		bestCount := int64(0)
		for i := 0; i < repeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d", cfg.name, i+1, repeats)
			*counter = 0
			start := time.Now()
			runOnce()
			duration := time.Since(start)
			if duration < best {
				best = duration
				bestCount = *counter
			}
		}

		updateRate := float64(bestCount) / (float64(best) / float64(time.Millisecond))
		tbl.Append([]string{
			"cellgraph",
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.nSources),
			fmt.Sprint(cfg.readFraction),
			fmt.Sprint(cfg.staticFraction),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(best),
			humanize.Comma(int64(updateRate)),
			layersTitle(cfg),
		})
	}

	tbl.Render()
	return nil
}

func layersTitle(cfg layersConfig) string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("%dx%d %d sources", cfg.width, cfg.totalLayers, cfg.nSources))
	if cfg.staticFraction < 1 {
		sb.WriteString(" dynamic")
	}
	if cfg.readFraction < 1 {
		sb.WriteString(fmt.Sprintf(" read %0.2f%%", 100*cfg.readFraction))
	}
	return sb.String()
}

func makeLayersGraph(rs *cells.ReactiveSystem, counter *int64, cfg layersConfig) *layersGraph {
	sources := make([]*cells.Cell[int], cfg.width)
	prevRow := make([]func() int, cfg.width)
	for i := range sources {
		src := cells.NewCell(rs, i)
		sources[i] = src
		prevRow[i] = src.Value
	}

	random := rand.New(rand.NewSource(0))
	graph := &layersGraph{sources: sources}
	for l := 0; l < cfg.totalLayers-1; l++ {
		row := makeLayersRow(rs, counter, prevRow, cfg, random)
		graph.layers = append(graph.layers, row)
		prevRow = row
	}
	return graph
}

func makeLayersRow(rs *cells.ReactiveSystem, counter *int64, prevRow []func() int, cfg layersConfig, random *rand.Rand) []func() int {
	row := make([]func() int, len(prevRow))
	for myDex := range prevRow {
		mySources := make([]func() int, 0, cfg.nSources)
		for sourceDex := 0; sourceDex < cfg.nSources; sourceDex++ {
			mySources = append(mySources, prevRow[(myDex+sourceDex)%len(prevRow)])
		}

		staticNode := random.Float64() < cfg.staticFraction
		var node *cells.Computed[int]
		if staticNode {
			// static node, always reads every source
			node = cells.NewComputed(rs, func(oldValue int) (int, error) {
				*counter++
				sum := 0
				for _, source := range mySources {
					sum += source()
				}
				return sum, nil
			})
		} else {
			// dynamic node, the first source decides which of the rest
			// get read this run
			first := mySources[0]
			tail := mySources[1:]
			node = cells.NewComputed(rs, func(oldValue int) (int, error) {
				*counter++
				sum := first()
				shouldDrop := sum&0x1 > 0
				dropDex := sum % len(tail)
				for i, source := range tail {
					if shouldDrop && i == dropDex {
						continue
					}
					sum += source()
				}
				return sum, nil
			})
		}
		row[myDex] = node.MustValue
	}
	return row
}

// runLayersGraph writes one source and reads some or all leaves per
// iteration, returning the final leaf sum.
func runLayersGraph(rs *cells.ReactiveSystem, graph *layersGraph, cfg layersConfig) int {
	random := rand.New(rand.NewSource(0))
	leaves := graph.layers[len(graph.layers)-1]
	skipCount := int(math.Round(float64(len(leaves)) * (1 - cfg.readFraction)))
	readLeaves := removeElems(leaves, skipCount, random)

	for i := 0; i < cfg.iterations; i++ {
		sourceDex := i % len(graph.sources)
		graph.sources[sourceDex].Set(i + sourceDex)
		for _, leaf := range readLeaves {
			leaf()
		}
	}

	sum := 0
	for _, leaf := range readLeaves {
		sum += leaf()
	}
	return sum
}

func removeElems[T any](src []T, rmCount int, random *rand.Rand) []T {
	copyWithRemovals := make([]T, len(src))
	copy(copyWithRemovals, src)
	for i := 0; i < rmCount; i++ {
		rmDex := random.Intn(len(copyWithRemovals))
		copyWithRemovals[rmDex] = copyWithRemovals[len(copyWithRemovals)-1]
		copyWithRemovals = copyWithRemovals[:len(copyWithRemovals)-1]
	}
	return copyWithRemovals
}
