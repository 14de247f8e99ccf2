package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/cellgraph/cells"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/urfave/cli/v3"
)

var (
	widths  = []int{1, 10, 100, 1_000}
	heights = []int{1, 10, 100, 1_000}
)

func runPropagate(ctx context.Context, cmd *cli.Command) error {
	iters := int(cmd.Uint(itersKey))

	if profilePath := cmd.String(profileKey); profilePath != "" {
		f, err := os.Create(profilePath)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")

	tbl := table.NewWriter()
	tbl.SetTitle("Cellgraph")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	addOne := func(v int) (int, error) {
		return v + 1, nil
	}
	pass := func(v int) (cells.CleanupFunc, error) {
		return nil, nil
	}

	for _, w := range widths {
		for _, h := range heights {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			rs := cells.NewReactiveSystem(func(from cells.Node, err error) {
				log.Panic(err)
			})
			src := cells.NewCell(rs, 1)
			for i := 0; i < w; i++ {
				var last cells.Readable[int] = src
				for j := 0; j < h; j++ {
					last = cells.Computed1(rs, last, addOne)
				}
				if _, err := cells.Effect1(rs, last, pass); err != nil {
					return err
				}
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Peek() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	tbl.Render()
	return nil
}
