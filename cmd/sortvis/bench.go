// Copyright 2025 go-sortvis Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/ajroetker/go-sortvis/sortvis/contrib/bench"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/plot"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type benchFlags struct {
	sizes      []int
	samples    int
	workers    int
	seed       int64
	algorithms []string
	out        string
}

func newBenchCmd(a *app) *cobra.Command {
	var f benchFlags
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time every algorithm on random data and plot the results",
		Long: `Times each algorithm on its own copy of several random data sets per size,
prints the mean per size and writes a line chart of every sample.

Examples:
  sortvis bench
  sortvis bench --sizes 100,500 --samples 3 --out small.svg
  sortvis bench --algorithms quick,insertion --out quick.png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, f)
		},
	}
	fl := cmd.Flags()
	fl.IntSliceVar(&f.sizes, "sizes", nil, "Input sizes (overrides bench.sizes)")
	fl.IntVar(&f.samples, "samples", 0, "Data sets per size (overrides bench.samples)")
	fl.IntVar(&f.workers, "workers", 0, "Worker goroutines, 0 for GOMAXPROCS (overrides bench.workers)")
	fl.Int64Var(&f.seed, "seed", 0, "Base random seed (overrides bench.seed)")
	fl.StringSliceVar(&f.algorithms, "algorithms", nil, "Algorithms to time (overrides bench.algorithms)")
	fl.StringVarP(&f.out, "out", "o", "", "Chart file; the extension picks the format (overrides bench.output)")
	return cmd
}

func (a *app) runBench(cmd *cobra.Command, f benchFlags) error {
	c := a.cfg
	fl := cmd.Flags()
	if fl.Changed("sizes") {
		c.Bench.Sizes = f.sizes
	}
	if fl.Changed("samples") {
		c.Bench.Samples = f.samples
	}
	if fl.Changed("workers") {
		c.Bench.Workers = f.workers
	}
	if fl.Changed("seed") {
		c.Bench.Seed = f.seed
	}
	if fl.Changed("algorithms") {
		c.Bench.Algorithms = f.algorithms
	}
	if fl.Changed("out") {
		c.Bench.Output = f.out
	}

	algos, err := c.Algorithms()
	if err != nil {
		return err
	}
	palette, err := c.Palette()
	if err != nil {
		return err
	}

	cfg := bench.DefaultConfig()
	cfg.Sizes = c.Bench.Sizes
	cfg.Samples = c.Bench.Samples
	cfg.Workers = c.Bench.Workers
	cfg.Seed = c.Bench.Seed
	if len(algos) > 0 {
		cfg.Algorithms = algos
	}

	metrics, err := bench.NewMetrics(prometheus.NewRegistry())
	if err != nil {
		return err
	}
	res, err := bench.NewHarness(cfg,
		bench.WithLogger(a.logger.With().Str("component", "bench").Logger()),
		bench.WithMetrics(metrics),
	).Run(cmd.Context())
	if err != nil {
		return err
	}

	if err := writeSummary(cmd.OutOrStdout(), res, cfg.Sizes); err != nil {
		return err
	}
	if c.Bench.Output == "" {
		return nil
	}

	opts := plot.DefaultOptions()
	opts.Title = c.Plot.Title
	opts.Palette = palette
	if err := plot.Save(c.Bench.Output, plotSeries(res), opts); err != nil {
		return err
	}
	a.logger.Info().Str("path", c.Bench.Output).Msg("chart written")
	return nil
}

// plotSeries turns every timing into a (size, ms) point.
func plotSeries(res *bench.Results) map[string][]plot.Point {
	return lo.MapValues(res.Map(), func(points []bench.Point, _ string) []plot.Point {
		return lo.Map(points, func(p bench.Point, _ int) plot.Point {
			return plot.Point{X: float64(p.Size), Y: p.Millis}
		})
	})
}

// writeSummary prints one row per algorithm with its mean time per size.
func writeSummary(w io.Writer, res *bench.Results, sizes []int) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprint(tw, "algorithm\t")
	for _, n := range sizes {
		fmt.Fprintf(tw, "n=%d\t", n)
	}
	fmt.Fprintln(tw)
	for _, name := range res.Algorithms() {
		fmt.Fprintf(tw, "%s\t", name)
		for _, n := range sizes {
			if mean, ok := res.Mean(name, n); ok {
				fmt.Fprintf(tw, "%.3fms\t", mean)
			} else {
				fmt.Fprint(tw, "-\t")
			}
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
