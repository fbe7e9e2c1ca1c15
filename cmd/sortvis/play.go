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
	"time"

	"github.com/ajroetker/go-sortvis/cmd/sortvis/config"
	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/bench"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/viz"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// playOrder is the panel layout of the board, left to right, top to bottom.
var playOrder = []sortvis.Algorithm{sortvis.Insertion, sortvis.Bubble, sortvis.Selection, sortvis.Quick}

// playMaxValue bounds the generated bar heights.
const playMaxValue = 1000

type playFlags struct {
	size        int
	seed        int64
	delay       time.Duration
	rate        float64
	quickEvents string
	columns     int
}

func newPlayCmd(a *app) *cobra.Command {
	var f playFlags
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Animate every algorithm side by side in the terminal",
		Long: `Runs one instrumented sort per algorithm over the same random data and draws
each as a bar chart that updates on every swap. Press q to quit.

Examples:
  sortvis play
  sortvis play --size 32 --delay 20ms
  sortvis play --rate 200
  sortvis play --quick-events pivot-only`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg
			fl := cmd.Flags()
			if fl.Changed("size") {
				c.Play.Size = f.size
			}
			if fl.Changed("seed") {
				c.Play.Seed = f.seed
			}
			if fl.Changed("quick-events") {
				c.Play.QuickEvents = f.quickEvents
			}
			sorters, err := buildSorters(c, playOrder, f.delay, f.rate)
			if err != nil {
				return err
			}
			data := bench.GenerateData(c.Play.Seed, c.Play.Size, playMaxValue)
			board := viz.NewBoard(data, sorters, f.columns)
			defer board.Close()

			p := tea.NewProgram(board,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err = p.Run()
			return err
		},
	}
	fl := cmd.Flags()
	fl.IntVarP(&f.size, "size", "n", 0, "Number of bars (overrides play.size)")
	fl.Int64Var(&f.seed, "seed", 0, "Random seed (overrides play.seed)")
	fl.DurationVar(&f.delay, "delay", 0, "Pause after every swap; 0 keeps the per-algorithm pacing")
	fl.Float64Var(&f.rate, "rate", 0, "Swaps per second shared by all panels; overrides --delay when positive")
	fl.StringVar(&f.quickEvents, "quick-events", "", "Quicksort events: all or pivot-only (overrides play.quick_events)")
	fl.IntVar(&f.columns, "columns", 2, "Panels per row")
	return cmd
}

// buildSorters returns one sorter per algorithm. A positive rate makes every
// sorter draw from one shared limiter, so the panels together make at most
// rate swaps per second. Otherwise each is paced by delay when it is
// positive, else by the configured override, else by the algorithm default.
func buildSorters(c config.Config, algos []sortvis.Algorithm, delay time.Duration, rate float64) ([]sortvis.Sorter[int32], error) {
	quick, err := sortvis.ParseQuickEvents(c.Play.QuickEvents)
	if err != nil {
		return nil, err
	}
	if rate < 0 {
		return nil, fmt.Errorf("rate must not be negative, got %g", rate)
	}
	var shared sortvis.Pacer
	if rate > 0 {
		shared = sortvis.NewRatePacer(rate, 1)
	}
	sorters := make([]sortvis.Sorter[int32], 0, len(algos))
	for _, algo := range algos {
		opts := []sortvis.Option{sortvis.WithQuickEvents(quick)}
		if shared != nil {
			opts = append(opts, sortvis.WithPacer(shared))
		} else if delay > 0 {
			opts = append(opts, sortvis.WithPacing(delay))
		} else if d, ok := c.PacingFor(algo); ok {
			opts = append(opts, sortvis.WithPacing(d))
		}
		sorters = append(sorters, sortvis.New[int32](algo, opts...))
	}
	return sorters, nil
}
