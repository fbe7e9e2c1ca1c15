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
	"strconv"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/spf13/cobra"
)

func newTraceCmd(a *app) *cobra.Command {
	var quickEvents string
	cmd := &cobra.Command{
		Use:   "trace <algorithm> <value>...",
		Short: "Print every swap an instrumented sort makes",
		Long: `Runs one instrumented sort over the given integers, printing each swap as
it happens and the sorted result at the end. Run with --log-level debug to
also log the events.

Examples:
  sortvis trace bubble 3 1 2
  sortvis trace quick 6 2 9 1 7 3 8 5 --quick-events pivot-only`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := sortvis.ParseAlgorithm(args[0])
			if err != nil {
				return err
			}
			values := make([]int64, 0, len(args)-1)
			for _, arg := range args[1:] {
				v, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("value %q: %w", arg, err)
				}
				values = append(values, v)
			}
			if !cmd.Flags().Changed("quick-events") {
				quickEvents = a.cfg.Play.QuickEvents
			}
			quick, err := sortvis.ParseQuickEvents(quickEvents)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			logSink := sortvis.LogSink[int64](a.logger)
			step := 0
			sink := sortvis.SinkFunc[int64](func(ev sortvis.SwapEvent[int64]) {
				step++
				fmt.Fprintf(out, "%4d  [%d]=%d <-> [%d]=%d\n", step, ev[0].Index, ev[0].Value, ev[1].Index, ev[1].Value)
				logSink.OnSwap(ev)
			})

			s := sortvis.New[int64](algo,
				sortvis.WithPacing(0),
				sortvis.WithQuickEvents(quick),
				sortvis.WithLogger(a.logger),
			)
			run := s.InstrumentedSort(values, sink)
			if err := run.Wait(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %v (%d swaps)\n", algo, values, run.Events())
			return nil
		},
	}
	cmd.Flags().StringVar(&quickEvents, "quick-events", "", "Quicksort events: all or pivot-only (overrides play.quick_events)")
	return cmd
}
