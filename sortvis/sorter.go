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

package sortvis

import (
	"cmp"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Sorter is the capability set every algorithm provides.
type Sorter[T any] interface {
	// Algorithm returns the algorithm this sorter runs.
	Algorithm() Algorithm

	// Sort sorts data in place and returns the number of swaps made.
	Sort(data []T) int

	// TimeSort sorts data in place and returns the elapsed time in
	// milliseconds. The error wraps ErrClock if the clock misbehaved.
	TimeSort(data []T) (float64, error)

	// InstrumentedSort takes ownership of data, sorts it on a new goroutine
	// and reports every swap to sink. It returns without waiting. A nil sink
	// drops the events.
	InstrumentedSort(data []T, sink Sink[T]) *Run
}

// Option configures a Sorter.
type Option func(*options)

type options struct {
	pacer       Pacer
	quickEvents QuickEvents
	logger      zerolog.Logger
	clock       Clock
}

// WithPacing replaces the algorithm's default pacing delay. The value is used
// as is, without SORTVIS_PACING_SCALE.
func WithPacing(d time.Duration) Option {
	return func(o *options) { o.pacer = SleepPacer(d) }
}

// WithPacer replaces the pacing strategy altogether.
func WithPacer(p Pacer) Option {
	return func(o *options) { o.pacer = p }
}

// WithQuickEvents selects which quicksort swaps are reported. Other
// algorithms ignore it.
func WithQuickEvents(q QuickEvents) Option {
	return func(o *options) { o.quickEvents = q }
}

// WithLogger sets the logger used for run start and finish lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock sets the time source of TimeSort.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

type sorter[T any] struct {
	algo Algorithm
	less func(a, b T) bool
	opts options
}

// New returns a Sorter of algo for an ordered element type. It panics if
// algo is not one of the declared algorithms.
func New[T cmp.Ordered](algo Algorithm, opts ...Option) Sorter[T] {
	return NewFunc(algo, cmp.Less[T], opts...)
}

// NewFunc returns a Sorter of algo ordering elements with less, which must be
// a strict weak ordering. It panics if algo is not one of the declared
// algorithms.
func NewFunc[T any](algo Algorithm, less func(a, b T) bool, opts ...Option) Sorter[T] {
	if !algo.Valid() {
		panic(fmt.Sprintf("sortvis: invalid %s", algo))
	}
	s := &sorter[T]{
		algo: algo,
		less: less,
		opts: options{
			pacer:  SleepPacer(scaled(algo.DefaultPacing())),
			logger: zerolog.Nop(),
			clock:  systemClock{},
		},
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

func (s *sorter[T]) Algorithm() Algorithm { return s.algo }

// dispatch runs the algorithm over data. quickInterior is only used by
// quicksort, for swaps made while partitioning.
func (s *sorter[T]) dispatch(data []T, swap, quickInterior swapFunc) {
	switch s.algo {
	case Selection:
		selectionSort(data, s.less, swap)
	case Bubble:
		bubbleSort(data, s.less, swap)
	case Insertion:
		insertionSort(data, s.less, swap)
	case Quick:
		quickSort(data, s.less, quickInterior, swap)
	}
}

func (s *sorter[T]) Sort(data []T) int {
	if len(data) < 2 {
		return 0
	}
	swaps := 0
	swap := func(i, j int) {
		data[i], data[j] = data[j], data[i]
		swaps++
	}
	s.dispatch(data, swap, swap)
	return swaps
}

func (s *sorter[T]) TimeSort(data []T) (float64, error) {
	start := s.opts.clock.Now()
	s.Sort(data)
	elapsed := s.opts.clock.Now().Sub(start)
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: %s sort of %d elements measured %v", ErrClock, s.algo, len(data), elapsed)
	}
	return float64(elapsed) / float64(time.Millisecond), nil
}

func (s *sorter[T]) InstrumentedSort(data []T, sink Sink[T]) *Run {
	run := newRun(s.algo)
	if len(data) < 2 {
		run.finish()
		return run
	}
	if sink == nil {
		sink = Discard[T]()
	}

	pacer := s.opts.pacer
	emit := func(i, j int) {
		data[i], data[j] = data[j], data[i]
		sink.OnSwap(SwapEvent[T]{{Index: i, Value: data[i]}, {Index: j, Value: data[j]}})
		run.events.Add(1)
		pacer.Pace()
	}
	interior := emit
	if s.algo == Quick && s.opts.quickEvents == QuickEventsPivotOnly {
		interior = func(i, j int) {
			data[i], data[j] = data[j], data[i]
		}
	}

	logger := s.opts.logger.With().
		Str("run_id", run.id.String()).
		Stringer("algorithm", s.algo).
		Logger()
	go func() {
		defer run.finish()
		logger.Debug().Int("len", len(data)).Msg("instrumented sort started")
		s.dispatch(data, emit, interior)
		logger.Debug().Int("events", run.Events()).Msg("instrumented sort finished")
	}()
	return run
}
