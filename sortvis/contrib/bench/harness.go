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

package bench

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/workerpool"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// Harness runs benchmark campaigns.
type Harness struct {
	cfg     Config
	logger  zerolog.Logger
	metrics *Metrics
	pool    *workerpool.Pool
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the progress logger.
func WithLogger(l zerolog.Logger) Option {
	return func(h *Harness) { h.logger = l }
}

// WithMetrics makes the harness record every timing in m.
func WithMetrics(m *Metrics) Option {
	return func(h *Harness) { h.metrics = m }
}

// WithPool runs jobs on an existing pool instead of a private one. The
// caller keeps ownership and closes it.
func WithPool(p *workerpool.Pool) Option {
	return func(h *Harness) { h.pool = p }
}

// NewHarness returns a harness for cfg.
func NewHarness(cfg Config, opts ...Option) *Harness {
	h := &Harness{
		cfg:    cfg,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// dataSet is one random input shared read-only by every algorithm job.
type dataSet struct {
	size   int
	sample int
	data   []int32
}

// Run generates the data sets, times every algorithm on its own copy of
// each, and returns the collected timings.
func (h *Harness) Run(ctx context.Context) (*Results, error) {
	cfg := h.cfg
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := h.pool
	if pool == nil {
		pool = workerpool.New(cfg.Workers)
		defer pool.Close()
	}

	sets := make([]dataSet, 0, len(cfg.Sizes)*cfg.Samples)
	for _, size := range cfg.Sizes {
		for sample := range cfg.Samples {
			sets = append(sets, dataSet{size: size, sample: sample})
		}
	}
	pool.ParallelFor(len(sets), func(start, end int) {
		for i := start; i < end; i++ {
			sets[i].data = GenerateData(cfg.Seed+int64(i), sets[i].size, cfg.MaxValue)
		}
	})

	sorters := lo.Map(cfg.Algorithms, func(a sortvis.Algorithm, _ int) sortvis.Sorter[int32] {
		return sortvis.New[int32](a)
	})

	res := NewResults(CurrentEnvironment())
	h.logger.Info().
		Ints("sizes", cfg.Sizes).
		Int("samples", cfg.Samples).
		Int("algorithms", len(sorters)).
		Int("workers", pool.NumWorkers()).
		Msg("benchmark started")
	started := time.Now()

	jobs := len(sets) * len(sorters)
	err := pool.Run(ctx, jobs, func(_ context.Context, i int) error {
		set := sets[i/len(sorters)]
		s := sorters[i%len(sorters)]

		data := slices.Clone(set.data)
		ms, err := s.TimeSort(data)
		if err != nil {
			return fmt.Errorf("bench: %s on %d elements (sample %d): %w", s.Algorithm(), set.size, set.sample, err)
		}
		name := s.Algorithm().String()
		res.Add(name, Point{Size: set.size, Sample: set.sample, Millis: ms})
		h.metrics.observe(name, set.size, ms)
		h.logger.Debug().
			Str("algorithm", name).
			Int("size", set.size).
			Int("sample", set.sample).
			Float64("ms", ms).
			Msg("sorted")
		return nil
	})
	if err != nil {
		return nil, err
	}

	h.logger.Info().
		Int("sorts", jobs).
		Dur("elapsed", time.Since(started)).
		Msg("benchmark finished")
	return res, nil
}
