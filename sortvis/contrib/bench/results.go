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
	"cmp"
	"slices"
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/samber/lo"
)

// Point is one timed sort.
type Point struct {
	Size   int
	Sample int
	Millis float64
}

// series accumulates the points of one algorithm.
type series struct {
	mu     sync.Mutex
	points []Point
}

// Results maps algorithm names to their timings. It is safe for concurrent
// use.
type Results struct {
	Env    Environment
	series cmap.ConcurrentMap[string, *series]
}

// NewResults returns an empty result set stamped with env.
func NewResults(env Environment) *Results {
	return &Results{
		Env:    env,
		series: cmap.New[*series](),
	}
}

// Add records one timing for the named algorithm.
func (r *Results) Add(name string, p Point) {
	s := r.series.Upsert(name, nil, func(exist bool, inMap, _ *series) *series {
		if exist {
			return inMap
		}
		return &series{}
	})
	s.mu.Lock()
	s.points = append(s.points, p)
	s.mu.Unlock()
}

// Algorithms returns the names that have at least one point, sorted.
func (r *Results) Algorithms() []string {
	names := r.series.Keys()
	slices.Sort(names)
	return names
}

// Points returns the timings of name ordered by size, then sample.
func (r *Results) Points(name string) []Point {
	s, ok := r.series.Get(name)
	if !ok {
		return nil
	}
	s.mu.Lock()
	out := slices.Clone(s.points)
	s.mu.Unlock()
	slices.SortFunc(out, func(a, b Point) int {
		if c := cmp.Compare(a.Size, b.Size); c != 0 {
			return c
		}
		return cmp.Compare(a.Sample, b.Sample)
	})
	return out
}

// Map returns every series keyed by algorithm name.
func (r *Results) Map() map[string][]Point {
	return lo.SliceToMap(r.Algorithms(), func(name string) (string, []Point) {
		return name, r.Points(name)
	})
}

// Mean returns the mean time of name over all samples of size, and false if
// there are none.
func (r *Results) Mean(name string, size int) (float64, bool) {
	pts := lo.Filter(r.Points(name), func(p Point, _ int) bool { return p.Size == size })
	if len(pts) == 0 {
		return 0, false
	}
	return lo.SumBy(pts, func(p Point) float64 { return p.Millis }) / float64(len(pts)), true
}
