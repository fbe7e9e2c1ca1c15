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
	"errors"
	"fmt"
	"math"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/samber/lo"
)

// ErrNoSizes is returned when a Config lists no input sizes.
var ErrNoSizes = errors.New("bench: no input sizes")

// Config describes one benchmark campaign.
type Config struct {
	// Sizes are the input lengths to time, in plotting order.
	Sizes []int

	// Samples is the number of random data sets per size.
	Samples int

	// Seed is the base seed; data set k uses Seed+k.
	Seed int64

	// Workers bounds parallelism. Zero uses GOMAXPROCS.
	Workers int

	// Algorithms to time. Empty means all of them.
	Algorithms []sortvis.Algorithm

	// MaxValue is the exclusive upper bound of generated values, which
	// start at 1.
	MaxValue int32
}

// DefaultConfig times all algorithms on five data sets each of 100, 1000
// and 10000 elements.
func DefaultConfig() Config {
	return Config{
		Sizes:      []int{100, 1000, 10000},
		Samples:    5,
		Seed:       1,
		Algorithms: sortvis.Algorithms(),
		MaxValue:   math.MaxInt32,
	}
}

// Validate checks c and fills in defaults for empty fields.
func (c *Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}
	if bad := lo.Filter(c.Sizes, func(n, _ int) bool { return n < 0 }); len(bad) > 0 {
		return fmt.Errorf("bench: negative sizes %v", bad)
	}
	if c.Samples <= 0 {
		c.Samples = 1
	}
	if len(c.Algorithms) == 0 {
		c.Algorithms = sortvis.Algorithms()
	}
	c.Algorithms = lo.Uniq(c.Algorithms)
	for _, a := range c.Algorithms {
		if !a.Valid() {
			return fmt.Errorf("bench: %w: %d", sortvis.ErrUnknownAlgorithm, int(a))
		}
	}
	if c.MaxValue <= 1 {
		c.MaxValue = math.MaxInt32
	}
	return nil
}
