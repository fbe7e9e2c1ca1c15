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
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"
)

func TestTimeSort(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, algo := range Algorithms() {
		for _, n := range []int{0, 1, 10, 500} {
			data := randomInt32s(rng, n)
			want := slices.Clone(data)
			New[int32](algo).Sort(want)

			ms, err := New[int32](algo).TimeSort(data)
			if err != nil {
				t.Fatalf("%s n=%d: TimeSort: %v", algo, n, err)
			}
			if ms < 0 || math.IsInf(ms, 0) || math.IsNaN(ms) {
				t.Errorf("%s n=%d: TimeSort = %v, want finite non-negative", algo, n, ms)
			}
			if !slices.Equal(data, want) {
				t.Errorf("%s n=%d: TimeSort left %v, want %v", algo, n, data, want)
			}
		}
	}
}

// steppingClock advances by step on every reading.
type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func TestTimeSortMilliseconds(t *testing.T) {
	clock := &steppingClock{now: time.Unix(0, 0), step: 1500 * time.Microsecond}
	ms, err := New[int](Bubble, WithClock(clock)).TimeSort([]int{2, 1})
	if err != nil {
		t.Fatal(err)
	}
	if ms != 1.5 {
		t.Errorf("TimeSort = %v ms, want 1.5", ms)
	}
}

func TestTimeSortClockFailure(t *testing.T) {
	clock := &steppingClock{now: time.Unix(100, 0), step: -time.Second}
	data := []int{3, 2, 1}
	ms, err := New[int](Insertion, WithClock(clock)).TimeSort(data)
	if !errors.Is(err, ErrClock) {
		t.Fatalf("TimeSort error = %v, want ErrClock", err)
	}
	if ms != 0 {
		t.Errorf("TimeSort = %v with a failed clock, want 0", ms)
	}
}
