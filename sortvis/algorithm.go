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
	"fmt"
	"strings"
	"time"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for names it does not know.
var ErrUnknownAlgorithm = errors.New("sortvis: unknown algorithm")

// Algorithm identifies one of the sorting algorithms of this package.
type Algorithm int

const (
	// Selection repeatedly swaps the minimum of the unsorted suffix into place.
	Selection Algorithm = iota

	// Bubble swaps adjacent out-of-order pairs until a pass makes no swap.
	Bubble

	// Insertion walks each new element leftward through the sorted prefix.
	Insertion

	// Quick partitions around the last element of each range.
	Quick
)

// numAlgorithms is the number of Algorithm values.
const numAlgorithms = 4

// String returns the lower-case name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case Selection:
		return "selection"
	case Bubble:
		return "bubble"
	case Insertion:
		return "insertion"
	case Quick:
		return "quick"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= Selection && a < numAlgorithms
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlgorithm returns the algorithm with the given name. Matching ignores
// case and an optional "sort" suffix, so "Quick", "quicksort" and "quick" are
// the same.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.TrimSuffix(key, "sort"), "_")
	for _, a := range Algorithms() {
		if a.String() == key {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Algorithms returns every algorithm in declaration order.
func Algorithms() []Algorithm {
	return []Algorithm{Selection, Bubble, Insertion, Quick}
}

// DefaultPacing returns the delay an instrumented run of a waits after each
// event, before SORTVIS_PACING_SCALE is applied.
func (a Algorithm) DefaultPacing() time.Duration {
	switch a {
	case Selection:
		return time.Microsecond
	case Bubble:
		return time.Nanosecond
	case Insertion:
		return 0
	case Quick:
		return time.Microsecond
	default:
		return 0
	}
}

// QuickEvents selects which quicksort swaps an instrumented run reports.
type QuickEvents int

const (
	// QuickEventsAll reports every partition swap and every pivot placement.
	QuickEventsAll QuickEvents = iota

	// QuickEventsPivotOnly reports pivot placements only. Partition swaps
	// still happen but are neither reported nor paced.
	QuickEventsPivotOnly
)

// String returns "all" or "pivot".
func (q QuickEvents) String() string {
	switch q {
	case QuickEventsAll:
		return "all"
	case QuickEventsPivotOnly:
		return "pivot"
	default:
		return fmt.Sprintf("QuickEvents(%d)", int(q))
	}
}

// ParseQuickEvents parses "all" or "pivot".
func ParseQuickEvents(s string) (QuickEvents, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return QuickEventsAll, nil
	case "pivot", "pivot-only", "pivot_only":
		return QuickEventsPivotOnly, nil
	default:
		return 0, fmt.Errorf("sortvis: unknown quick event policy %q", s)
	}
}
