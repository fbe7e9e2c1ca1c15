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
	"math/rand"
	"slices"
	"testing"
)

// Helper to check if slice is sorted
func isSorted[T Number](data []T) bool {
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			return false
		}
	}
	return true
}

func randomInt32s(rng *rand.Rand, n int) []int32 {
	data := make([]int32, n)
	for i := range data {
		data[i] = rng.Int31n(1000) - 500
	}
	return data
}

// TestSortEmpty tests sorting empty slices
func TestSortEmpty(t *testing.T) {
	for _, algo := range Algorithms() {
		var empty []float32
		if swaps := New[float32](algo).Sort(empty); swaps != 0 {
			t.Errorf("%s: Sort(empty) made %d swaps, want 0", algo, swaps)
		}
		if len(empty) != 0 {
			t.Errorf("%s: Sort(empty) should not modify empty slice", algo)
		}
	}
}

// TestSortSingle tests sorting single element slices
func TestSortSingle(t *testing.T) {
	for _, algo := range Algorithms() {
		data := []float32{42.0}
		if swaps := New[float32](algo).Sort(data); swaps != 0 {
			t.Errorf("%s: Sort([42]) made %d swaps, want 0", algo, swaps)
		}
		if data[0] != 42.0 {
			t.Errorf("%s: Sort([42]) = %v, want [42]", algo, data)
		}
	}
}

// TestSortAlreadySorted checks that sorted input is left alone. Selection,
// bubble and insertion sort must not swap at all.
func TestSortAlreadySorted(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 7, 8}
	for _, algo := range Algorithms() {
		data := slices.Clone(want)
		swaps := New[int](algo).Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort(sorted) = %v, want %v", algo, data, want)
		}
		if algo != Quick && swaps != 0 {
			t.Errorf("%s: Sort(sorted) made %d swaps, want 0", algo, swaps)
		}
	}
}

// TestQuickSortedDistinctNoSwaps: with distinct sorted keys every pivot is
// already in place.
func TestQuickSortedDistinctNoSwaps(t *testing.T) {
	data := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if swaps := New[int](Quick).Sort(data); swaps != 0 {
		t.Errorf("Quick Sort(sorted) made %d swaps, want 0", swaps)
	}
}

// TestSortReverse tests sorting reverse sorted data
func TestSortReverse(t *testing.T) {
	for _, algo := range Algorithms() {
		data := []float32{8, 7, 6, 5, 4, 3, 2, 1}
		New[float32](algo).Sort(data)
		if !isSorted(data) {
			t.Errorf("%s: Sort(reverse) produced unsorted result: %v", algo, data)
		}
	}
}

// TestSortDuplicates tests sorting with duplicate elements
func TestSortDuplicates(t *testing.T) {
	for _, algo := range Algorithms() {
		data := []float32{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
		New[float32](algo).Sort(data)
		if !isSorted(data) {
			t.Errorf("%s: Sort(duplicates) produced unsorted result: %v", algo, data)
		}
	}
}

// TestSortAllSame tests sorting with all identical elements
func TestSortAllSame(t *testing.T) {
	for _, algo := range Algorithms() {
		data := []float32{5, 5, 5, 5, 5, 5, 5, 5}
		New[float32](algo).Sort(data)
		if !isSorted(data) {
			t.Errorf("%s: Sort(allSame) produced unsorted result: %v", algo, data)
		}
	}
}

// TestSortMatchesStdlib checks ordering and the permutation property against
// slices.Sort over a grid of sizes.
func TestSortMatchesStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	sizes := []int{0, 1, 2, 3, 7, 8, 15, 16, 31, 64, 100, 257}
	for _, algo := range Algorithms() {
		for _, n := range sizes {
			data := randomInt32s(rng, n)
			want := slices.Clone(data)
			slices.Sort(want)

			New[int32](algo).Sort(data)
			if !slices.Equal(data, want) {
				t.Errorf("%s: Sort(random, n=%d) = %v, want %v", algo, n, data, want)
			}
		}
	}
}

// TestSortFunc sorts with a caller-supplied ordering.
func TestSortFunc(t *testing.T) {
	desc := func(a, b string) bool { return a > b }
	for _, algo := range Algorithms() {
		data := []string{"pear", "apple", "fig", "kiwi", "banana"}
		NewFunc(algo, desc).Sort(data)
		want := []string{"pear", "kiwi", "fig", "banana", "apple"}
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort(desc) = %v, want %v", algo, data, want)
		}
	}
}

type keyed struct {
	key int
	tag string
}

// TestStableAdjacentSorts checks that bubble and insertion sort keep equal
// keys in input order. They only move elements across strictly greater
// neighbours.
func TestStableAdjacentSorts(t *testing.T) {
	less := func(a, b keyed) bool { return a.key < b.key }
	input := []keyed{{3, "a"}, {1, "b"}, {3, "c"}, {2, "d"}, {1, "e"}, {3, "f"}}
	want := []keyed{{1, "b"}, {1, "e"}, {2, "d"}, {3, "a"}, {3, "c"}, {3, "f"}}
	for _, algo := range []Algorithm{Bubble, Insertion} {
		data := slices.Clone(input)
		NewFunc(algo, less).Sort(data)
		if !slices.Equal(data, want) {
			t.Errorf("%s: Sort = %v, want %v", algo, data, want)
		}
	}
}

// TestSelectionScenario walks [5 3 8 1] through selection sort.
func TestSelectionScenario(t *testing.T) {
	data := []int{5, 3, 8, 1}
	swaps := New[int](Selection).Sort(data)
	if want := []int{1, 3, 5, 8}; !slices.Equal(data, want) {
		t.Errorf("Sort = %v, want %v", data, want)
	}
	if swaps != 2 {
		t.Errorf("swaps = %d, want 2", swaps)
	}
}

// TestBubbleScenario walks [3 1 2] through bubble sort.
func TestBubbleScenario(t *testing.T) {
	data := []int{3, 1, 2}
	swaps := New[int](Bubble).Sort(data)
	if want := []int{1, 2, 3}; !slices.Equal(data, want) {
		t.Errorf("Sort = %v, want %v", data, want)
	}
	if swaps != 2 {
		t.Errorf("swaps = %d, want 2", swaps)
	}
}

// TestQuickPartitionOrder checks that the left range of a split is finished
// before the right range is touched.
func TestQuickPartitionOrder(t *testing.T) {
	data := []int{6, 2, 9, 1, 7, 3, 8, 5}
	var order [][2]int
	split := -1
	interior := func(i, j int) {
		data[i], data[j] = data[j], data[i]
		order = append(order, [2]int{i, j})
	}
	place := func(i, j int) {
		interior(i, j)
		if split < 0 {
			split = i
			order = order[:0]
		}
	}
	quickSort(data, func(a, b int) bool { return a < b }, interior, place)

	if !isSorted(data) {
		t.Fatalf("quickSort produced unsorted result: %v", data)
	}
	if split != 3 {
		t.Fatalf("first split = %d, want 3", split)
	}
	seenRight := false
	for _, s := range order {
		if s[0] > split {
			seenRight = true
		}
		if s[1] < split && seenRight {
			t.Errorf("swap %v on the left range after the right range started: %v", s, order)
		}
	}
	if want := [][2]int{{0, 2}, {4, 5}}; !slices.Equal(order, want) {
		t.Errorf("swaps after first split = %v, want %v", order, want)
	}
}

func TestPartitionLeavesPivotUntilPlaced(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	less := func(a, b int) bool { return a < b }
	for iter := range 2000 {
		n := 2 + rng.Intn(30)
		data := make([]int, n)
		for i := range data {
			data[i] = rng.Intn(6) // heavy duplication
		}
		high := n - 1
		pivot := data[high]

		swap := func(i, j int) { data[i], data[j] = data[j], data[i] }
		interior := func(i, j int) {
			if i == high || j == high {
				t.Fatalf("iter %d: interior swap (%d, %d) touched the pivot at %d", iter, i, j, high)
			}
			swap(i, j)
		}
		placed := 0
		place := func(i, j int) {
			placed++
			if j != high {
				t.Fatalf("iter %d: place swap (%d, %d) does not move the pivot", iter, i, j)
			}
			swap(i, j)
		}

		split := partition(data, 0, high, less, interior, place)
		if placed > 1 {
			t.Fatalf("iter %d: %d place swaps, want at most 1", iter, placed)
		}
		if data[split] != pivot {
			t.Fatalf("iter %d: data[%d] = %d, want pivot %d", iter, split, data[split], pivot)
		}
		for i := range split {
			if data[i] > pivot {
				t.Fatalf("iter %d: data[%d] = %d left of pivot %d", iter, i, data[i], pivot)
			}
		}
		for i := split + 1; i < n; i++ {
			if data[i] < pivot {
				t.Fatalf("iter %d: data[%d] = %d right of pivot %d", iter, i, data[i], pivot)
			}
		}
	}
}
