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

// swapFunc exchanges data[i] and data[j]. The algorithms below never swap
// themselves: every exchange goes through a swapFunc so the silent and the
// instrumented mode share one step sequence.
type swapFunc func(i, j int)

// selectionSort swaps the first minimum of data[start:] into start, for
// every start. Nothing happens when the minimum is already in place.
func selectionSort[T any](data []T, less func(a, b T) bool, swap swapFunc) {
	n := len(data)
	for start := 0; start < n; start++ {
		minIdx := start
		for i := start + 1; i < n; i++ {
			if less(data[i], data[minIdx]) {
				minIdx = i
			}
		}
		if minIdx != start {
			swap(start, minIdx)
		}
	}
}

// bubbleSort makes full passes over adjacent pairs until a pass swaps nothing.
func bubbleSort[T any](data []T, less func(a, b T) bool, swap swapFunc) {
	n := len(data)
	for {
		swapped := false
		for i := 1; i < n; i++ {
			if less(data[i], data[i-1]) {
				swap(i-1, i)
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// insertionSort grows a sorted prefix, walking each admitted element left
// one adjacent swap at a time.
func insertionSort[T any](data []T, less func(a, b T) bool, swap swapFunc) {
	for partition := 1; partition < len(data); partition++ {
		for cur := partition; cur >= 1 && less(data[cur], data[cur-1]); cur-- {
			swap(cur-1, cur)
		}
	}
}

// span is an inclusive index range still waiting to be partitioned.
type span struct {
	low, high int
}

// quickSort sorts with the last element of each range as pivot. Ranges are
// kept on an explicit stack, the right half pushed below the left one, so the
// left side of every split is finished before its right side is started.
//
// interior is used for partition swaps and place for the final pivot swap.
func quickSort[T any](data []T, less func(a, b T) bool, interior, place swapFunc) {
	if len(data) < 2 {
		return
	}
	stack := []span{{0, len(data) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.high <= s.low {
			continue
		}
		split := partition(data, s.low, s.high, less, interior, place)
		stack = append(stack, span{split + 1, s.high}, span{s.low, split - 1})
	}
}

// partition splits data[low:high+1] around data[high] and returns the final
// pivot position. Everything left of it is not greater than the pivot and
// everything right of it is not less.
//
// The pivot value is read once and the pivot element is never swapped during
// the scan: h starts at high-1, and l can only reach high after the scan
// ends. The single place swap moves it into position last.
func partition[T any](data []T, low, high int, less func(a, b T) bool, interior, place swapFunc) int {
	pivot := data[high]
	l, h := low, high-1
	for {
		// data[high] holds the pivot for the whole scan, so l stops there at
		// the latest.
		for l <= high && less(data[l], pivot) {
			l++
		}
		for h >= low && less(pivot, data[h]) {
			h--
		}
		if l >= h {
			break
		}
		interior(l, h)
		l++
		h--
	}
	if l != high {
		place(l, high)
	}
	return l
}
