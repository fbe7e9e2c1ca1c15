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

// Package sortvis provides the classic comparison sorts (selection, bubble,
// insertion and quicksort) over generic slices, each runnable in two modes.
//
// # Silent and timed mode
//
// Sort permutes the slice in place and returns the number of swaps it made.
// TimeSort does the same and reports the elapsed wall-clock time in
// milliseconds:
//
//	s := sortvis.New[int32](sortvis.Quick)
//	ms, err := s.TimeSort(data)
//
// # Instrumented mode
//
// InstrumentedSort takes ownership of the slice, runs the same algorithm on
// its own goroutine and delivers one SwapEvent per swap to a Sink, pausing
// for a short pacing delay after each event so a consumer can replay the
// sort step by step:
//
//	run := s.InstrumentedSort(data, sortvis.SinkFunc[int32](func(ev sortvis.SwapEvent[int32]) {
//	    ev.Apply(mirror)
//	}))
//	<-run.Done()
//
// The call returns immediately. Events of one run arrive in the exact order
// the swaps happened; there is no ordering between separate runs. A run
// cannot be cancelled: the *Run handle only observes it, and dropping the
// handle is fine.
//
// # Pacing
//
// Each algorithm has a default pacing delay (selection and quicksort 1µs,
// bubble 1ns, insertion 0). A zero delay still yields the processor. The
// SORTVIS_PACING_SCALE environment variable multiplies every default delay,
// which is handy to slow playback down without recompiling.
package sortvis
