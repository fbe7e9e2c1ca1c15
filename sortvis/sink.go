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
	"sync"

	"github.com/rs/zerolog"
)

// Sink receives the events of an instrumented run. OnSwap is called on the
// run's goroutine, once per swap, in swap order; the run does not continue
// until it returns.
type Sink[T any] interface {
	OnSwap(ev SwapEvent[T])
}

// SinkFunc adapts a function to Sink.
type SinkFunc[T any] func(ev SwapEvent[T])

// OnSwap implements Sink.
func (f SinkFunc[T]) OnSwap(ev SwapEvent[T]) { f(ev) }

// Discard returns a sink that drops every event.
func Discard[T any]() Sink[T] {
	return SinkFunc[T](func(SwapEvent[T]) {})
}

// ChanSink forwards events to ch. A full channel blocks the run, which makes
// a slow reader pace the sort.
func ChanSink[T any](ch chan<- SwapEvent[T]) Sink[T] {
	return SinkFunc[T](func(ev SwapEvent[T]) { ch <- ev })
}

// LogSink writes each event as a debug line of logger.
func LogSink[T any](logger zerolog.Logger) Sink[T] {
	return SinkFunc[T](func(ev SwapEvent[T]) {
		logger.Debug().
			Int("i", ev[0].Index).
			Interface("vi", ev[0].Value).
			Int("j", ev[1].Index).
			Interface("vj", ev[1].Value).
			Msg("swap")
	})
}

// Recorder keeps every event it receives. It is safe to read while a run is
// still writing to it.
type Recorder[T any] struct {
	mu     sync.Mutex
	events []SwapEvent[T]
}

// OnSwap implements Sink.
func (r *Recorder[T]) OnSwap(ev SwapEvent[T]) {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.mu.Unlock()
}

// Len returns the number of events recorded so far.
func (r *Recorder[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Events returns a copy of the recorded events in arrival order.
func (r *Recorder[T]) Events() []SwapEvent[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]SwapEvent[T], len(r.events))
	copy(out, r.events)
	return out
}

// Replay applies every recorded event to dst in order.
func (r *Recorder[T]) Replay(dst []T) {
	for _, ev := range r.Events() {
		ev.Apply(dst)
	}
}
