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
	"context"
	"sync/atomic"

	"github.com/google/uuid"
)

// Run observes one instrumented sort. It offers no way to stop the sort;
// callers that do not care about completion can drop it.
type Run struct {
	id     uuid.UUID
	algo   Algorithm
	done   chan struct{}
	events atomic.Int64
}

func newRun(algo Algorithm) *Run {
	return &Run{
		id:   uuid.New(),
		algo: algo,
		done: make(chan struct{}),
	}
}

// ID returns the identifier used in log lines for this run.
func (r *Run) ID() uuid.UUID { return r.id }

// Algorithm returns the algorithm being run.
func (r *Run) Algorithm() Algorithm { return r.algo }

// Done is closed after the last event has been delivered.
func (r *Run) Done() <-chan struct{} { return r.done }

// Events returns the number of events delivered so far.
func (r *Run) Events() int { return int(r.events.Load()) }

// Wait blocks until the run finishes or ctx is done. A cancelled ctx only
// stops the waiting; the sort itself keeps going.
func (r *Run) Wait(ctx context.Context) error {
	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Run) finish() {
	close(r.done)
}
