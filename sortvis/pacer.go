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
	"os"
	"runtime"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Pacer is the suspension point of an instrumented run. Pace is called once
// after every delivered event and blocks for as long as the run should wait.
type Pacer interface {
	Pace()
}

// SleepPacer waits for a fixed duration. A non-positive duration only yields
// the processor to other goroutines.
type SleepPacer time.Duration

// Pace implements Pacer.
func (d SleepPacer) Pace() {
	if d <= 0 {
		runtime.Gosched()
		return
	}
	time.Sleep(time.Duration(d))
}

// RatePacer caps a run, or several runs sharing it, at a number of events
// per second.
type RatePacer struct {
	limiter *rate.Limiter
}

// NewRatePacer returns a pacer allowing perSecond events per second with the
// given burst. A burst below 1 is raised to 1.
func NewRatePacer(perSecond float64, burst int) *RatePacer {
	if burst < 1 {
		burst = 1
	}
	return &RatePacer{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Pace implements Pacer.
func (p *RatePacer) Pace() {
	// Wait only fails for a cancelled context or a burst of zero; neither
	// can happen here.
	_ = p.limiter.Wait(context.Background())
}

// pacingScale is read once from SORTVIS_PACING_SCALE.
var pacingScale = sync.OnceValue(func() float64 {
	return parsePacingScale(os.Getenv("SORTVIS_PACING_SCALE"))
})

// parsePacingScale returns 1 for empty, unparsable or negative values.
func parsePacingScale(val string) float64 {
	if val == "" {
		return 1
	}
	f, err := strconv.ParseFloat(val, 64)
	if err != nil || f < 0 {
		return 1
	}
	return f
}

// PacingScale returns the multiplier applied to default pacing delays.
func PacingScale() float64 {
	return pacingScale()
}

// scaled applies PacingScale to d.
func scaled(d time.Duration) time.Duration {
	return time.Duration(float64(d) * PacingScale())
}
