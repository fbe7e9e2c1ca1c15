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
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exports benchmark timings to Prometheus.
type Metrics struct {
	duration *prometheus.HistogramVec
	sorts    *prometheus.CounterVec
}

// NewMetrics creates the benchmark collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sortvis",
			Subsystem: "bench",
			Name:      "sort_duration_milliseconds",
			Help:      "Wall-clock duration of one timed sort.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 14),
		}, []string{"algorithm", "size"}),
		sorts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Subsystem: "bench",
			Name:      "sorts_total",
			Help:      "Number of timed sorts run.",
		}, []string{"algorithm"}),
	}
	for _, c := range []prometheus.Collector{m.duration, m.sorts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(algorithm string, size int, millis float64) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(algorithm, strconv.Itoa(size)).Observe(millis)
	m.sorts.WithLabelValues(algorithm).Inc()
}
