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

// Package stream serves instrumented sorts over websockets so a browser can
// replay them.
//
// A client opens GET /sorts/{algorithm}?n=100&seed=1 and receives JSON
// frames. An optional rate parameter caps the stream at that many swaps per
// second; quick=pivot-only hides partition-interior quicksort swaps. Frames: one "init" frame with the starting values, one "swap" frame per
// event in order, and a final "done" frame. Applying every swap frame to the
// init values yields the sorted slice.
package stream

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/bench"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// errClientGone stops a stream whose client has disconnected.
var errClientGone = errors.New("stream: client went away")

// Frame types.
const (
	FrameInit = "init"
	FrameSwap = "swap"
	FrameDone = "done"
)

// Entry is one side of a swap frame.
type Entry struct {
	Index int   `json:"index"`
	Value int32 `json:"value"`
}

// Frame is one websocket message.
type Frame struct {
	Type      string  `json:"type"`
	Algorithm string  `json:"algorithm,omitempty"`
	RunID     string  `json:"run_id,omitempty"`
	Values    []int32 `json:"values,omitempty"`
	Swap      []Entry `json:"swap,omitempty"`
	Events    int     `json:"events,omitempty"`
}

// Config bounds what clients may ask for.
type Config struct {
	// DefaultSize is used when the request has no n parameter.
	DefaultSize int

	// MaxSize caps n.
	MaxSize int

	// MaxValue is the exclusive upper bound of generated values.
	MaxValue int32

	// Pacing overrides every algorithm's default delay when positive.
	Pacing time.Duration
}

// DefaultConfig serves 100 values by default and at most 2000.
func DefaultConfig() Config {
	return Config{
		DefaultSize: 100,
		MaxSize:     2000,
		MaxValue:    1000,
	}
}

// Server streams sorts.
type Server struct {
	cfg      Config
	logger   zerolog.Logger
	upgrader websocket.Upgrader
	registry *prometheus.Registry
	streams  *prometheus.CounterVec
	events   *prometheus.CounterVec
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the connection logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithRegistry registers the stream counters with reg and serves reg on
// /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) { s.registry = reg }
}

// NewServer returns a server for cfg.
func NewServer(cfg Config, opts ...Option) (*Server, error) {
	if cfg.MaxSize <= 0 || cfg.DefaultSize <= 0 || cfg.DefaultSize > cfg.MaxSize {
		return nil, errors.New("stream: DefaultSize must be in (0, MaxSize]")
	}
	if cfg.MaxValue <= 1 {
		cfg.MaxValue = DefaultConfig().MaxValue
	}
	s := &Server{
		cfg:    cfg,
		logger: zerolog.Nop(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		streams: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Subsystem: "stream",
			Name:      "runs_total",
			Help:      "Instrumented sorts streamed to clients.",
		}, []string{"algorithm"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sortvis",
			Subsystem: "stream",
			Name:      "events_total",
			Help:      "Swap frames written to clients.",
		}, []string{"algorithm"}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry != nil {
		for _, c := range []prometheus.Collector{s.streams, s.events} {
			if err := s.registry.Register(c); err != nil {
				return nil, err
			}
		}
	}
	return s, nil
}

// Handler returns the HTTP routes of the server.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.accessLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/algorithms", func(c *gin.Context) {
		names := make([]string, 0, 4)
		for _, a := range sortvis.Algorithms() {
			names = append(names, a.String())
		}
		c.JSON(http.StatusOK, gin.H{"algorithms": names})
	})
	r.GET("/sorts/:algorithm", s.handleSort)
	if s.registry != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))
	}
	return r
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

// request is a validated sort request.
type request struct {
	algo  sortvis.Algorithm
	size  int
	seed  int64
	quick sortvis.QuickEvents
	rate  float64
}

func (s *Server) parseRequest(c *gin.Context) (request, error) {
	var req request
	var err error
	if req.algo, err = sortvis.ParseAlgorithm(c.Param("algorithm")); err != nil {
		return req, err
	}
	req.size = s.cfg.DefaultSize
	if v := c.Query("n"); v != "" {
		if req.size, err = strconv.Atoi(v); err != nil || req.size < 0 || req.size > s.cfg.MaxSize {
			return req, errors.New("n must be an integer in [0, " + strconv.Itoa(s.cfg.MaxSize) + "]")
		}
	}
	req.seed = 1
	if v := c.Query("seed"); v != "" {
		if req.seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return req, errors.New("seed must be an integer")
		}
	}
	if req.quick, err = sortvis.ParseQuickEvents(c.Query("quick")); err != nil {
		return req, err
	}
	if v := c.Query("rate"); v != "" {
		if req.rate, err = strconv.ParseFloat(v, 64); err != nil || !(req.rate > 0) || math.IsInf(req.rate, 0) {
			return req, errors.New("rate must be a positive number of swaps per second")
		}
	}
	return req, nil
}

func (s *Server) handleSort(c *gin.Context) {
	req, err := s.parseRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer ws.Close()

	opts := []sortvis.Option{sortvis.WithQuickEvents(req.quick), sortvis.WithLogger(s.logger)}
	switch {
	case req.rate > 0:
		opts = append(opts, sortvis.WithPacer(sortvis.NewRatePacer(req.rate, 1)))
	case s.cfg.Pacing > 0:
		opts = append(opts, sortvis.WithPacing(s.cfg.Pacing))
	}
	sorter := sortvis.New[int32](req.algo, opts...)
	data := bench.GenerateData(req.seed, req.size, s.cfg.MaxValue)
	name := req.algo.String()

	if err := ws.WriteJSON(Frame{Type: FrameInit, Algorithm: name, Values: data}); err != nil {
		s.logger.Warn().Err(err).Msg("write init frame")
		return
	}

	// Clients never send data frames, but reading is what processes their
	// close and ping frames. gone is closed once the connection fails.
	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := ws.NextReader(); err != nil {
				return
			}
		}
	}()

	// The sink runs on the sort's goroutine and is the only data writer. A
	// departed client cannot stop the sort, so later frames are dropped.
	var writeErr error
	run := sorter.InstrumentedSort(append([]int32(nil), data...), sortvis.SinkFunc[int32](func(ev sortvis.SwapEvent[int32]) {
		if writeErr != nil {
			return
		}
		select {
		case <-gone:
			writeErr = errClientGone
			return
		default:
		}
		writeErr = ws.WriteJSON(Frame{
			Type: FrameSwap,
			Swap: []Entry{
				{Index: ev[0].Index, Value: ev[0].Value},
				{Index: ev[1].Index, Value: ev[1].Value},
			},
		})
		if writeErr == nil {
			s.events.WithLabelValues(name).Inc()
		}
	}))
	s.streams.WithLabelValues(name).Inc()
	logger := s.logger.With().Str("run_id", run.ID().String()).Str("algorithm", name).Logger()
	logger.Info().Int("n", req.size).Int64("seed", req.seed).Msg("stream started")

	select {
	case <-gone:
		logger.Info().Int("events", run.Events()).Msg("client went away")
		return
	case <-run.Done():
	}
	if writeErr != nil {
		logger.Warn().Err(writeErr).Int("events", run.Events()).Msg("write swap frame")
		return
	}
	if err := ws.WriteJSON(Frame{Type: FrameDone, RunID: run.ID().String(), Events: run.Events()}); err != nil {
		logger.Warn().Err(err).Msg("write done frame")
		return
	}
	_ = ws.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	logger.Info().Int("events", run.Events()).Msg("stream finished")
}
