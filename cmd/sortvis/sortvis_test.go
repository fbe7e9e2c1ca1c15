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

package main

import (
	"bytes"
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ajroetker/go-sortvis/cmd/sortvis/config"
	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/stream"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	err = root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestTraceBubble(t *testing.T) {
	out, _, err := execute(t, "trace", "bubble", "3", "1", "2")
	require.NoError(t, err)
	assert.Equal(t,
		"   1  [0]=1 <-> [1]=3\n"+
			"   2  [1]=2 <-> [2]=3\n"+
			"bubble: [1 2 3] (2 swaps)\n",
		out)
}

func TestTraceLogsEvents(t *testing.T) {
	_, logs, err := execute(t, "--log-level", "debug", "--log-format", "json", "trace", "selection", "5", "3", "8", "1")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(logs, `"message":"swap"`), logs)
	assert.Contains(t, logs, `"message":"instrumented sort finished"`)
	assert.Contains(t, logs, `"service":"sortvis"`)
}

func TestTraceQuickPivotOnly(t *testing.T) {
	all, _, err := execute(t, "trace", "quick", "6", "2", "9", "1", "7", "3", "8", "5")
	require.NoError(t, err)
	pivots, _, err := execute(t, "trace", "quick", "--quick-events", "pivot-only", "6", "2", "9", "1", "7", "3", "8", "5")
	require.NoError(t, err)

	assert.Contains(t, all, "quick: [1 2 3 5 6 7 8 9] (")
	assert.Contains(t, pivots, "quick: [1 2 3 5 6 7 8 9] (")
	assert.Less(t, strings.Count(pivots, "<->"), strings.Count(all, "<->"))
}

func TestTraceErrors(t *testing.T) {
	_, _, err := execute(t, "trace", "heap", "1", "2")
	assert.ErrorIs(t, err, sortvis.ErrUnknownAlgorithm)

	_, _, err = execute(t, "trace", "bubble", "1", "two")
	assert.ErrorContains(t, err, `value "two"`)

	_, _, err = execute(t, "trace")
	assert.Error(t, err)
}

func TestTraceEmpty(t *testing.T) {
	out, _, err := execute(t, "trace", "insertion")
	require.NoError(t, err)
	assert.Equal(t, "insertion: [] (0 swaps)\n", out)
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortvis.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: loud}\n"), 0o644))
	_, _, err := execute(t, "--config", path, "trace", "bubble", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, _, err = execute(t, "--log-format", "xml", "trace", "bubble", "1")
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestBenchWritesChart(t *testing.T) {
	chart := filepath.Join(t.TempDir(), "chart.svg")
	out, _, err := execute(t, "bench", "--sizes", "10,20", "--samples", "2", "--workers", "2", "--out", chart)
	require.NoError(t, err)

	for _, want := range []string{"algorithm", "n=10", "n=20", "bubble", "insertion", "quick", "selection"} {
		assert.Contains(t, out, want)
	}
	info, err := os.Stat(chart)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestBenchSubset(t *testing.T) {
	out, _, err := execute(t, "bench", "--sizes", "5", "--samples", "1", "--algorithms", "quick", "--out", "")
	require.NoError(t, err)
	assert.Contains(t, out, "quick")
	assert.NotContains(t, out, "bubble")
}

func TestBenchRejectsUnknownAlgorithm(t *testing.T) {
	_, _, err := execute(t, "bench", "--algorithms", "heap", "--out", "")
	assert.ErrorIs(t, err, sortvis.ErrUnknownAlgorithm)
}

func TestBuildSorters(t *testing.T) {
	c := config.Default()
	c.Play.Pacing = map[string]time.Duration{"bubble": 0}
	sorters, err := buildSorters(c, playOrder, 0, 0)
	require.NoError(t, err)
	require.Len(t, sorters, len(playOrder))
	for i, s := range sorters {
		assert.Equal(t, playOrder[i], s.Algorithm())
	}

	c.Play.QuickEvents = "sometimes"
	_, err = buildSorters(c, playOrder, 0, 0)
	assert.Error(t, err)

	c.Play.QuickEvents = "all"
	_, err = buildSorters(c, playOrder, 0, -1)
	assert.Error(t, err)
}

func TestBuildSortersSharedRate(t *testing.T) {
	sorters, err := buildSorters(config.Default(), playOrder, 0, 100)
	require.NoError(t, err)

	// Each run makes its first swap before its first wait, and every later
	// swap needs one 10ms token from the shared limiter, so the 12th swap
	// overall lands no earlier than ~70ms.
	var count atomic.Int64
	reached := make(chan time.Time, 1)
	sink := sortvis.SinkFunc[int32](func(sortvis.SwapEvent[int32]) {
		if count.Add(1) == 12 {
			reached <- time.Now()
		}
	})
	start := time.Now()
	var runs []*sortvis.Run
	for _, s := range sorters {
		runs = append(runs, s.InstrumentedSort([]int32{8, 7, 6, 5, 4, 3, 2, 1}, sink))
	}
	select {
	case at := <-reached:
		assert.GreaterOrEqual(t, at.Sub(start), 60*time.Millisecond)
	case <-time.After(10 * time.Second):
		t.Fatal("runs did not reach 12 swaps")
	}
	for _, r := range runs {
		require.NoError(t, r.Wait(context.Background()))
	}
}

func TestServeHTTPShutsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv, err := stream.NewServer(stream.DefaultConfig())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- serveHTTP(ctx, &http.Server{Handler: srv.Handler()}, ln, zerolog.Nop())
	}()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("serveHTTP did not return after cancel")
	}
}

func TestConsoleLoggerColour(t *testing.T) {
	assert.False(t, isTerminal(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "log.txt"))
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, isTerminal(f), "a regular file is not a terminal")

	var buf bytes.Buffer
	newLogger(&buf, "console").Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.NotContains(t, buf.String(), "\x1b[", "non-terminal output must not be coloured")
}
