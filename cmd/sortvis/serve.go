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
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ajroetker/go-sortvis/sortvis/contrib/stream"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// shutdownTimeout bounds how long open streams may keep the server alive
// after a signal.
const shutdownTimeout = 5 * time.Second

func newServeCmd(a *app) *cobra.Command {
	var (
		addr  string
		delay time.Duration
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Stream instrumented sorts over websockets",
		Long: `Serves GET /sorts/:algorithm?n=&seed=&quick= as a websocket that sends an
init frame with the input, one swap frame per event and a done frame.
Prometheus metrics are on /metrics.

Examples:
  sortvis serve
  sortvis serve --addr 127.0.0.1:9000 --delay 5ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := a.cfg.Serve
			if cmd.Flags().Changed("addr") {
				c.Addr = addr
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			cfg := stream.DefaultConfig()
			cfg.DefaultSize = c.DefaultSize
			cfg.MaxSize = c.MaxSize
			cfg.Pacing = delay
			logger := a.logger.With().Str("component", "stream").Logger()
			srv, err := stream.NewServer(cfg, stream.WithLogger(logger), stream.WithRegistry(reg))
			if err != nil {
				return err
			}

			gin.SetMode(gin.ReleaseMode)
			ln, err := net.Listen("tcp", c.Addr)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serveHTTP(ctx, &http.Server{Handler: srv.Handler(), ReadHeaderTimeout: 10 * time.Second}, ln, logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides serve.addr)")
	cmd.Flags().DurationVar(&delay, "delay", 0, "Pause after every swap; 0 keeps the per-algorithm pacing")
	return cmd
}

// serveHTTP serves on ln until ctx is done, then shuts srv down.
func serveHTTP(ctx context.Context, srv *http.Server, ln net.Listener, logger zerolog.Logger) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("addr", ln.Addr().String()).Msg("listening")
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
