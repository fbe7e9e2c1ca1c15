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

// Package config loads the sortvis command configuration from YAML.
//
// Every field has a default, so an empty or missing file is valid:
//
//	log:
//	  level: info
//	  format: console
//	bench:
//	  sizes: [100, 1000, 10000]
//	  samples: 5
//	  output: output.svg
//	plot:
//	  colors:
//	    selection: "#ff0000"
//	play:
//	  size: 64
//	  quick_events: all
//	  pacing:
//	    bubble: 2ms
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/ajroetker/go-sortvis/sortvis/contrib/plot"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the whole configuration file.
type Config struct {
	Log   Log   `yaml:"log"`
	Bench Bench `yaml:"bench"`
	Plot  Plot  `yaml:"plot"`
	Play  Play  `yaml:"play"`
	Serve Serve `yaml:"serve"`
}

// Log configures the logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // console or json
}

// Bench configures the bench command.
type Bench struct {
	Sizes      []int    `yaml:"sizes"`
	Samples    int      `yaml:"samples"`
	Seed       int64    `yaml:"seed"`
	Workers    int      `yaml:"workers"`
	Algorithms []string `yaml:"algorithms"`
	Output     string   `yaml:"output"`
}

// Plot configures the rendered chart.
type Plot struct {
	Title  string            `yaml:"title"`
	Colors map[string]string `yaml:"colors"`
}

// Play configures the play and trace commands.
type Play struct {
	Size        int                      `yaml:"size"`
	Seed        int64                    `yaml:"seed"`
	QuickEvents string                   `yaml:"quick_events"`
	Pacing      map[string]time.Duration `yaml:"pacing"`
}

// Serve configures the serve command.
type Serve struct {
	Addr        string `yaml:"addr"`
	DefaultSize int    `yaml:"default_size"`
	MaxSize     int    `yaml:"max_size"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log: Log{Level: "info", Format: "console"},
		Bench: Bench{
			Sizes:      []int{100, 1000, 10000},
			Samples:    5,
			Seed:       1,
			Algorithms: []string{"selection", "bubble", "insertion", "quick"},
			Output:     "output.svg",
		},
		Plot: Plot{
			Title: "Sort timings",
			Colors: map[string]string{
				"selection": "red",
				"bubble":    "blue",
				"insertion": "orange",
				"quick":     "green",
			},
		},
		Play: Play{
			Size:        64,
			Seed:        1,
			QuickEvents: "all",
		},
		Serve: Serve{
			Addr:        ":8080",
			DefaultSize: 100,
			MaxSize:     2000,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the values that cannot be caught by YAML decoding.
func (c Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%w: log.format %q, want console or json", ErrInvalid, c.Log.Format)
	}
	if _, err := c.Algorithms(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := sortvis.ParseQuickEvents(c.Play.QuickEvents); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	for name, d := range c.Play.Pacing {
		if _, err := sortvis.ParseAlgorithm(name); err != nil {
			return fmt.Errorf("%w: play.pacing: %v", ErrInvalid, err)
		}
		if d < 0 {
			return fmt.Errorf("%w: play.pacing.%s is negative", ErrInvalid, name)
		}
	}
	if c.Play.Size < 0 {
		return fmt.Errorf("%w: play.size is negative", ErrInvalid)
	}
	return nil
}

// Algorithms parses bench.algorithms.
func (c Config) Algorithms() ([]sortvis.Algorithm, error) {
	var out []sortvis.Algorithm
	for _, name := range c.Bench.Algorithms {
		a, err := sortvis.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return lo.Uniq(out), nil
}

// Palette builds the plot palette from plot.colors.
func (c Config) Palette() (plot.Palette, error) {
	p := plot.DefaultPalette()
	p.Colors = make(map[string]color.Color, len(c.Plot.Colors))
	for name, spec := range c.Plot.Colors {
		col, err := ParseColor(spec)
		if err != nil {
			return p, fmt.Errorf("plot.colors.%s: %w", name, err)
		}
		p.Colors[name] = col
	}
	return p, nil
}

// PacingFor returns the configured pacing override of a, if any.
func (c Config) PacingFor(a sortvis.Algorithm) (time.Duration, bool) {
	for name, d := range c.Play.Pacing {
		if parsed, err := sortvis.ParseAlgorithm(name); err == nil && parsed == a {
			return d, true
		}
	}
	return 0, false
}

// ParseColor accepts an SVG/CSS colour name such as "orange" or
// "rebeccapurple", or #rrggbb.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("unknown colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
