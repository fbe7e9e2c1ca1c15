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

// Package plot renders benchmark timings as one coloured line and point
// series per algorithm. The output format follows the file extension
// (.svg, .png, .pdf, ...).
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"maps"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoSeries is returned when there is nothing to draw.
var ErrNoSeries = errors.New("plot: no series")

// Point is one sample of a series.
type Point struct {
	X, Y float64
}

// Palette maps series names to colours. It is built once by the caller and
// passed in; series without an entry are drawn in Fallback.
type Palette struct {
	Colors   map[string]color.Color
	Fallback color.Color
}

// DefaultPalette draws selection red, bubble blue, insertion orange and quick
// green.
func DefaultPalette() Palette {
	return Palette{
		Colors: map[string]color.Color{
			"selection": color.RGBA{R: 0xff, A: 0xff},
			"bubble":    color.RGBA{B: 0xff, A: 0xff},
			"insertion": color.RGBA{R: 0xff, G: 0xa5, A: 0xff},
			"quick":     color.RGBA{G: 0x80, A: 0xff},
		},
		Fallback: color.Gray{Y: 0x60},
	}
}

// Color returns the colour of name.
func (p Palette) Color(name string) color.Color {
	if c, ok := p.Colors[name]; ok {
		return c
	}
	if p.Fallback != nil {
		return p.Fallback
	}
	return color.Black
}

// Options controls the rendered figure.
type Options struct {
	Title   string
	XLabel  string
	YLabel  string
	Width   vg.Length
	Height  vg.Length
	Palette Palette
}

// DefaultOptions labels the axes "Samples" and "Time (ms)".
func DefaultOptions() Options {
	return Options{
		Title:   "Sort timings",
		XLabel:  "Samples",
		YLabel:  "Time (ms)",
		Width:   8 * vg.Inch,
		Height:  6 * vg.Inch,
		Palette: DefaultPalette(),
	}
}

// New builds the figure for series, drawn in name order so output is stable.
func New(series map[string][]Point, opts Options) (*plot.Plot, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	p := plot.New()
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	p.Y.Label.Text = opts.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for _, name := range slices.Sorted(maps.Keys(series)) {
		xys := plotter.XYs(lo.Map(series[name], func(pt Point, _ int) plotter.XY {
			return plotter.XY{X: pt.X, Y: pt.Y}
		}))
		if len(xys) == 0 {
			continue
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("plot: series %q: %w", name, err)
		}
		c := opts.Palette.Color(name)
		line.Color = c
		line.LineStyle.Width = vg.Points(1.5)
		points.Color = c
		points.Shape = draw.CircleGlyph{}

		p.Add(line, points)
		p.Legend.Add(name, line, points)
	}
	return p, nil
}

// Save renders series to path.
func Save(path string, series map[string][]Point, opts Options) error {
	p, err := New(series, opts)
	if err != nil {
		return err
	}
	if err := p.Save(opts.Width, opts.Height, path); err != nil {
		return fmt.Errorf("plot: save %s: %w", path, err)
	}
	return nil
}
