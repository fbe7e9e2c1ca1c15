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

// Package viz draws instrumented sorts as bar charts in the terminal.
//
// A Panel mirrors the slice being sorted and turns each value into a bar
// whose height is proportional to (value-min)/(max-min). It is updated from
// SwapEvents one pair of bars at a time. A Board lays several panels out in a
// grid and runs them as a bubbletea program.
package viz

import (
	"strings"

	"github.com/ajroetker/go-sortvis/sortvis"
)

// blocks are the eighth-height glyphs used for the top cell of a bar.
var blocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Panel is the bar chart of one sort.
type Panel[T sortvis.Number] struct {
	name     string
	values   []T
	min, max T
	swaps    int
	done     bool
}

// NewPanel copies data and fixes the value range from it. The range does not
// change afterwards since sorting only permutes values.
func NewPanel[T sortvis.Number](name string, data []T) *Panel[T] {
	p := &Panel[T]{
		name:   name,
		values: append([]T(nil), data...),
	}
	if len(data) > 0 {
		p.min, p.max = data[0], data[0]
		for _, v := range data[1:] {
			p.min = min(p.min, v)
			p.max = max(p.max, v)
		}
	}
	return p
}

// Name returns the panel title.
func (p *Panel[T]) Name() string { return p.name }

// Len returns the number of bars.
func (p *Panel[T]) Len() int { return len(p.values) }

// Value returns the value currently drawn at bar i.
func (p *Panel[T]) Value(i int) T { return p.values[i] }

// Values returns a copy of the mirrored slice.
func (p *Panel[T]) Values() []T { return append([]T(nil), p.values...) }

// Swaps returns the number of events applied.
func (p *Panel[T]) Swaps() int { return p.swaps }

// Done reports whether the sort behind the panel has finished.
func (p *Panel[T]) Done() bool { return p.done }

// Apply updates the two bars named by ev.
func (p *Panel[T]) Apply(ev sortvis.SwapEvent[T]) {
	ev.Apply(p.values)
	p.swaps++
}

// Height returns the height of bar i as a fraction in [0, 1]. When every
// value is equal all bars are full height.
func (p *Panel[T]) Height(i int) float64 {
	if p.max == p.min {
		return 1
	}
	h := (float64(p.values[i]) - float64(p.min)) / (float64(p.max) - float64(p.min))
	return min(max(h, 0), 1)
}

// BarWidth returns the width of one bar as a percentage of the panel.
func (p *Panel[T]) BarWidth() float64 {
	if len(p.values) == 0 {
		return 0
	}
	return 100 / float64(len(p.values))
}

// Render draws the bars rows cells high, one column per bar, top row first.
// Bars keep a minimal sliver so the smallest value stays visible.
func (p *Panel[T]) Render(rows int) string {
	if rows <= 0 || len(p.values) == 0 {
		return ""
	}
	// Height of every bar in eighths of a cell.
	levels := make([]int, len(p.values))
	for i := range p.values {
		levels[i] = max(1, int(p.Height(i)*float64(rows*8)+0.5))
	}

	var b strings.Builder
	for r := range rows {
		floor := (rows - 1 - r) * 8
		for _, lvl := range levels {
			fill := min(max(lvl-floor, 0), 8)
			b.WriteRune(blocks[fill])
		}
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
