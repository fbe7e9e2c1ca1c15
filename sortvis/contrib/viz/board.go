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

package viz

import (
	"fmt"
	"slices"
	"sync"

	"github.com/ajroetker/go-sortvis/sortvis"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SwapMsg carries one event of the panel at index Panel.
type SwapMsg[T sortvis.Number] struct {
	Panel int
	Event sortvis.SwapEvent[T]
}

// DoneMsg reports that the sort of the panel at index Panel finished.
type DoneMsg struct {
	Panel int
}

type keyMap struct {
	Quit key.Binding
}

func (k keyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Quit} }
func (k keyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.ShortHelp()} }

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	barStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	doneStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

// Board is a bubbletea model running one instrumented sort per panel, all
// over the same input.
type Board[T sortvis.Number] struct {
	input   []T
	sorters []sortvis.Sorter[T]
	panels  []*Panel[T]
	columns int

	msgs     chan tea.Msg
	quit     chan struct{}
	quitOnce sync.Once
	runs     []*sortvis.Run

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewBoard returns a board with one panel per sorter, laid out columns
// panels wide.
func NewBoard[T sortvis.Number](input []T, sorters []sortvis.Sorter[T], columns int) *Board[T] {
	b := &Board[T]{
		input:   slices.Clone(input),
		sorters: sorters,
		columns: max(columns, 1),
		msgs:    make(chan tea.Msg),
		quit:    make(chan struct{}),
		keys: keyMap{
			Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:   help.New(),
		width:  80,
		height: 24,
	}
	for _, s := range sorters {
		b.panels = append(b.panels, NewPanel(s.Algorithm().String(), input))
	}
	return b
}

// Panels returns the panels in layout order.
func (b *Board[T]) Panels() []*Panel[T] { return b.panels }

// Finished reports whether every panel's sort is done.
func (b *Board[T]) Finished() bool {
	for _, p := range b.panels {
		if !p.done {
			return false
		}
	}
	return true
}

// Init starts every sort and begins listening for their events.
func (b *Board[T]) Init() tea.Cmd {
	if len(b.sorters) == 0 {
		return nil
	}
	for i, s := range b.sorters {
		run := s.InstrumentedSort(slices.Clone(b.input), sortvis.SinkFunc[T](func(ev sortvis.SwapEvent[T]) {
			b.send(SwapMsg[T]{Panel: i, Event: ev})
		}))
		b.runs = append(b.runs, run)
		go func() {
			<-run.Done()
			b.send(DoneMsg{Panel: i})
		}()
	}
	return b.listen()
}

// send hands msg to the program, or drops it once the board is closed.
func (b *Board[T]) send(msg tea.Msg) {
	select {
	case b.msgs <- msg:
	case <-b.quit:
	}
}

// listen waits for the next message from any running sort.
func (b *Board[T]) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case <-b.quit:
			return nil
		default:
		}
		select {
		case msg := <-b.msgs:
			return msg
		case <-b.quit:
			return nil
		}
	}
}

// Close stops delivering events. Runs still in progress finish without
// blocking. Update calls it on the quit key; programs embedding the board
// that end it another way should call it themselves.
func (b *Board[T]) Close() {
	b.quitOnce.Do(func() { close(b.quit) })
}

// Update implements tea.Model.
func (b *Board[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, b.keys.Quit) {
			b.Close()
			return b, tea.Quit
		}
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
	case SwapMsg[T]:
		b.panels[msg.Panel].Apply(msg.Event)
		return b, b.listen()
	case DoneMsg:
		b.panels[msg.Panel].done = true
		if b.Finished() {
			return b, nil
		}
		return b, b.listen()
	}
	return b, nil
}

// View implements tea.Model.
func (b *Board[T]) View() string {
	rowsOfPanels := (len(b.panels) + b.columns - 1) / b.columns
	panelHeight := max((b.height-2)/max(rowsOfPanels, 1)-3, 1)
	panelWidth := max(b.width/b.columns-4, 1)

	var grid []string
	for start := 0; start < len(b.panels); start += b.columns {
		var row []string
		for _, p := range b.panels[start:min(start+b.columns, len(b.panels))] {
			row = append(row, b.renderPanel(p, panelWidth, panelHeight))
		}
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	grid = append(grid, b.help.View(b.keys))
	return lipgloss.JoinVertical(lipgloss.Left, grid...)
}

func (b *Board[T]) renderPanel(p *Panel[T], width, height int) string {
	status := fmt.Sprintf("%d swaps", p.Swaps())
	if p.Done() {
		status = doneStyle.Render(status + " ✓")
	}
	title := titleStyle.Render(p.Name()) + "  " + status
	bars := barStyle.MaxWidth(width).Render(p.Render(height - 1))
	return panelStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, title, bars))
}
