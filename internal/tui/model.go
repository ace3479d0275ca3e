// Package tui hosts the pie chart in a Bubble Tea program. Loading data is a
// chart update; quitting unmounts the chart.
package tui

import (
	"os"
	"time"

	"github.com/akasprzok/pie/internal/charts"
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/akasprzok/pie/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	"golang.org/x/term"
)

const (
	// DefaultTerminalWidth is the fallback terminal width when detection fails.
	DefaultTerminalWidth = 80

	// ChartWidthPadding is the horizontal space taken by the chart box border and padding.
	ChartWidthPadding = 6

	// LegendMinRows is the minimum number of legend rows to show.
	LegendMinRows = 3

	// LegendMaxRows is the maximum legend rows regardless of terminal height.
	LegendMaxRows = 10

	// ChromeHeight is the number of lines used by bars, boxes and the tooltip.
	ChromeHeight = 14
)

// State is the TUI's load state.
type State int

const (
	StateLoading State = iota
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// dataMsg carries the result of a source load.
type dataMsg struct {
	input    piechart.Input
	warnings []string
	err      error
	loadedAt time.Time
}

// refreshMsg fires a scheduled reload. Stale generations are ignored.
type refreshMsg struct {
	generation int
}

// Model is the Bubble Tea model for the interactive pie chart.
type Model struct {
	source  Source
	refresh time.Duration

	canvas *charts.Canvas
	chart  *piechart.Chart
	legend tables.Legend

	state      State
	err        error
	warnings   []string
	loadedAt   time.Time
	generation int

	width    int
	height   int
	spinner  spinner.Model
	quitting bool
}

// NewModel creates a TUI model reading from source. A refresh of zero
// disables periodic reloads.
func NewModel(source Source, refresh time.Duration) Model {
	canvas := charts.NewCanvas(0, charts.ShareBarHeight)
	m := Model{
		source:  source,
		refresh: refresh,
		canvas:  canvas,
		chart:   piechart.NewChart(charts.Terminal{BarOnly: true}, canvas),
		legend:  tables.NewLegend(nil, LegendMinRows),
		state:   StateLoading,
		spinner: NewLoadingSpinner(),
	}
	canvas.Resize(m.chartWidth(), charts.ShareBarHeight)
	return m
}

// Chart returns the hosted chart.
func (m Model) Chart() *piechart.Chart {
	return m.chart
}

// State returns the current load state.
func (m Model) State() State {
	return m.state
}

// Err returns the last load or update error.
func (m Model) Err() error {
	return m.err
}

func (m Model) chartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}

func (m Model) legendRows() int {
	if m.height <= 0 {
		return LegendMaxRows
	}
	return min(max(m.height-ChromeHeight, LegendMinRows), LegendMaxRows)
}
