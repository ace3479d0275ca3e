package tui

import (
	"log/slog"
	"time"

	"github.com/akasprzok/pie/internal/charts"
	"github.com/akasprzok/pie/internal/tables"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.load(),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case dataMsg:
		return m.handleData(msg)

	case refreshMsg:
		if msg.generation != m.generation || m.state == StateLoading {
			return m, nil
		}
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, m.load())

	case spinner.TickMsg:
		if m.state == StateLoading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.canvas.Resize(m.chartWidth(), charts.ShareBarHeight)

	if m.chart.Mounted() {
		if err := m.chart.Update(m.chart.Input()); err != nil {
			m.state = StateError
			m.err = err
			return m, nil
		}
		m.legend = tables.NewLegend(m.chart.Config(), m.legendRows())
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.legend.Filtering() {
		var cmd tea.Cmd
		m.legend, cmd = m.legend.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		if m.state == StateLoading {
			return m, nil
		}
		m.state = StateLoading
		return m, tea.Batch(m.spinner.Tick, m.load())
	}

	var cmd tea.Cmd
	m.legend, cmd = m.legend.Update(msg)
	return m, cmd
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.chart.Unmount()
	m.quitting = true
	return m, tea.Quit
}

func (m Model) load() tea.Cmd {
	source := m.source
	return func() tea.Msg {
		in, warnings, err := source.Load()
		return dataMsg{
			input:    in,
			warnings: warnings,
			err:      err,
			loadedAt: time.Now(),
		}
	}
}

func (m Model) handleData(msg dataMsg) (tea.Model, tea.Cmd) {
	m.generation++
	m.warnings = msg.warnings

	err := msg.err
	if err == nil {
		err = m.chart.Update(msg.input)
	}

	if err != nil {
		slog.Warn("loading chart data failed", "source", m.source.Describe(), "error", err)
		m.state = StateError
		m.err = err
	} else {
		m.state = StateReady
		m.err = nil
		m.loadedAt = msg.loadedAt
		m.legend = tables.NewLegend(m.chart.Config(), m.legendRows())
	}

	return m, m.scheduleRefresh()
}

func (m Model) scheduleRefresh() tea.Cmd {
	if m.refresh <= 0 {
		return nil
	}
	generation := m.generation
	return tea.Tick(m.refresh, func(time.Time) tea.Msg {
		return refreshMsg{generation: generation}
	})
}
