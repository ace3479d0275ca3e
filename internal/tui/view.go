package tui

import (
	"fmt"
	"strings"
	"time"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")
	s.WriteString(m.renderBody())
	s.WriteString("\n")
	s.WriteString(m.renderHelpBar())

	return s.String()
}

func (m Model) renderStatusBar() string {
	status := fmt.Sprintf("  Source: %s   State: %s", m.source.Describe(), m.state)
	if !m.loadedAt.IsZero() {
		status += fmt.Sprintf("   Loaded: %s", m.loadedAt.Format(time.TimeOnly))
	}
	if m.refresh > 0 {
		status += fmt.Sprintf("   Refresh: %s", m.refresh)
	}
	return barStyle.Width(m.width).Render(status)
}

func (m Model) renderBody() string {
	var s strings.Builder

	if m.state == StateLoading {
		s.WriteString(mutedStyle.Render(fmt.Sprintf("%s Loading %s", m.spinner.View(), m.source.Describe())))
		s.WriteString("\n")
	}

	if m.state == StateError && m.err != nil {
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error())
		s.WriteString("\n")
	}

	if len(m.warnings) > 0 {
		s.WriteString(WarningStyle.Render("Warnings:\n"))
		for _, w := range m.warnings {
			s.WriteString(WarningStyle.Render(fmt.Sprintf("  - %s\n", w)))
		}
	}

	if !m.chart.Mounted() {
		if m.state != StateLoading {
			s.WriteString(mutedStyle.Render("No data"))
		}
		return s.String()
	}

	if m.canvas.Empty() {
		s.WriteString(mutedStyle.Render("Nothing to draw: every value is missing or zero"))
	} else {
		s.WriteString(boxStyle.Render(m.canvas.String()))
	}
	s.WriteString("\n")
	s.WriteString(boxStyle.Render(m.legend.View()))
	s.WriteString("\n")
	s.WriteString(m.renderTooltip())

	return s.String()
}

func (m Model) renderTooltip() string {
	cfg := m.chart.Config()
	index := m.legend.Highlighted()
	if cfg == nil || index < 0 {
		return ""
	}
	return "  " + TooltipStyle.Render(cfg.TooltipAt(index))
}

func (m Model) renderHelpBar() string {
	help := "  j/k: navigate | /: filter | r: reload | q: quit"
	if m.legend.Filtering() {
		help = "  type to filter | enter/esc: done"
	}
	return barStyle.Width(m.width).Render(help)
}
