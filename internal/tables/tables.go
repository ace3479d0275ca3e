// Package tables renders the chart legend as a navigable bubble-table.
package tables

import (
	"strings"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/evertras/bubble-table/table"
)

const (
	columnColor   = "color"
	columnLegend  = "legend"
	columnShare   = "share"
	columnIndex   = "index"
	hiddenShare   = "hidden"
	minLegendCell = 12
	minShareCell  = 10
)

// Legend is a filterable table with one row per legend entry.
type Legend struct {
	table           table.Model
	filterTextInput textinput.Model
	rows            int
}

// NewLegend builds the legend table for cfg. A nil cfg yields an empty table.
func NewLegend(cfg *piechart.Config, pageSize int) Legend {
	var items []piechart.LegendItem
	if cfg != nil {
		items = cfg.Legend()
	}

	longestLegend := 0
	longestShare := 0
	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		share := hiddenShare
		if !item.Hidden {
			share = shareText(cfg.TooltipAt(item.Index))
		}
		longestLegend = max(longestLegend, len(item.Text))
		longestShare = max(longestShare, len(share))

		marker := lipgloss.NewStyle().Foreground(lipgloss.Color(item.FillStyle)).Render(string(runes.FullBlock))
		row := table.NewRow(table.RowData{
			columnColor:  marker,
			columnLegend: item.Text,
			columnShare:  share,
			columnIndex:  item.Index,
		})
		if item.Hidden {
			row = row.WithStyle(lipgloss.NewStyle().Faint(true))
		}
		rows = append(rows, row)
	}

	columns := []table.Column{
		table.NewColumn(columnColor, "", 3),
		table.NewColumn(columnLegend, "Legend", max(longestLegend+1, minLegendCell)).WithFiltered(true),
		table.NewColumn(columnShare, "Share", max(longestShare+1, minShareCell)),
	}

	return Legend{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(len(rows) > pageSize).
			WithPageSize(max(pageSize, 1)).
			WithRows(rows),
		filterTextInput: textinput.New(),
		rows:            len(rows),
	}
}

// shareText strips the label from a tooltip, leaving only the percentage.
func shareText(tooltip string) string {
	if i := strings.LastIndex(tooltip, ": "); i >= 0 {
		return tooltip[i+2:]
	}
	return tooltip
}

// Len is the number of legend rows, before filtering.
func (l Legend) Len() int {
	return l.rows
}

// Filtering reports whether the filter input has focus.
func (l Legend) Filtering() bool {
	return l.filterTextInput.Focused()
}

// Highlighted returns the data index of the highlighted row, or -1.
func (l Legend) Highlighted() int {
	row := l.table.HighlightedRow()
	if row.Data == nil {
		return -1
	}
	index, ok := row.Data[columnIndex].(int)
	if !ok {
		return -1
	}
	return index
}

// Update handles navigation and filter keys. Quitting is left to the host.
func (l Legend) Update(msg tea.Msg) (Legend, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		l.table, cmd = l.table.Update(msg)
		return l, cmd
	}

	if l.filterTextInput.Focused() {
		switch keyMsg.String() {
		case "enter", "esc":
			l.filterTextInput.Blur()
		default:
			l.filterTextInput, _ = l.filterTextInput.Update(keyMsg)
		}
		l.table = l.table.WithFilterInput(l.filterTextInput)
		return l, nil
	}

	var cmd tea.Cmd
	switch keyMsg.String() {
	case "/":
		l.filterTextInput.Focus()
	case "j":
		l.table, cmd = l.table.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		l.table, cmd = l.table.Update(tea.KeyMsg{Type: tea.KeyUp})
	default:
		l.table, cmd = l.table.Update(keyMsg)
	}
	return l, cmd
}

func (l Legend) View() string {
	return l.table.View()
}
