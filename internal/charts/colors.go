package charts

import (
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/charmbracelet/lipgloss"
)

// LegendColor is the color of legend entry text in the terminal.
var LegendColor = lipgloss.Color(piechart.LegendFontColor)

// SliceColor returns the terminal color for a given category index, cycling through the palette.
func SliceColor(index int) lipgloss.Color {
	return lipgloss.Color(piechart.PaletteColor(index))
}

// SliceStyle returns a lipgloss style with the foreground color for the given category index.
func SliceStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SliceColor(index))
}

// colorStyle returns a foreground style for a hex color, falling back to the palette.
func colorStyle(color string, index int) lipgloss.Style {
	if color == "" {
		return SliceStyle(index)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
