package charts

import (
	"fmt"
	"math"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/charmbracelet/lipgloss"
)

var hiddenLegendStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)

// Terminal draws the pie as a stacked share bar with a colored legend using ntcharts.
// Font family and size do not apply to terminal cells and are ignored.
type Terminal struct {
	// BarOnly paints the share bar without the legend, for hosts that draw
	// the legend themselves.
	BarOnly bool
}

type terminalChart struct {
	surface piechart.Surface
}

func (t Terminal) New(surface piechart.Surface, cfg *piechart.Config) (piechart.Instance, error) {
	width, _ := surface.Size()
	if width <= 0 {
		width = DefaultWidth
	}
	view := TerminalView(cfg, width)
	if t.BarOnly {
		view = ShareBar(cfg, max(width, MinShareBarWidth))
	}
	surface.Paint([]byte(view))
	return &terminalChart{surface: surface}, nil
}

func (c *terminalChart) Destroy() {
	c.surface.Clear()
}

// TerminalView renders cfg into at most width terminal columns.
func TerminalView(cfg *piechart.Config, width int) string {
	legend := TerminalLegend(cfg)
	if len(cfg.Data.Labels) == 0 {
		return legend
	}

	barWidth := width
	if cfg.Options.Plugins.Legend.Position == "right" || cfg.Options.Plugins.Legend.Position == "left" {
		barWidth = width - lipgloss.Width(legend) - 2
	}
	barWidth = max(barWidth, MinShareBarWidth)
	bar := ShareBar(cfg, barWidth)

	switch cfg.Options.Plugins.Legend.Position {
	case "right":
		return lipgloss.JoinHorizontal(lipgloss.Center, bar, "  ", legend)
	case "left":
		return lipgloss.JoinHorizontal(lipgloss.Center, legend, "  ", bar)
	case "top":
		return lipgloss.JoinVertical(lipgloss.Left, legend, bar)
	default:
		return lipgloss.JoinVertical(lipgloss.Left, bar, legend)
	}
}

// ShareBar renders every visible slice as one segment of a single stacked bar,
// each segment as long as its share of the total.
func ShareBar(cfg *piechart.Config, width int) string {
	colors := cfg.Colors()
	values := make([]barchart.BarValue, 0, len(cfg.Data.Labels))
	for i, v := range cfg.Values() {
		if math.IsNaN(v) || v <= 0 || i >= len(cfg.Data.Labels) {
			continue
		}
		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		values = append(values, barchart.BarValue{
			Name:  cfg.Data.Labels[i],
			Value: v,
			Style: colorStyle(color, i),
		})
	}
	if len(values) == 0 {
		return ""
	}

	bc := barchart.New(width, ShareBarHeight,
		barchart.WithDataSet([]barchart.BarData{{Values: values}}),
		barchart.WithHorizontalBars())
	bc.Draw()
	return bc.View()
}

// TerminalLegend renders one line per legend entry. Hidden entries are struck through.
func TerminalLegend(cfg *piechart.Config) string {
	items := cfg.Legend()
	lines := make([]string, 0, len(items))
	for _, item := range items {
		marker := colorStyle(item.FillStyle, item.Index).Render(fmt.Sprintf("%c", runes.FullBlock))
		textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(item.FontColor))
		if item.Hidden {
			textStyle = hiddenLegendStyle.Foreground(lipgloss.Color(item.FontColor))
		}
		lines = append(lines, marker+" "+textStyle.Render(item.Text))
	}
	return strings.Join(lines, "\n")
}
