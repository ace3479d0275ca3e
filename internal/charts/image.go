package charts

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/akasprzok/pie/internal/piechart"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNoSlices is returned when no slice has a positive value to draw.
var ErrNoSlices = errors.New("pie chart needs at least one positive value")

// Image draws the pie as SVG or PNG using go-chart.
type Image struct {
	// PNG selects raster output; SVG is the default.
	PNG bool
}

type imageChart struct {
	surface piechart.Surface
}

func (l Image) New(surface piechart.Surface, cfg *piechart.Config) (piechart.Instance, error) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		width, height = DefaultImageWidth, DefaultImageHeight
	}

	values := PieValues(cfg)
	if len(values) == 0 {
		return nil, ErrNoSlices
	}

	pie := chart.PieChart{
		Width:  width,
		Height: height,
		Values: values,
	}

	provider := chart.SVG
	if l.PNG {
		provider = chart.PNG
	}

	var buf bytes.Buffer
	if err := pie.Render(provider, &buf); err != nil {
		return nil, fmt.Errorf("rendering pie chart: %w", err)
	}
	surface.Paint(buf.Bytes())
	return &imageChart{surface: surface}, nil
}

func (c *imageChart) Destroy() {
	c.surface.Clear()
}

// PieValues maps the visible slices of cfg to go-chart values labeled with their legend text.
func PieValues(cfg *piechart.Config) []chart.Value {
	legend := cfg.Legend()
	bg := cfg.Colors()
	var border []string
	borderWidth := float64(piechart.BorderWidth)
	if len(cfg.Data.Datasets) > 0 {
		border = cfg.Data.Datasets[0].BorderColor
		borderWidth = cfg.Data.Datasets[0].BorderWidth
	}

	values := make([]chart.Value, 0, len(legend))
	for i, v := range cfg.Values() {
		if math.IsNaN(v) || v <= 0 || i >= len(legend) || legend[i].Hidden {
			continue
		}
		style := chart.Style{
			StrokeWidth: borderWidth,
			FontColor:   hexColor(legend[i].FontColor),
		}
		if i < len(bg) {
			style.FillColor = hexColor(bg[i])
		}
		if i < len(border) {
			style.StrokeColor = hexColor(border[i])
		}
		values = append(values, chart.Value{
			Label: legend[i].Text,
			Value: v,
			Style: style,
		})
	}
	return values
}

// hexColor parses #RRGGBB; anything else is left unset so go-chart applies its defaults.
func hexColor(hex string) drawing.Color {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 && len(hex) != 3 {
		return drawing.Color{}
	}
	return drawing.ColorFromHex(hex)
}
