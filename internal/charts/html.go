package charts

import (
	"bytes"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/akasprzok/pie/internal/piechart"
	echarts "github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// HTML draws the pie as an interactive ECharts page using go-echarts. Legend
// and tooltip text come from the chart config's generators.
type HTML struct {
	Title string
	// Script, if set, is injected before </body>.
	Script string
}

type htmlChart struct {
	surface piechart.Surface
}

func (l HTML) New(surface piechart.Surface, cfg *piechart.Config) (piechart.Instance, error) {
	width, height := surface.Size()
	if width <= 0 || height <= 0 {
		width, height = DefaultImageWidth, DefaultImageHeight
	}

	pie := l.pie(cfg, width, height)

	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return nil, fmt.Errorf("rendering html chart: %w", err)
	}
	page := buf.Bytes()
	if l.Script != "" {
		page = bytes.Replace(page, []byte("</body>"), []byte("<script>"+l.Script+"</script>\n</body>"), 1)
	}
	surface.Paint(page)
	return &htmlChart{surface: surface}, nil
}

func (c *htmlChart) Destroy() {
	c.surface.Clear()
}

func (l HTML) pie(cfg *piechart.Config, width, height int) *echarts.Pie {
	legend := cfg.Legend()
	values := cfg.Values()
	colors := cfg.Colors()

	data := make([]opts.PieData, 0, len(legend))
	selected := make(map[string]bool, len(legend))
	tips := make([]string, 0, len(legend))
	for i, item := range legend {
		entry := opts.PieData{Name: item.Text}
		if i < len(values) && !math.IsNaN(values[i]) {
			entry.Value = values[i]
		}
		if i < len(colors) {
			entry.ItemStyle = &opts.ItemStyle{
				Color:       colors[i],
				BorderColor: item.StrokeStyle,
			}
		}
		data = append(data, entry)
		selected[item.Text] = !item.Hidden
		tips = append(tips, cfg.TooltipAt(i))
	}

	title := l.Title
	if title == "" {
		title = "pie"
	}

	pie := echarts.NewPie()
	pie.SetGlobalOptions(
		echarts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Width:     fmt.Sprintf("%dpx", width),
			Height:    fmt.Sprintf("%dpx", height),
		}),
		echarts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(tooltipFunc(tips)),
		}),
		echarts.WithLegendOpts(opts.Legend{
			Show:     opts.Bool(true),
			Orient:   legendOrient(cfg.Options.Plugins.Legend.Position),
			Right:    "0",
			Top:      "middle",
			Selected: selected,
			TextStyle: &opts.TextStyle{
				Color:    cfg.Options.Plugins.Legend.Labels.Color,
				FontSize: cfg.Options.Plugins.Legend.Labels.Font.Size,
			},
		}),
	)
	pie.AddSeries(cfg.Type, data).
		SetSeriesOptions(
			echarts.WithLabelOpts(opts.Label{
				Show: opts.Bool(cfg.Options.Plugins.DataLabels.Display),
			}),
			echarts.WithPieChartOpts(opts.PieChart{
				Radius: []string{"0%", "70%"},
				Center: []string{"35%", "50%"},
			}),
		)
	return pie
}

// tooltipFunc returns an ECharts formatter that looks up precomputed tooltip
// text by slice index. go-echarts embeds the function in JSON, so the text is
// percent-encoded to keep quotes and backslashes out of the source.
func tooltipFunc(tips []string) string {
	encoded := make([]string, len(tips))
	for i, tip := range tips {
		encoded[i] = "'" + url.PathEscape(tip) + "'"
	}
	return fmt.Sprintf("function (params) { var tips = [%s]; return decodeURIComponent(tips[params.dataIndex]); }",
		strings.Join(encoded, ","))
}

func legendOrient(position string) string {
	if position == "top" || position == "bottom" {
		return "horizontal"
	}
	return "vertical"
}
