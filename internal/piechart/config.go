package piechart

import "math"

// Static styling handed to every chart library.
const (
	ChartType        = "pie"
	LegendPosition   = "right"
	LegendFontFamily = "Karla"
	LegendFontSize   = 25
	// LegendTextColor is the default color of legend text.
	LegendTextColor = "green"
	// LegendFontColor is the color of each generated legend entry.
	LegendFontColor = "#059669"
	BorderWidth     = 1
)

// Config is the configuration object a Library constructs an instance from.
type Config struct {
	Type    string
	Data    Data
	Options Options
}

type Data struct {
	Labels   []string
	Datasets []Dataset
}

type Dataset struct {
	Data            []float64
	BackgroundColor []string
	BorderColor     []string
	BorderWidth     float64
}

type Options struct {
	Responsive bool
	Plugins    Plugins
}

type Plugins struct {
	Legend     Legend
	Tooltip    Tooltip
	DataLabels DataLabels
}

type Legend struct {
	Position string
	Labels   LegendLabels
}

type Font struct {
	Family string
	Size   int
}

type LegendLabels struct {
	Font  Font
	Color string
	// GenerateLabels is called by the library with the chart's own config.
	GenerateLabels func(cfg *Config) []LegendItem
}

// TooltipContext describes the slice a tooltip is requested for.
type TooltipContext struct {
	Label     string
	Raw       float64
	DataIndex int
}

type Tooltip struct {
	Label func(ctx TooltipContext) string
}

type DataLabels struct {
	Display bool
}

// NewConfig maps an input to a pie configuration with the given slice colors.
// The legend and tooltip generators close over the input's data.
func NewConfig(in Input, colors []string) *Config {
	data := in.Data
	return &Config{
		Type: ChartType,
		Data: Data{
			Labels: in.Labels,
			Datasets: []Dataset{
				{
					Data:            data,
					BackgroundColor: colors,
					BorderColor:     colors,
					BorderWidth:     BorderWidth,
				},
			},
		},
		Options: Options{
			Responsive: true,
			Plugins: Plugins{
				Legend: Legend{
					Position: LegendPosition,
					Labels: LegendLabels{
						Font:  Font{Family: LegendFontFamily, Size: LegendFontSize},
						Color: LegendTextColor,
						GenerateLabels: func(cfg *Config) []LegendItem {
							var values []float64
							if len(cfg.Data.Datasets) > 0 {
								values = cfg.Data.Datasets[0].Data
							}
							items := GenerateLegend(cfg.Data.Labels, data, colors)
							// Visibility follows the chart's dataset, text follows the input.
							for i := range items {
								items[i].Hidden = i >= len(values) || math.IsNaN(values[i])
							}
							return items
						},
					},
				},
				Tooltip: Tooltip{
					Label: func(ctx TooltipContext) string {
						return TooltipLabel(ctx.Label, ctx.Raw, data)
					},
				},
				DataLabels: DataLabels{Display: false},
			},
		},
	}
}

// Legend runs the legend generator against the config itself.
func (c *Config) Legend() []LegendItem {
	if c.Options.Plugins.Legend.Labels.GenerateLabels == nil {
		return nil
	}
	return c.Options.Plugins.Legend.Labels.GenerateLabels(c)
}

// TooltipAt runs the tooltip generator for the slice at index.
func (c *Config) TooltipAt(index int) string {
	if c.Options.Plugins.Tooltip.Label == nil || index < 0 || index >= len(c.Data.Labels) {
		return ""
	}
	ctx := TooltipContext{Label: c.Data.Labels[index], Raw: math.NaN(), DataIndex: index}
	if values := c.Values(); index < len(values) {
		ctx.Raw = values[index]
	}
	return c.Options.Plugins.Tooltip.Label(ctx)
}

// Values returns the first dataset's values.
func (c *Config) Values() []float64 {
	if len(c.Data.Datasets) == 0 {
		return nil
	}
	return c.Data.Datasets[0].Data
}

// Colors returns the first dataset's background colors.
func (c *Config) Colors() []string {
	if len(c.Data.Datasets) == 0 {
		return nil
	}
	return c.Data.Datasets[0].BackgroundColor
}
