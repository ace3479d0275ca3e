package piechart

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// LegendItem is one generated legend entry.
type LegendItem struct {
	Text        string  `json:"text" yaml:"text"`
	FontColor   string  `json:"fontColor" yaml:"fontColor"`
	FillStyle   string  `json:"fillStyle" yaml:"fillStyle"`
	StrokeStyle string  `json:"strokeStyle" yaml:"strokeStyle"`
	LineWidth   float64 `json:"lineWidth" yaml:"lineWidth"`
	Hidden      bool    `json:"hidden" yaml:"hidden"`
	Index       int     `json:"index" yaml:"index"`
}

// LegendText formats a legend entry as "<label>: $<value>".
func LegendText(label string, value float64) string {
	return fmt.Sprintf("%s: $%s", label, FormatFixed2(value))
}

// fixedLimit is the magnitude from which values print in exponent form.
const fixedLimit = 1e21

// FormatFixed2 prints v with two decimals, rounding the exact binary value
// half away from zero: 0.125 gives "0.13" and 1.005 (stored just below) gives
// "1.00". Non-finite values print as NaN, Infinity and -Infinity.
func FormatFixed2(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= fixedLimit:
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	sign := ""
	if v < 0 {
		sign = "-"
	}

	// cents = floor(|v| * 100 + 1/2), computed exactly.
	r := new(big.Rat).SetFloat64(math.Abs(v))
	r.Mul(r, big.NewRat(100, 1))
	r.Add(r, big.NewRat(1, 2))
	cents := new(big.Int).Quo(r.Num(), r.Denom())

	digits := cents.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}

// GenerateLegend builds one legend entry per label. Entries whose value is NaN are hidden.
// Labels beyond the end of data or colors get a NaN value and no color.
func GenerateLegend(labels []string, data []float64, colors []string) []LegendItem {
	items := make([]LegendItem, 0, len(labels))
	for i, label := range labels {
		value := math.NaN()
		if i < len(data) {
			value = data[i]
		}
		color := ""
		if i < len(colors) {
			color = colors[i]
		}
		items = append(items, LegendItem{
			Text:        LegendText(label, value),
			FontColor:   LegendFontColor,
			FillStyle:   color,
			StrokeStyle: color,
			LineWidth:   1,
			Hidden:      math.IsNaN(value),
			Index:       i,
		})
	}
	return items
}

// Sum adds up all values, NaN propagating as in the chart's own arithmetic.
func Sum(data []float64) float64 {
	var total float64
	for _, v := range data {
		total += v
	}
	return total
}

// Percentage returns raw's share of the total of data, in percent.
// The total is recomputed from data on every call.
func Percentage(raw float64, data []float64) float64 {
	return raw / Sum(data) * 100
}

// TooltipLabel formats a tooltip as "<label>: <share of total>%".
func TooltipLabel(label string, raw float64, data []float64) string {
	return fmt.Sprintf("%s: %s%%", label, FormatFixed2(Percentage(raw, data)))
}

// Tooltips returns the tooltip text of every category in order.
func Tooltips(in Input) []string {
	tips := make([]string, len(in.Labels))
	for i, label := range in.Labels {
		raw := math.NaN()
		if i < len(in.Data) {
			raw = in.Data[i]
		}
		tips[i] = TooltipLabel(label, raw, in.Data)
	}
	return tips
}
