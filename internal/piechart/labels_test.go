package piechart

import (
	"math"
	"testing"
)

func TestLegendText(t *testing.T) {
	tests := []struct {
		label string
		value float64
		want  string
	}{
		{"Food", 12.5, "Food: $12.50"},
		{"Rent", 900, "Rent: $900.00"},
		{"Coffee", 3.456, "Coffee: $3.46"},
		{"Zero", 0, "Zero: $0.00"},
		{"Unknown", math.NaN(), "Unknown: $NaN"},
		{"Tip", 0.125, "Tip: $0.13"},
		{"Penny", 1.005, "Penny: $1.00"},
		{"Refund", -2.5, "Refund: $-2.50"},
		{"Unbounded", math.Inf(1), "Unbounded: $Infinity"},
		{"Overdrawn", math.Inf(-1), "Overdrawn: $-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := LegendText(tt.label, tt.value); got != tt.want {
				t.Errorf("LegendText(%q, %v) = %q, want %q", tt.label, tt.value, got, tt.want)
			}
		})
	}
}

func TestGenerateLegend(t *testing.T) {
	labels := []string{"Food", "X"}
	data := []float64{12.5, math.NaN()}
	colors := Colors(2)

	items := GenerateLegend(labels, data, colors)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}

	t.Run("text and styling", func(t *testing.T) {
		item := items[0]
		if item.Text != "Food: $12.50" {
			t.Errorf("Text = %q, want %q", item.Text, "Food: $12.50")
		}
		if item.FontColor != LegendFontColor {
			t.Errorf("FontColor = %q, want %q", item.FontColor, LegendFontColor)
		}
		if item.FillStyle != Palette[0] || item.StrokeStyle != Palette[0] {
			t.Errorf("FillStyle/StrokeStyle = %q/%q, want %q", item.FillStyle, item.StrokeStyle, Palette[0])
		}
		if item.LineWidth != 1 {
			t.Errorf("LineWidth = %v, want 1", item.LineWidth)
		}
		if item.Hidden {
			t.Error("Hidden = true for a numeric value")
		}
	})

	t.Run("NaN value is hidden", func(t *testing.T) {
		if !items[1].Hidden {
			t.Error("Hidden = false for NaN value")
		}
		if items[1].Index != 1 {
			t.Errorf("Index = %d, want 1", items[1].Index)
		}
	})
}

func TestGenerateLegendShortData(t *testing.T) {
	items := GenerateLegend([]string{"A", "B"}, []float64{1}, nil)
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	if !items[1].Hidden {
		t.Error("entry without a value should be hidden")
	}
	if items[1].FillStyle != "" {
		t.Errorf("FillStyle = %q, want empty", items[1].FillStyle)
	}
}

func TestTooltipLabel(t *testing.T) {
	data := []float64{25, 75}

	tests := []struct {
		label string
		raw   float64
		want  string
	}{
		{"A", 25, "A: 25.00%"},
		{"B", 75, "B: 75.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := TooltipLabel(tt.label, tt.raw, data); got != tt.want {
				t.Errorf("TooltipLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTooltipLabelRoundsHalfUp(t *testing.T) {
	if got := TooltipLabel("A", 1, []float64{1, 799}); got != "A: 0.13%" {
		t.Errorf("TooltipLabel() = %q, want %q", got, "A: 0.13%")
	}
}

func TestFormatFixed2(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"exact tie rounds up", 0.125, "0.13"},
		{"stored below tie rounds down", 1.005, "1.00"},
		{"stored below tie rounds down again", 2.675, "2.67"},
		{"stored above tie rounds up", 0.005, "0.01"},
		{"negative tie rounds away from zero", -0.125, "-0.13"},
		{"tiny negative keeps sign", -0.001, "-0.00"},
		{"negative zero", math.Copysign(0, -1), "0.00"},
		{"pads zeros", 0.5, "0.50"},
		{"large", 1234.5678, "1234.57"},
		{"exponent form", 1e21, "1e+21"},
		{"NaN", math.NaN(), "NaN"},
		{"positive infinity", math.Inf(1), "Infinity"},
		{"negative infinity", math.Inf(-1), "-Infinity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatFixed2(tt.in); got != tt.want {
				t.Errorf("FormatFixed2(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTooltipLabelRecomputesSum(t *testing.T) {
	data := []float64{1, 1}
	if got := TooltipLabel("A", 1, data); got != "A: 50.00%" {
		t.Fatalf("TooltipLabel() = %q, want %q", got, "A: 50.00%")
	}
	data[1] = 3
	if got := TooltipLabel("A", 1, data); got != "A: 25.00%" {
		t.Errorf("TooltipLabel() after change = %q, want %q", got, "A: 25.00%")
	}
}

func TestTooltips(t *testing.T) {
	tips := Tooltips(Input{Labels: []string{"A", "B", "C"}, Data: []float64{1, 1, 2}})
	want := []string{"A: 25.00%", "B: 25.00%", "C: 50.00%"}
	if len(tips) != len(want) {
		t.Fatalf("len(tips) = %d, want %d", len(tips), len(want))
	}
	for i := range want {
		if tips[i] != want[i] {
			t.Errorf("tips[%d] = %q, want %q", i, tips[i], want[i])
		}
	}
}
