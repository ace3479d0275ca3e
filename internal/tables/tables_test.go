package tables

import (
	"math"
	"strings"
	"testing"

	"github.com/akasprzok/pie/internal/piechart"
	tea "github.com/charmbracelet/bubbletea"
)

func legendFor(t *testing.T, labels []string, data []float64) Legend {
	t.Helper()
	cfg := piechart.NewConfig(piechart.Input{Labels: labels, Data: data}, piechart.Colors(len(labels)))
	return NewLegend(cfg, 10)
}

func TestNewLegend(t *testing.T) {
	t.Run("nil config creates empty table", func(t *testing.T) {
		l := NewLegend(nil, 10)
		if l.Len() != 0 {
			t.Errorf("Len() = %d, want 0", l.Len())
		}
		if got := l.Highlighted(); got != -1 {
			t.Errorf("Highlighted() = %d, want -1", got)
		}
	})

	t.Run("rows carry legend and share", func(t *testing.T) {
		l := legendFor(t, []string{"A", "B"}, []float64{25, 75})
		if l.Len() != 2 {
			t.Fatalf("Len() = %d, want 2", l.Len())
		}
		view := l.View()
		for _, want := range []string{"A: $25.00", "B: $75.00", "25.00%", "75.00%"} {
			if !strings.Contains(view, want) {
				t.Errorf("View() missing %q:\n%s", want, view)
			}
		}
	})

	t.Run("NaN rows are marked hidden", func(t *testing.T) {
		l := legendFor(t, []string{"X", "Y"}, []float64{math.NaN(), 4})
		if !strings.Contains(l.View(), hiddenShare) {
			t.Errorf("View() does not mark the NaN row hidden:\n%s", l.View())
		}
	})
}

func TestLegendNavigation(t *testing.T) {
	l := legendFor(t, []string{"A", "B", "C"}, []float64{1, 2, 3})

	if got := l.Highlighted(); got != 0 {
		t.Fatalf("Highlighted() = %d, want 0", got)
	}

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	if got := l.Highlighted(); got != 1 {
		t.Errorf("after j Highlighted() = %d, want 1", got)
	}

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	if got := l.Highlighted(); got != 2 {
		t.Errorf("after down Highlighted() = %d, want 2", got)
	}

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	if got := l.Highlighted(); got != 1 {
		t.Errorf("after k Highlighted() = %d, want 1", got)
	}
}

func TestLegendFilter(t *testing.T) {
	l := legendFor(t, []string{"Food", "Rent"}, []float64{1, 2})

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !l.Filtering() {
		t.Fatal("Filtering() = false after /")
	}

	for _, r := range "Rent" {
		l, _ = l.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if l.Filtering() {
		t.Error("Filtering() = true after enter")
	}

	if got := l.Highlighted(); got != 1 {
		t.Errorf("Highlighted() = %d, want 1 (Rent)", got)
	}
	if strings.Contains(l.View(), "Food") {
		t.Errorf("View() still shows Food after filtering:\n%s", l.View())
	}
}

func TestShareText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"A: 25.00%", "25.00%"},
		{"a: b: 1.00%", "1.00%"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := shareText(tt.in); got != tt.want {
			t.Errorf("shareText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
