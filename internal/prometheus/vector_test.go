package prometheus

import (
	"testing"

	"github.com/prometheus/common/model"
)

func TestVectorInput(t *testing.T) {
	vector := model.Vector{
		&model.Sample{
			Metric: model.Metric{"__name__": "spend_dollars", "category": "Food"},
			Value:  12.5,
		},
		&model.Sample{
			Metric: model.Metric{"__name__": "spend_dollars", "category": "Rent"},
			Value:  900,
		},
		&model.Sample{
			Metric: model.Metric{"__name__": "spend_dollars"},
			Value:  3,
		},
	}

	t.Run("by label", func(t *testing.T) {
		in := VectorInput(vector, "category")
		if err := in.Validate(); err != nil {
			t.Fatalf("Validate() error = %v", err)
		}
		want := []string{"Food", "Rent", "spend_dollars"}
		for i, label := range want {
			if in.Labels[i] != label {
				t.Errorf("Labels[%d] = %q, want %q", i, in.Labels[i], label)
			}
		}
		if in.Data[0] != 12.5 || in.Data[1] != 900 || in.Data[2] != 3 {
			t.Errorf("Data = %v, want [12.5 900 3]", in.Data)
		}
	})

	t.Run("metric string without label", func(t *testing.T) {
		in := VectorInput(vector[:1], "")
		if in.Labels[0] != vector[0].Metric.String() {
			t.Errorf("Labels[0] = %q, want %q", in.Labels[0], vector[0].Metric.String())
		}
	})

	t.Run("empty vector", func(t *testing.T) {
		in := VectorInput(model.Vector{}, "category")
		if in.Len() != 0 {
			t.Errorf("Len() = %d, want 0", in.Len())
		}
	})
}
