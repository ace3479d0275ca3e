package prometheus

import (
	"github.com/akasprzok/pie/internal/piechart"
	"github.com/prometheus/common/model"
)

// VectorInput turns each sample into one pie category. The category label is
// the value of labelName on the sample's metric, or the full metric string
// when labelName is empty or missing.
func VectorInput(vector model.Vector, labelName string) piechart.Input {
	in := piechart.Input{
		Labels: make([]string, 0, len(vector)),
		Data:   make([]float64, 0, len(vector)),
	}
	for _, sample := range vector {
		in.Labels = append(in.Labels, SampleLabel(sample, labelName))
		in.Data = append(in.Data, float64(sample.Value))
	}
	return in
}

// SampleLabel names a sample for display.
func SampleLabel(sample *model.Sample, labelName string) string {
	if labelName != "" {
		if v, ok := sample.Metric[model.LabelName(labelName)]; ok && v != "" {
			return string(v)
		}
	}
	return sample.Metric.String()
}
