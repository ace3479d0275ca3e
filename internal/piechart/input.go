package piechart

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// ErrLengthMismatch is returned when labels and data are not paired one to one.
var ErrLengthMismatch = errors.New("labels and data differ in length")

// Input is an ordered set of categories: Labels[i] is paired with Data[i].
// A NaN value keeps its category but hides its legend entry.
type Input struct {
	Labels []string  `json:"labels" yaml:"labels"`
	Data   []float64 `json:"data" yaml:"data"`
}

// Validate checks that every label has a value.
func (in Input) Validate() error {
	if len(in.Labels) != len(in.Data) {
		return fmt.Errorf("%w: %d labels, %d values", ErrLengthMismatch, len(in.Labels), len(in.Data))
	}
	return nil
}

// Len returns the number of categories.
func (in Input) Len() int {
	return len(in.Labels)
}

// Clone returns a deep copy so later changes by the caller do not leak into a mounted chart.
func (in Input) Clone() Input {
	return Input{
		Labels: slices.Clone(in.Labels),
		Data:   slices.Clone(in.Data),
	}
}

// Equal reports whether two inputs hold the same categories. NaN equals NaN here.
func (in Input) Equal(other Input) bool {
	if !slices.Equal(in.Labels, other.Labels) || len(in.Data) != len(other.Data) {
		return false
	}
	for i, v := range in.Data {
		w := other.Data[i]
		if math.IsNaN(v) && math.IsNaN(w) {
			continue
		}
		if v != w {
			return false
		}
	}
	return true
}
