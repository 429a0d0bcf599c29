// Package stat computes the summary statistics drawn by the charts:
// five-number summaries, Tukey box plots and means.
package stat

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
)

// ErrEmptyInput is returned when there are no observations to summarize.
var ErrEmptyInput = errors.New("stat: empty input")

// InvalidValueError reports a non-finite observation.
type InvalidValueError struct {
	Index int     // Position of the offending value in the input.
	Value float64 // NaN, +Inf or -Inf.
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("stat: invalid value %v at index %d", e.Value, e.Index)
}

// Summary is the five-number summary of a set of observations.
// Min <= Q1 <= Median <= Q3 <= Max holds for every Summary returned
// by Compute.
type Summary struct {
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// IQR is the interquartile range Q3-Q1.
func (s Summary) IQR() float64 { return s.Q3 - s.Q1 }

// Compute returns the five-number summary of values. Quartiles are
// estimated with linear interpolation (R-7). The order of values does
// not matter and values is not modified.
func Compute(values []float64) (Summary, error) {
	sorted, err := sortedCopy(values)
	if err != nil {
		return Summary{}, err
	}
	return summarize(sorted), nil
}

func summarize(sorted []float64) Summary {
	return Summary{
		Min:    sorted[0],
		Q1:     Quantile(sorted, 0.25),
		Median: Quantile(sorted, 0.5),
		Q3:     Quantile(sorted, 0.75),
		Max:    sorted[len(sorted)-1],
	}
}

// sortedCopy validates values and returns them sorted ascending.
func sortedCopy(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if err := checkFinite(values); err != nil {
		return nil, err
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted, nil
}

func checkFinite(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidValueError{Index: i, Value: v}
		}
	}
	return nil
}
