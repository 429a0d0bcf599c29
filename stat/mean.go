package stat

import (
	gonumstat "gonum.org/v1/gonum/stat"
)

// Mean returns the arithmetic mean of values. It fails like Compute on
// empty input or non-finite values.
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyInput
	}
	if err := checkFinite(values); err != nil {
		return 0, err
	}
	return gonumstat.Mean(values, nil), nil
}
