package chart

import (
	"math"
	"strconv"
)

// RoundHalfEven rounds x to places decimals, ties to even, the way
// numpy and pandas round.
func RoundHalfEven(x float64, places int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	p := math.Pow(10, float64(places))
	return math.RoundToEven(x*p) / p
}

// FormatFloat renders x with the fewest digits needed.
func FormatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
