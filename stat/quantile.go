package stat

import "math"

// Quantile estimates the p-quantile of sorted, which must be sorted
// ascending and non-empty. It uses the linear interpolation of
// Hyndman and Fan's definition 7: with h = p*(n-1) the result lies
// between sorted[floor(h)] and sorted[ceil(h)].
//
// p is clamped to [0, 1].
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[n-1]
	}

	h := p * float64(n-1)
	lo := int(math.Floor(h))
	hi := int(math.Ceil(h))
	a, b := sorted[lo], sorted[hi]
	if lo == hi || a == b {
		return a
	}

	// Weighted sum: b-a overflows for large values of opposite sign.
	f := h - float64(lo)
	q := (1-f)*a + f*b
	// Rounding must not push q out of [a, b].
	return math.Min(math.Max(q, a), b)
}
