package stat

// DefaultCoef is the fence coefficient used by ComputeBoxplot when
// none is given.
const DefaultCoef = 1.5

// Boxplot is a Tukey box plot: the five-number summary plus whiskers
// which end at the most extreme observations inside the fences.
type Boxplot struct {
	Summary

	LowFence, HighFence     float64
	LowWhisker, HighWhisker float64

	// Outliers are the observations outside the fences, ascending.
	Outliers []float64
}

// ComputeBoxplot computes the box plot of values. The fences are placed
// coef interquartile ranges below Q1 and above Q3; a coef <= 0 selects
// DefaultCoef. Errors are those of Compute.
func ComputeBoxplot(values []float64, coef float64) (Boxplot, error) {
	sorted, err := sortedCopy(values)
	if err != nil {
		return Boxplot{}, err
	}
	if coef <= 0 {
		coef = DefaultCoef
	}

	b := Boxplot{Summary: summarize(sorted)}
	iqr := b.IQR()
	b.LowFence, b.HighFence = b.Q1-coef*iqr, b.Q3+coef*iqr

	b.LowWhisker, b.HighWhisker = b.Q1, b.Q3
	for _, y := range sorted {
		if y < b.LowFence || y > b.HighFence {
			b.Outliers = append(b.Outliers, y)
			continue
		}
		if y < b.LowWhisker {
			b.LowWhisker = y
		}
		if y > b.HighWhisker {
			b.HighWhisker = y
		}
	}
	return b, nil
}
