package chart

import (
	"math"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

// Scales map data values to canvas positions. Canvas coordinates grow
// to the right and upwards, so a y scale has RangeMin at the bottom.

// -------------------------------------------------------------------------
// Linear Scale

// LinearScale maps the continuous domain [DomainMin, DomainMax] linearly
// onto [RangeMin, RangeMax]. Values outside the domain are not clamped.
type LinearScale struct {
	DomainMin, DomainMax float64
	RangeMin, RangeMax   vg.Length
}

// Map returns the canvas position of x. A degenerate domain maps every
// value to the middle of the range.
func (s LinearScale) Map(x float64) vg.Length {
	d := s.DomainMax - s.DomainMin
	if d == 0 || math.IsNaN(d) {
		return (s.RangeMin + s.RangeMax) / 2
	}
	t := (x - s.DomainMin) / d
	return s.RangeMin + vg.Length(t)*(s.RangeMax-s.RangeMin)
}

// Ticks returns the major ticks inside the domain.
func (s LinearScale) Ticks() []plot.Tick {
	min, max := s.DomainMin, s.DomainMax
	if min == max {
		min, max = min-1, max+1
	}
	return majorTicks(plot.DefaultTicks{}.Ticks(min, max), min, max)
}

// -------------------------------------------------------------------------
// Time Scale

// TimeScale is a linear scale over time.
type TimeScale struct {
	Min, Max           time.Time
	RangeMin, RangeMax vg.Length

	// Format is the time layout of tick labels, default "01/02".
	Format string
}

func (s TimeScale) linear() LinearScale {
	return LinearScale{
		DomainMin: unixSeconds(s.Min),
		DomainMax: unixSeconds(s.Max),
		RangeMin:  s.RangeMin,
		RangeMax:  s.RangeMax,
	}
}

// Map returns the canvas position of t.
func (s TimeScale) Map(t time.Time) vg.Length {
	return s.linear().Map(unixSeconds(t))
}

// Ticks returns the major ticks inside the domain, labeled with Format.
func (s TimeScale) Ticks() []plot.Tick {
	format := s.Format
	if format == "" {
		format = "01/02"
	}
	min, max := unixSeconds(s.Min), unixSeconds(s.Max)
	if min == max {
		min, max = min-12*3600, max+12*3600
	}
	ticker := plot.TimeTicks{
		Ticker: dayTicks{},
		Format: format,
		Time:   func(t float64) time.Time { return time.Unix(int64(t), 0).In(s.Min.Location()) },
	}
	return majorTicks(ticker.Ticks(min, max), min, max)
}

func unixSeconds(t time.Time) float64 {
	return float64(t.Unix())
}

// dayTicks places ticks on whole days (UTC). Ranges longer than twelve
// days get multi-day steps.
type dayTicks struct{}

const secondsPerDay = 24 * 3600

func (dayTicks) Ticks(min, max float64) []plot.Tick {
	days := (max - min) / secondsPerDay
	if days > 12 {
		step := math.Ceil(days/8) * secondsPerDay
		return stepTicks(min, max, step)
	}
	return stepTicks(min, max, secondsPerDay)
}

func stepTicks(min, max, step float64) []plot.Tick {
	var ticks []plot.Tick
	for v := math.Ceil(min/step) * step; v <= max; v += step {
		ticks = append(ticks, plot.Tick{Value: v, Label: "major"})
	}
	return ticks
}

// majorTicks drops minor ticks and ticks outside [min, max].
func majorTicks(ticks []plot.Tick, min, max float64) []plot.Tick {
	var major []plot.Tick
	for _, t := range ticks {
		if t.IsMinor() || t.Value < min || t.Value > max {
			continue
		}
		major = append(major, t)
	}
	return major
}

// -------------------------------------------------------------------------
// Band Scale

// BandScale maps categories to equally wide bands, like d3's scaleBand.
// Padding values are fractions of the step between bands.
type BandScale struct {
	Domain             []string
	RangeMin, RangeMax vg.Length
	PaddingInner       float64
	PaddingOuter       float64
}

// Step is the distance between the starts of neighbouring bands.
func (s BandScale) Step() vg.Length {
	n := float64(len(s.Domain))
	return (s.RangeMax - s.RangeMin) / vg.Length(math.Max(1, n-s.PaddingInner+2*s.PaddingOuter))
}

// Bandwidth is the width of each band.
func (s BandScale) Bandwidth() vg.Length {
	return s.Step() * vg.Length(1-s.PaddingInner)
}

// Pos returns the start of the band of category c. It reports false
// for categories not in the domain.
func (s BandScale) Pos(c string) (vg.Length, bool) {
	for i, d := range s.Domain {
		if d == c {
			step := s.Step()
			n := float64(len(s.Domain))
			// Centre the bands: the unused space splits evenly.
			start := s.RangeMin + (s.RangeMax-s.RangeMin-step*vg.Length(n-s.PaddingInner))/2
			return start + step*vg.Length(i), true
		}
	}
	return 0, false
}
