package chart

import (
	"gonum.org/v1/plot/vg"
)

const tickLength = vg.Length(6)

// bandAxis draws a bottom axis at height y with one labeled tick in the
// middle of every band.
func bandAxis(s BandScale, y vg.Length, sty style) []Grob {
	grobs := []Grob{axisLine(s.RangeMin, y, s.RangeMax, y, sty)}
	bw := s.Bandwidth()
	for _, c := range s.Domain {
		x, _ := s.Pos(c)
		x += bw / 2
		grobs = append(grobs,
			axisLine(x, y, x, y-tickLength, sty),
			GrobText{
				x: x, y: y - tickLength - 2 - sty.fontSize/2,
				text:  c,
				align: AlignMiddle,
				color: sty.foreground,
			})
	}
	return grobs
}

// timeAxis draws a bottom axis at height y. Labels are rotated by
// -25 degrees and end at their tick.
func timeAxis(s TimeScale, y vg.Length, sty style) []Grob {
	grobs := []Grob{axisLine(s.RangeMin, y, s.RangeMax, y, sty)}
	for _, t := range s.Ticks() {
		x := s.linear().Map(t.Value)
		grobs = append(grobs,
			axisLine(x, y, x, y-tickLength, sty),
			GrobText{
				x: x, y: y - tickLength - 2 - sty.fontSize/2,
				text:  t.Label,
				align: AlignEnd,
				angle: 25,
				color: sty.foreground,
			})
	}
	return grobs
}

// linearAxis draws a left axis at x with labels left of the ticks.
func linearAxis(s LinearScale, x vg.Length, sty style) []Grob {
	grobs := []Grob{axisLine(x, s.RangeMin, x, s.RangeMax, sty)}
	for _, t := range s.Ticks() {
		y := s.Map(t.Value)
		grobs = append(grobs,
			axisLine(x, y, x-tickLength, y, sty),
			GrobText{
				x: x - tickLength - 3, y: y,
				text:  t.Label,
				align: AlignEnd,
				color: sty.foreground,
			})
	}
	return grobs
}

func axisLine(x0, y0, x1, y1 vg.Length, sty style) GrobLine {
	return GrobLine{x0: x0, y0: y0, x1: x1, y1: y1, width: 1, color: sty.foreground}
}
