package chart

import (
	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/socialchart/stat"
)

// Geoms turn scaled data into grobs. They know nothing about axes or
// layout; x positions arrive already mapped to canvas coordinates.

// -------------------------------------------------------------------------
// Geom Box

// GeomBox draws a five-number summary as a box plot in the band
// [x, x+width]: a whisker from Min to Max, a box from Q1 to Q3 and a
// thick line at the median.
func GeomBox(s stat.Summary, x, width vg.Length, y LinearScale, sty style) []Grob {
	mid := x + width/2
	return []Grob{
		GrobLine{
			x0: mid, y0: y.Map(s.Min),
			x1: mid, y1: y.Map(s.Max),
			width: sty.boxStroke,
			color: sty.foreground,
		},
		GrobRect{
			xmin: x, ymin: y.Map(s.Q1),
			xmax: x + width, ymax: y.Map(s.Q3),
			fill:   sty.boxFill,
			stroke: sty.foreground,
			width:  sty.boxStroke,
		},
		GrobLine{
			x0: x, y0: y.Map(s.Median),
			x1: x + width, y1: y.Map(s.Median),
			width: sty.medianWidth,
			color: sty.foreground,
		},
	}
}

// -------------------------------------------------------------------------
// Geom Bar

// Bar is one bar of a grouped bar chart.
type Bar struct {
	Group  string  // Category on the outer band scale, e.g. the platform.
	Series string  // Category on the inner band scale, e.g. the post type.
	Value  float64 // Height of the bar.
}

// GeomBar draws bars from the baseline value 0 up (or down) to each
// bar's value. Bars whose group or series is unknown to the scales are
// skipped.
func GeomBar(bars []Bar, outer, inner BandScale, y LinearScale, colors map[string]int, sty style) []Grob {
	grobs := make([]Grob, 0, len(bars))
	width := inner.Bandwidth()
	for _, b := range bars {
		x0, ok := outer.Pos(b.Group)
		if !ok {
			continue
		}
		x1, ok := inner.Pos(b.Series)
		if !ok {
			continue
		}
		ymin, ymax := y.Map(0), y.Map(b.Value)
		if ymin > ymax {
			ymin, ymax = ymax, ymin
		}
		grobs = append(grobs, GrobRect{
			xmin: x0 + x1, ymin: ymin,
			xmax: x0 + x1 + width, ymax: ymax,
			fill: sty.palette[colors[b.Series]%len(sty.palette)],
		})
	}
	return grobs
}

// -------------------------------------------------------------------------
// Geom Line and Point

// GeomLine connects points in order. With smooth set the line is a
// natural cubic spline through the points.
func GeomLine(points []vg.Point, sty style) []Grob {
	if len(points) < 2 {
		return nil
	}
	path := points
	if sty.smooth {
		path = naturalCurve(points, 16)
	}
	return []Grob{GrobPath{points: path, width: sty.lineWidth, color: sty.lineColor}}
}

// GeomPoint draws a dot at every point.
func GeomPoint(points []vg.Point, sty style) []Grob {
	grobs := make([]Grob, len(points))
	for i, p := range points {
		grobs[i] = GrobPoint{x: p.X, y: p.Y, radius: sty.pointRadius, color: sty.lineColor}
	}
	return grobs
}

// naturalCurve interpolates x and y separately over the point index
// with natural cubic splines and samples steps segments between each
// pair of points. The curve passes through every input point.
func naturalCurve(points []vg.Point, steps int) []vg.Point {
	n := len(points)
	if n < 3 {
		return points
	}
	ts := make([]float64, n)
	xs := make([]float64, n)
	ys := make([]float64, n)
	for i, p := range points {
		ts[i], xs[i], ys[i] = float64(i), float64(p.X), float64(p.Y)
	}
	var sx, sy interp.NaturalCubic
	if sx.Fit(ts, xs) != nil || sy.Fit(ts, ys) != nil {
		return points
	}

	curve := make([]vg.Point, 0, (n-1)*steps+1)
	for i := 0; i < n-1; i++ {
		curve = append(curve, points[i])
		for k := 1; k < steps; k++ {
			t := float64(i) + float64(k)/float64(steps)
			curve = append(curve, vg.Point{X: vg.Length(sx.Predict(t)), Y: vg.Length(sy.Predict(t))})
		}
	}
	return append(curve, points[n-1])
}
