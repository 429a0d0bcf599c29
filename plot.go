package chart

import (
	"context"
	"io"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/vdobler/socialchart/stat"
)

// ErrNoData is returned when a chart has nothing to draw.
var ErrNoData = errors.New("chart: no data")

// Chart is something Render can draw.
type Chart interface {
	// Size is the size of the whole chart including margins.
	Size() (width, height vg.Length)

	// Grobs returns everything to draw with the given theme, in
	// painting order.
	Grobs(theme Theme) ([]Grob, error)
}

// Margin is the space around the plot area which holds axes and labels.
type Margin struct {
	Top, Right, Bottom, Left vg.Length
}

// Layout is the outer size of a chart and its margins.
type Layout struct {
	Width, Height vg.Length
	Margin        Margin
}

func (l Layout) Size() (vg.Length, vg.Length) { return l.Width, l.Height }

// area returns the plot area inside the margins.
func (l Layout) area() (xmin, ymin, xmax, ymax vg.Length) {
	return l.Margin.Left, l.Margin.Bottom, l.Width - l.Margin.Right, l.Height - l.Margin.Top
}

// titles draws the x axis title below the plot area and the y axis title
// rotated along the left edge.
func (l Layout) titles(xlabel, ylabel string, sty style) []Grob {
	xmin, ymin, xmax, ymax := l.area()
	return []Grob{
		GrobText{
			x: (xmin + xmax) / 2, y: 5 + sty.fontSize/2,
			text: xlabel, align: AlignMiddle, color: sty.foreground,
		},
		GrobText{
			x: 15, y: (ymin + ymax) / 2,
			text: ylabel, align: AlignMiddle, angle: 90, color: sty.foreground,
		},
	}
}

// -------------------------------------------------------------------------
// Boxplot

// BoxplotChart shows one box per category.
type BoxplotChart struct {
	Layout
	XLabel, YLabel string
	Summaries      []stat.GroupSummary
}

// NewBoxplotChart summarizes column value of df by the categories of
// column group.
func NewBoxplotChart(ctx context.Context, df *DataFrame, group, value string) (*BoxplotChart, error) {
	summaries, err := StatBoxplot{Group: group, Value: value}.Apply(ctx, df)
	if err != nil {
		return nil, err
	}
	return &BoxplotChart{
		Layout: Layout{
			Width: 600, Height: 400,
			Margin: Margin{Top: 20, Right: 30, Bottom: 50, Left: 60},
		},
		XLabel:    group,
		YLabel:    value,
		Summaries: summaries,
	}, nil
}

func (c *BoxplotChart) Grobs(theme Theme) ([]Grob, error) {
	if len(c.Summaries) == 0 {
		return nil, ErrNoData
	}
	sty, err := theme.compile()
	if err != nil {
		return nil, err
	}
	xmin, ymin, xmax, ymax := c.area()

	categories := make([]string, len(c.Summaries))
	lo, hi := 0.0, 0.0
	for i, s := range c.Summaries {
		categories[i] = s.Key
		lo, hi = math.Min(lo, s.Min), math.Max(hi, s.Max)
	}
	x := BandScale{
		Domain:   categories,
		RangeMin: xmin, RangeMax: xmax,
		PaddingInner: 0.1, PaddingOuter: 0.3,
	}
	y := LinearScale{DomainMin: lo, DomainMax: hi, RangeMin: ymin, RangeMax: ymax}

	grobs := bandAxis(x, ymin, sty)
	grobs = append(grobs, linearAxis(y, xmin, sty)...)
	grobs = append(grobs, c.titles(c.XLabel, c.YLabel, sty)...)
	bw := x.Bandwidth()
	for _, s := range c.Summaries {
		pos, _ := x.Pos(s.Key)
		grobs = append(grobs, GeomBox(s.Summary, pos, bw, y, sty)...)
	}
	return grobs, nil
}

// -------------------------------------------------------------------------
// Grouped bar chart

// GroupedBarChart shows one cluster of bars per group with one colored
// bar per series and a legend for the series.
type GroupedBarChart struct {
	Layout
	XLabel, YLabel string
	Groups, Series []string // Categories in display order.
	Bars           []Bar
}

// NewGroupedBarChart builds a bar chart with the categories of column
// group on the x axis, one bar for every category of column series and
// bar heights from column value. Categories keep their order of first
// appearance.
func NewGroupedBarChart(df *DataFrame, group, series, value string) (*GroupedBarChart, error) {
	groups, err := df.Strings(group)
	if err != nil {
		return nil, err
	}
	serieses, err := df.Strings(series)
	if err != nil {
		return nil, err
	}
	values, err := df.Floats(value)
	if err != nil {
		return nil, err
	}
	if df.N == 0 {
		return nil, errors.Wrapf(ErrNoData, "%s", df.Name)
	}

	bars := make([]Bar, df.N)
	for i := range bars {
		bars[i] = Bar{Group: groups[i], Series: serieses[i], Value: values[i]}
	}
	return &GroupedBarChart{
		Layout: Layout{
			Width: 800, Height: 400,
			Margin: Margin{Top: 20, Right: 150, Bottom: 50, Left: 60},
		},
		XLabel: group,
		YLabel: value,
		Groups: NewStringSetFrom(groups).Ordered(),
		Series: NewStringSetFrom(serieses).Ordered(),
		Bars:   bars,
	}, nil
}

func (c *GroupedBarChart) Grobs(theme Theme) ([]Grob, error) {
	if len(c.Bars) == 0 {
		return nil, ErrNoData
	}
	sty, err := theme.compile()
	if err != nil {
		return nil, err
	}
	xmin, ymin, xmax, ymax := c.area()

	values := make([]float64, len(c.Bars))
	for i, b := range c.Bars {
		values[i] = b.Value
	}
	lo := math.Min(0, floats.Min(values)*1.05)
	hi := math.Max(0, floats.Max(values)*1.05)

	outer := BandScale{Domain: c.Groups, RangeMin: xmin, RangeMax: xmax, PaddingInner: 0.1}
	inner := BandScale{Domain: c.Series, RangeMax: outer.Bandwidth(), PaddingInner: 0.05, PaddingOuter: 0.05}
	y := LinearScale{DomainMin: lo, DomainMax: hi, RangeMin: ymin, RangeMax: ymax}
	colors := make(map[string]int, len(c.Series))
	for i, s := range c.Series {
		colors[s] = i
	}

	grobs := bandAxis(outer, ymin, sty)
	grobs = append(grobs, linearAxis(y, xmin, sty)...)
	grobs = append(grobs, c.titles(c.XLabel, c.YLabel, sty)...)
	grobs = append(grobs, GeomBar(c.Bars, outer, inner, y, colors, sty)...)

	// Legend right of the plot area.
	lx, ly := xmax+20, ymax-c.Margin.Top
	for i, s := range c.Series {
		top := ly - vg.Length(20*i)
		grobs = append(grobs,
			GrobRect{
				xmin: lx, ymin: top - 10, xmax: lx + 10, ymax: top,
				fill: sty.palette[i%len(sty.palette)],
			},
			GrobText{x: lx + 20, y: top - 5, text: s, color: sty.foreground},
		)
	}
	return grobs, nil
}

// -------------------------------------------------------------------------
// Line chart

// TimePoint is one observation of a time series.
type TimePoint struct {
	Time  time.Time
	Value float64
}

// LineChart shows a time series as a line with a dot per observation.
type LineChart struct {
	Layout
	XLabel, YLabel string
	TimeFormat     string // Layout of the x tick labels.
	Points         []TimePoint
}

// NewLineChart builds a line chart of column value over the dates in
// column date. Points are sorted by date.
func NewLineChart(df *DataFrame, date, value string) (*LineChart, error) {
	times, err := df.Times(date)
	if err != nil {
		return nil, err
	}
	values, err := df.Floats(value)
	if err != nil {
		return nil, err
	}
	if df.N == 0 {
		return nil, errors.Wrapf(ErrNoData, "%s", df.Name)
	}

	points := make([]TimePoint, df.N)
	for i := range points {
		points[i] = TimePoint{Time: times[i], Value: values[i]}
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return &LineChart{
		Layout: Layout{
			Width: 600, Height: 400,
			Margin: Margin{Top: 20, Right: 30, Bottom: 60, Left: 60},
		},
		XLabel:     date + " (Month/Day)",
		YLabel:     value,
		TimeFormat: "01/02",
		Points:     points,
	}, nil
}

func (c *LineChart) Grobs(theme Theme) ([]Grob, error) {
	if len(c.Points) == 0 {
		return nil, ErrNoData
	}
	sty, err := theme.compile()
	if err != nil {
		return nil, err
	}
	xmin, ymin, xmax, ymax := c.area()

	points := append([]TimePoint(nil), c.Points...)
	sort.SliceStable(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	lo, hi := 0.0, 0.0
	for _, p := range points {
		lo, hi = math.Min(lo, p.Value*1.1), math.Max(hi, p.Value*1.1)
	}
	x := TimeScale{
		Min: points[0].Time, Max: points[len(points)-1].Time,
		RangeMin: xmin, RangeMax: xmax,
		Format: c.TimeFormat,
	}
	y := LinearScale{DomainMin: lo, DomainMax: hi, RangeMin: ymin, RangeMax: ymax}

	grobs := timeAxis(x, ymin, sty)
	grobs = append(grobs, linearAxis(y, xmin, sty)...)
	grobs = append(grobs, c.titles(c.XLabel, c.YLabel, sty)...)

	pts := make([]vg.Point, len(points))
	for i, p := range points {
		pts[i] = vg.Point{X: x.Map(p.Time), Y: y.Map(p.Value)}
	}
	grobs = append(grobs, GeomLine(pts, sty)...)
	grobs = append(grobs, GeomPoint(pts, sty)...)
	return grobs, nil
}

// -------------------------------------------------------------------------
// Rendering

type canvasWriter interface {
	vg.Canvas
	io.WriterTo
}

// Formats lists the output formats understood by Render.
var Formats = []string{"svg", "png"}

// Render draws c with the given theme in format ("svg" or "png") to w.
func Render(w io.Writer, c Chart, format string, theme Theme) error {
	sty, err := theme.compile()
	if err != nil {
		return err
	}
	grobs, err := c.Grobs(theme)
	if err != nil {
		return err
	}

	width, height := c.Size()
	var canvas canvasWriter
	switch format {
	case "svg":
		canvas = vgsvg.New(width, height)
	case "png":
		canvas = vgimg.PngCanvas{Canvas: vgimg.New(width, height)}
	default:
		return errors.Errorf("unknown format %q", format)
	}

	vp, err := NewViewport(canvas, theme.Font, sty.fontSize)
	if err != nil {
		return err
	}
	if sty.background != nil {
		GrobRect{xmax: width, ymax: height, fill: sty.background}.Draw(vp)
	}
	for _, g := range grobs {
		g.Draw(vp)
	}
	_, err = canvas.WriteTo(w)
	return errors.Wrapf(err, "writing %s", format)
}
