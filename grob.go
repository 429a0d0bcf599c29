package chart

import (
	"image/color"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
)

// Viewport is the drawing surface grobs are drawn on: a canvas plus the
// font used for text. Coordinates are canvas coordinates.
type Viewport struct {
	Canvas vg.Canvas
	Font   vg.Font
}

// NewViewport returns a viewport on c using the named font.
func NewViewport(c vg.Canvas, fontName string, size vg.Length) (Viewport, error) {
	font, err := vg.MakeFont(fontName, size)
	if err != nil {
		return Viewport{}, errors.Wrapf(err, "loading font %s", fontName)
	}
	return Viewport{Canvas: c, Font: font}, nil
}

// Grob is a graphical object.
type Grob interface {
	Draw(vp Viewport)
}

// -------------------------------------------------------------------------
// Grob Line

type GrobLine struct {
	x0, y0, x1, y1 vg.Length
	width          vg.Length
	color          color.Color
}

func (line GrobLine) Draw(vp Viewport) {
	var p vg.Path
	p.Move(vg.Point{X: line.x0, Y: line.y0})
	p.Line(vg.Point{X: line.x1, Y: line.y1})
	stroke(vp.Canvas, p, line.width, line.color)
}

// -------------------------------------------------------------------------
// Grob Rect

// GrobRect is an axis parallel rectangle. A nil fill or stroke color
// skips filling or outlining.
type GrobRect struct {
	xmin, ymin, xmax, ymax vg.Length
	fill                   color.Color
	stroke                 color.Color
	width                  vg.Length
}

func (rect GrobRect) path() vg.Path {
	var p vg.Path
	p.Move(vg.Point{X: rect.xmin, Y: rect.ymin})
	p.Line(vg.Point{X: rect.xmax, Y: rect.ymin})
	p.Line(vg.Point{X: rect.xmax, Y: rect.ymax})
	p.Line(vg.Point{X: rect.xmin, Y: rect.ymax})
	p.Close()
	return p
}

func (rect GrobRect) Draw(vp Viewport) {
	if rect.fill != nil {
		vp.Canvas.SetColor(rect.fill)
		vp.Canvas.Fill(rect.path())
	}
	if rect.stroke != nil && rect.width > 0 {
		stroke(vp.Canvas, rect.path(), rect.width, rect.stroke)
	}
}

// -------------------------------------------------------------------------
// Grob Path

type GrobPath struct {
	points []vg.Point
	width  vg.Length
	color  color.Color
}

func (path GrobPath) Draw(vp Viewport) {
	if len(path.points) < 2 {
		return
	}
	var p vg.Path
	p.Move(path.points[0])
	for _, pt := range path.points[1:] {
		p.Line(pt)
	}
	stroke(vp.Canvas, p, path.width, path.color)
}

// -------------------------------------------------------------------------
// Grob Point

// GrobPoint is a filled circle.
type GrobPoint struct {
	x, y   vg.Length
	radius vg.Length
	color  color.Color
}

func (point GrobPoint) Draw(vp Viewport) {
	var p vg.Path
	p.Move(vg.Point{X: point.x + point.radius, Y: point.y})
	p.Arc(vg.Point{X: point.x, Y: point.y}, point.radius, 0, 2*math.Pi)
	p.Close()
	vp.Canvas.SetColor(point.color)
	vp.Canvas.Fill(p)
}

// -------------------------------------------------------------------------
// Grob Text

// TextAlign is the horizontal anchor of a text.
type TextAlign int

const (
	AlignStart TextAlign = iota
	AlignMiddle
	AlignEnd
)

// GrobText is a single line of text. The anchor point (x, y) is on the
// vertical middle of the text; angle rotates around it, in degrees
// counter-clockwise.
type GrobText struct {
	x, y  vg.Length
	text  string
	align TextAlign
	angle float64
	color color.Color
}

func (text GrobText) Draw(vp Viewport) {
	font := vp.Font
	w := font.Width(text.text)
	dx := vg.Length(0)
	switch text.align {
	case AlignMiddle:
		dx = -w / 2
	case AlignEnd:
		dx = -w
	}
	ext := font.Extents()
	dy := -(ext.Ascent - ext.Descent) / 2

	c := vp.Canvas
	c.Push()
	c.Translate(vg.Point{X: text.x, Y: text.y})
	if text.angle != 0 {
		c.Rotate(text.angle * math.Pi / 180)
	}
	c.SetColor(text.color)
	c.FillString(font, vg.Point{X: dx, Y: dy}, text.text)
	c.Pop()
}

func stroke(c vg.Canvas, p vg.Path, width vg.Length, col color.Color) {
	c.SetLineWidth(width)
	c.SetLineDash(nil, 0)
	c.SetColor(col)
	c.Stroke(p)
}
