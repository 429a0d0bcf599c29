package chart

import (
	"image/color"
	"io"
	"os"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"
)

// Theme holds the fixed, not data driven, aesthetics of the charts.
// Colors use the notation of ParseColor.
type Theme struct {
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`

	Foreground string `yaml:"foreground"` // Axes, labels and outlines.
	Background string `yaml:"background"` // Empty means transparent.

	BoxFill     string  `yaml:"box_fill"`
	BoxStroke   float64 `yaml:"box_stroke"`
	MedianWidth float64 `yaml:"median_width"`

	Palette []string `yaml:"palette"` // Colors of the bar chart series.

	LineColor   string  `yaml:"line_color"`
	LineWidth   float64 `yaml:"line_width"`
	PointRadius float64 `yaml:"point_radius"`
	Smooth      bool    `yaml:"smooth"`
}

var DefaultTheme = Theme{
	Font:        "Helvetica",
	FontSize:    10,
	Foreground:  "black",
	BoxFill:     "#69b3a2",
	BoxStroke:   1,
	MedianWidth: 3,
	Palette:     []string{"#1f77b4", "#ff7f0e", "#2ca02c"},
	LineColor:   "steelblue",
	LineWidth:   2,
	PointRadius: 4,
	Smooth:      true,
}

// ReadTheme decodes a YAML theme. Fields missing in r keep their value
// from DefaultTheme.
func ReadTheme(r io.Reader) (Theme, error) {
	theme := DefaultTheme
	theme.Palette = append([]string(nil), DefaultTheme.Palette...)
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&theme); err != nil && err != io.EOF {
		return Theme{}, errors.Wrap(err, "decoding theme")
	}
	if _, err := theme.compile(); err != nil {
		return Theme{}, err
	}
	return theme, nil
}

// LoadTheme reads a theme file. An empty path returns DefaultTheme.
func LoadTheme(path string) (Theme, error) {
	if path == "" {
		return DefaultTheme, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Theme{}, errors.Wrap(err, "opening theme")
	}
	defer f.Close()
	theme, err := ReadTheme(f)
	return theme, errors.Wrapf(err, "%s", path)
}

// style is a Theme with parsed colors and lengths.
type style struct {
	foreground  color.Color
	background  color.Color
	boxFill     color.Color
	boxStroke   vg.Length
	medianWidth vg.Length
	palette     []color.Color
	lineColor   color.Color
	lineWidth   vg.Length
	pointRadius vg.Length
	smooth      bool
	fontSize    vg.Length
}

func (t Theme) compile() (style, error) {
	s := style{
		boxStroke:   vg.Points(t.BoxStroke),
		medianWidth: vg.Points(t.MedianWidth),
		lineWidth:   vg.Points(t.LineWidth),
		pointRadius: vg.Points(t.PointRadius),
		smooth:      t.Smooth,
		fontSize:    vg.Points(t.FontSize),
	}
	if len(t.Palette) == 0 {
		return style{}, errors.New("theme: empty palette")
	}
	if t.FontSize <= 0 {
		return style{}, errors.Errorf("theme: bad font size %g", t.FontSize)
	}

	var err error
	for _, c := range []struct {
		name string
		dst  *color.Color
	}{
		{t.Foreground, &s.foreground},
		{t.BoxFill, &s.boxFill},
		{t.LineColor, &s.lineColor},
	} {
		if *c.dst, err = ParseColor(c.name); err != nil {
			return style{}, errors.Wrap(err, "theme")
		}
	}
	if t.Background != "" {
		if s.background, err = ParseColor(t.Background); err != nil {
			return style{}, errors.Wrap(err, "theme")
		}
	}
	for _, p := range t.Palette {
		col, err := ParseColor(p)
		if err != nil {
			return style{}, errors.Wrap(err, "theme palette")
		}
		s.palette = append(s.palette, col)
	}
	return s, nil
}
