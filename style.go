package chart

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
)

// -------------------------------------------------------------------------
// Colors

var BuiltinColors = map[string]color.RGBA{
	"red":       {0xff, 0x00, 0x00, 0xff},
	"green":     {0x00, 0x80, 0x00, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"steelblue": {0x46, 0x82, 0xb4, 0xff},
	"gray20":    {0x33, 0x33, 0x33, 0xff},
	"gray40":    {0x66, 0x66, 0x66, 0xff},
	"gray":      {0x80, 0x80, 0x80, 0xff},
	"gray60":    {0x99, 0x99, 0x99, 0xff},
	"gray80":    {0xcc, 0xcc, 0xcc, 0xff},
	"black":     {0x00, 0x00, 0x00, 0xff},
}

// ParseColor understands the names in BuiltinColors and hex notation
// #rgb, #rrggbb and #rrggbbaa.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if col, ok := BuiltinColors[s]; ok {
		return col, nil
	}
	if !strings.HasPrefix(s, "#") {
		return nil, errors.Errorf("unknown color %q", s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	var r, g, b uint8
	a := uint8(0xff)
	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
	case 8:
		_, err = fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
	default:
		return nil, errors.Errorf("bad color %q", s)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "bad color %q", s)
	}
	return color.NRGBA{r, g, b, a}, nil
}
