package chart

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"SteelBlue", color.NRGBA{0x46, 0x82, 0xb4, 0xff}},
		{" black ", color.NRGBA{0x00, 0x00, 0x00, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseColor(tc.s)
		require.NoError(t, err, tc.s)
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}

	for _, bad := range []string{"nonsens", "#12", "#12345", "#gggggg", ""} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestReadTheme(t *testing.T) {
	theme, err := ReadTheme(strings.NewReader(`
box_fill: "#336699"
palette: [red, green]
smooth: false
`))
	require.NoError(t, err)
	assert.Equal(t, "#336699", theme.BoxFill)
	assert.Equal(t, []string{"red", "green"}, theme.Palette)
	assert.False(t, theme.Smooth)
	assert.Equal(t, DefaultTheme.LineColor, theme.LineColor, "unset fields keep defaults")
	assert.Equal(t, []string{"#1f77b4", "#ff7f0e", "#2ca02c"}, DefaultTheme.Palette)

	empty, err := ReadTheme(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme.BoxFill, empty.BoxFill)
}

func TestReadThemeErrors(t *testing.T) {
	for _, input := range []string{
		"box_colour: red\n",
		"box_fill: chartreuse-ish\n",
		"palette: []\n",
		"font_size: 0\n",
		"palette: [\n",
	} {
		_, err := ReadTheme(strings.NewReader(input))
		assert.Error(t, err, input)
	}
}

func TestLoadTheme(t *testing.T) {
	theme, err := LoadTheme("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme.BoxFill, theme.BoxFill)

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("line_color: red\n"), 0o644))
	theme, err = LoadTheme(path)
	require.NoError(t, err)
	assert.Equal(t, "red", theme.LineColor)

	_, err = LoadTheme(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
