package theme_test

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/sinewave-shape/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWaveColor_Wraps verifies indices past the palette (and negative ones) wrap.
func TestWaveColor_Wraps(t *testing.T) {
	n := len(theme.Palette)
	require.Equal(t, 12, n)

	assert.Equal(t, theme.WaveColor(0, 1), theme.WaveColor(n, 1))
	assert.Equal(t, theme.WaveColor(n-1, 1), theme.WaveColor(-1, 1))
}

// TestWaveColor_Alpha checks opacity mapping and clamping.
func TestWaveColor_Alpha(t *testing.T) {
	assert.Equal(t, uint8(255), theme.WaveColor(0, 1).A)
	assert.Equal(t, uint8(0), theme.WaveColor(0, -3).A)
	assert.Equal(t, uint8(255), theme.WaveColor(0, 7).A)
}

// TestRGBA_Hex checks a palette entry converts back to its hex bytes.
func TestRGBA_Hex(t *testing.T) {
	got := theme.RGBA(theme.Palette[0], 1)
	assert.Equal(t, color.RGBA{R: 0x0a, G: 0x84, B: 0xff, A: 255}, got)
}

// TestFromColor_RoundTrip verifies picker colors convert into the palette type.
func TestFromColor_RoundTrip(t *testing.T) {
	c, ok := theme.FromColor(color.RGBA{R: 255, G: 55, B: 95, A: 255})
	require.True(t, ok)
	assert.Equal(t, "#ff375f", c.Hex())

	_, ok = theme.FromColor(color.RGBA{})
	assert.False(t, ok)
}

// TestBackground_Opaque checks every gradient row is opaque and dark.
func TestBackground_Opaque(t *testing.T) {
	for _, ratio := range []float64{0, 0.25, 0.5, 1} {
		c := theme.Background(ratio, 3.7)
		assert.Equal(t, uint8(255), c.A)
		assert.Less(t, int(c.R)+int(c.G)+int(c.B), 3*128)
	}
}

// TestMaskAlpha_Stops checks the mask at and between its stops.
func TestMaskAlpha_Stops(t *testing.T) {
	cases := []struct {
		ratio, want float64
	}{
		{-1, 0},
		{0, 0},
		{0.1, 0.125},
		{0.2, 0.25},
		{0.35, 0.625},
		{0.5, 1},
		{0.75, 0.2},
		{0.875, 0.1},
		{1, 0},
		{2, 0},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, theme.MaskAlpha(c.ratio), 1e-9, "ratio %v", c.ratio)
	}
}

// TestGradient_Empty verifies an empty gradient yields black.
func TestGradient_Empty(t *testing.T) {
	assert.Equal(t, "#000000", theme.Gradient{}.At(0.5).Hex())
}

// TestFade scales every channel, keeping the color premultiplied.
func TestFade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 50, A: 200}

	assert.Equal(t, c, theme.Fade(c, 1))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 25, A: 100}, theme.Fade(c, 0.5))
	assert.Equal(t, color.RGBA{}, theme.Fade(c, -1))
}
