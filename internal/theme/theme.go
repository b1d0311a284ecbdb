// Package theme holds the demo's colors.
package theme

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	Accent     = mustHex("#ff5e7e")
	Primary    = mustHex("#2d3561")
	Secondary1 = mustHex("#a05195")
	Secondary2 = mustHex("#f8b195")
	Secondary3 = mustHex("#6c5b7b")
)

// Palette lists the stroke colors cycled through by multi-wave scenes.
var Palette = []colorful.Color{
	mustHex("#0a84ff"), // blue
	mustHex("#ff375f"), // pink
	mustHex("#ffd60a"), // yellow
	mustHex("#ff9f0a"), // orange
	mustHex("#30d158"), // green
	mustHex("#ff453a"), // red
	mustHex("#bf5af2"), // purple
	Accent,
	Primary,
	Secondary1,
	Secondary2,
	Secondary3,
}

// WaveColor returns Palette[i], wrapping around, at the given opacity.
func WaveColor(i int, alpha float64) color.RGBA {
	n := len(Palette)
	c := Palette[((i%n)+n)%n]
	return RGBA(c, alpha)
}

// Background returns the color of the gradient row at ratio (0 top, 1 bottom)
// for animation time t in seconds. The hue drifts slowly with t.
func Background(ratio, t float64) color.RGBA {
	hue := math.Mod(230+20*math.Sin(t*0.3+ratio*math.Pi), 360)
	top := colorful.Hsv(hue, 0.55, 0.16)
	bottom := colorful.Hsv(math.Mod(hue+40, 360), 0.6, 0.08)
	return RGBA(top.BlendLab(bottom, clamp01(ratio)).Clamped(), 1)
}

// GradientStop is a color at a position in [0, 1] along a gradient.
type GradientStop struct {
	Color colorful.Color
	Pos   float64
}

// Gradient is a list of stops sorted by position.
type Gradient []GradientStop

// At returns the color at t, blending the two surrounding stops in RGB.
// Positions before the first stop or after the last take that stop's color.
func (g Gradient) At(t float64) colorful.Color {
	if len(g) == 0 {
		return colorful.Color{}
	}
	if t <= g[0].Pos {
		return g[0].Color
	}
	for i := 1; i < len(g); i++ {
		a, b := g[i-1], g[i]
		if t <= b.Pos {
			if b.Pos == a.Pos {
				return b.Color
			}
			return a.Color.BlendRgb(b.Color, (t-a.Pos)/(b.Pos-a.Pos))
		}
	}
	return g[len(g)-1].Color
}

// WaveMask fades multi-wave scenes out towards both sides. Gray level is
// opacity: black is transparent, white is opaque.
var WaveMask = Gradient{
	{colorful.Color{R: 0, G: 0, B: 0}, 0.0},
	{colorful.Color{R: 0.25, G: 0.25, B: 0.25}, 0.2},
	{colorful.Color{R: 1, G: 1, B: 1}, 0.5},
	{colorful.Color{R: 0.2, G: 0.2, B: 0.2}, 0.75},
	{colorful.Color{R: 0, G: 0, B: 0}, 1.0},
}

// MaskAlpha returns the WaveMask opacity at horizontal position ratio
// (0 left edge, 1 right edge).
func MaskAlpha(ratio float64) float64 {
	return clamp01(WaveMask.At(ratio).R)
}

// Fade scales an already premultiplied color by alpha.
func Fade(c color.RGBA, alpha float64) color.RGBA {
	a := clamp01(alpha)
	return color.RGBA{
		R: uint8(float64(c.R)*a + 0.5),
		G: uint8(float64(c.G)*a + 0.5),
		B: uint8(float64(c.B)*a + 0.5),
		A: uint8(float64(c.A)*a + 0.5),
	}
}

// RGBA converts c to a color.RGBA with the given opacity, premultiplied as
// image/color expects.
func RGBA(c colorful.Color, alpha float64) color.RGBA {
	a := clamp01(alpha)
	r, g, b := c.RGB255()
	return color.RGBA{
		R: uint8(float64(r)*a + 0.5),
		G: uint8(float64(g)*a + 0.5),
		B: uint8(float64(b)*a + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// FromColor converts any color.Color, as returned by a color picker, into a
// colorful.Color. ok is false for fully transparent colors.
func FromColor(c color.Color) (colorful.Color, bool) {
	return colorful.MakeColor(c)
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
