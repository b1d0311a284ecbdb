package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sinewave-shape/internal/config"
	"github.com/iburimskiy/sinewave-shape/internal/control"
	"github.com/iburimskiy/sinewave-shape/internal/sinewave"
	"github.com/iburimskiy/sinewave-shape/internal/theme"
)

// drawWave strokes the sampled path of w inside rect. A non-nil mask scales
// each segment's opacity by its horizontal position in rect (0 left, 1 right).
func drawWave(screen *ebiten.Image, w sinewave.Wave, rect sinewave.Rect, c color.RGBA, width float32, mask func(float64) float64) {
	path := sinewave.Sample(w, rect, sinewave.DefaultStep)
	for i := 1; i < len(path); i++ {
		a, b := path[i-1], path[i]
		sc := c
		if mask != nil {
			sc = theme.Fade(c, mask(((a.X+b.X)/2-rect.MinX())/rect.Width))
			if sc.A == 0 {
				continue
			}
		}
		vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, sc, true)
	}
}

// drawEnvelope outlines the modulation envelope above and below the center
// line as a faint guide.
func drawEnvelope(screen *ebiten.Image, w sinewave.Wave, rect sinewave.Rect) {
	guide := color.RGBA{R: 255, G: 255, B: 255, A: 40}
	half := rect.Height / 2 * w.AmplitudeRatio()
	for x := rect.MinX(); x <= rect.MaxX(); x += 6 {
		h := half * sinewave.Envelope(w.Modulation(), x, rect)
		vector.DrawFilledRect(screen, float32(x), float32(rect.MidY()-h), 2, 2, guide, false)
		vector.DrawFilledRect(screen, float32(x), float32(rect.MidY()+h), 2, 2, guide, false)
	}
	vector.StrokeLine(screen, float32(rect.MinX()), float32(rect.MidY()), float32(rect.MaxX()), float32(rect.MidY()), 1, guide, false)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	for y := 0; y < config.WindowHeight; y++ {
		ratio := float64(y) / float64(config.WindowHeight)
		ebitenutil.DrawLine(screen, 0, float64(y), float64(config.WindowWidth), float64(y), theme.Background(ratio, g.time))
	}
}

func drawSlider(screen *ebiten.Image, s *control.Slider, value string) {
	track := color.RGBA{R: 60, G: 70, B: 90, A: 255}
	fill := theme.RGBA(theme.Accent, 0.9)
	knob := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	midY := float32(s.Y + s.Height/2)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), color.RGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 1, track, false)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.KnobX()-s.X), float32(s.Height), fill, false)

	radius := float32(s.Height/2 + 2)
	if s.Dragging() {
		radius += 2
	}
	vector.DrawFilledCircle(screen, float32(s.KnobX()), midY, radius, knob, true)

	ebitenutil.DebugPrintAt(screen, s.Label, int(s.X)-120, int(s.Y))
	ebitenutil.DebugPrintAt(screen, value, int(s.X+s.Width)+16, int(s.Y))
}

func (g *Game) drawButton(screen *ebiten.Image) {
	var bgColor color.Color
	if g.buttonPressed {
		bgColor = color.RGBA{R: 60, G: 80, B: 120, A: 255} // Pressed
	} else if g.buttonHovered {
		bgColor = color.RGBA{R: 80, G: 100, B: 140, A: 255} // Hovered
	} else {
		bgColor = color.RGBA{R: 100, G: 120, B: 160, A: 255} // Normal
	}

	vector.DrawFilledRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, bgColor, false)
	vector.StrokeRect(screen, config.ButtonX, config.ButtonY, config.ButtonWidth, config.ButtonHeight, 2, g.stroke, false)

	text := "Wave Color"
	textWidth := len(text) * 6 // debug font glyph width
	textX := config.ButtonX + (config.ButtonWidth-textWidth)/2
	textY := config.ButtonY + (config.ButtonHeight-16)/2
	ebitenutil.DebugPrintAt(screen, text, textX, textY)
}

// drawScope plots the last samples sent to the speaker along the bottom
// edge of the window.
func (g *Game) drawScope(screen *ebiten.Image) {
	if g.audio == nil || g.audio.paused() {
		return
	}
	samples := g.audio.tap.Snapshot(config.ScopeSamples)
	if len(samples) < 2 {
		return
	}

	baseY := float64(config.WindowHeight - config.ScopeHeight - 10)
	step := float64(config.WindowWidth) / float64(len(samples)-1)
	c := theme.RGBA(theme.Secondary2, 0.6)
	for i := 1; i < len(samples); i++ {
		x1, x2 := float64(i-1)*step, float64(i)*step
		y1 := baseY - samples[i-1]*config.ScopeHeight/2
		y2 := baseY - samples[i]*config.ScopeHeight/2
		vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, c, false)
	}
}
