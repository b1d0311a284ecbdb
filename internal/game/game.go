// Package game is the ebiten front end of the sine wave demo.
package game

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sinewave-shape/internal/config"
	"github.com/iburimskiy/sinewave-shape/internal/theme"
)

// Game implements ebiten.Game.
type Game struct {
	scenes []scene
	active int

	// viz
	time   float64
	stroke color.RGBA

	// button state
	buttonHovered bool
	buttonPressed bool

	audio   *audio
	lastErr error
}

func New() *Game {
	return &Game{
		scenes: []scene{
			newSliderScene(),
			newModulationScene(),
			newOverlapScene(),
		},
		stroke: theme.RGBA(theme.Accent, 1),
	}
}

func (g *Game) current() scene { return g.scenes[g.active] }

func (g *Game) Update() error {
	dt := time.Second / config.FPS

	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = mouseX >= config.ButtonX && mouseX <= config.ButtonX+config.ButtonWidth &&
		mouseY >= config.ButtonY && mouseY <= config.ButtonY+config.ButtonHeight

	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			if err := g.pickStrokeColor(); err != nil {
				g.lastErr = err
			}
		}
		g.buttonPressed = false
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.active = (g.active + 1) % len(g.scenes)
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.active = 0
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.active = 1
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.active = 2
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if err := g.toggleTone(); err != nil {
			g.lastErr = err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	in := pointer{
		x:       float64(mouseX),
		y:       float64(mouseY),
		pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !g.buttonPressed,
		left:    inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft),
		right:   inpututil.IsKeyJustPressed(ebiten.KeyArrowRight),
	}
	g.time += dt.Seconds()
	g.current().Update(in, dt)

	if err := g.syncTone(); err != nil {
		g.lastErr = err
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawButton(screen)
	g.current().Draw(screen, g.stroke)
	g.drawScope(screen)

	title := fmt.Sprintf("[%d/%d] %s", g.active+1, len(g.scenes), g.current().Title())
	ebitenutil.DebugPrintAt(screen, title, 12, 12)

	status := "Tab/1-3: switch scene | T: tone on/off | Esc/Q: quit"
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 30)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func (g *Game) pickStrokeColor() error {
	picked, err := zenity.SelectColor(
		zenity.Title("Wave Color"),
		zenity.Color(g.stroke),
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	c, ok := theme.FromColor(picked)
	if !ok {
		return errors.New("picked color is fully transparent")
	}
	g.stroke = theme.RGBA(c, 1)
	fmt.Printf("Successfully picked wave color %v\n", c.Hex())
	return nil
}
