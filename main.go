package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sinewave-shape/internal/config"
	"github.com/iburimskiy/sinewave-shape/internal/game"
)

func main() {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Sine Wave Shapes - Tab: next scene, T: tone, Esc/Q: Quit")
	ebiten.SetTPS(config.FPS)

	g := game.New()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
