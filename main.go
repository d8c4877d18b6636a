// Chessmate - a two-player chess board built with Ebitengine
package main

import (
	"log"

	"github.com/hailam/chessmate/internal/config"
	"github.com/hailam/chessmate/internal/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	game := ui.NewGame(cfg)
	defer game.Close()

	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle("Chessmate")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
