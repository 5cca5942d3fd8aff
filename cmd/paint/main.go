//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"paint-canvas/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := cfg.Logger()
	session, err := app.NewSession(cfg, logger, nil)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	defer session.Close()

	game := app.New(session, cfg, logger)

	ebiten.SetWindowTitle("paint-canvas")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Size+cfg.HUDWidth, cfg.Size)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
