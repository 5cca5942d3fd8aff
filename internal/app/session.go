package app

import (
	"fmt"

	"paint-canvas/internal/canvas"
	"paint-canvas/internal/core"
	"paint-canvas/internal/imagesrc"
	"paint-canvas/internal/puzzle"
	"paint-canvas/internal/render"
	"paint-canvas/internal/ui"

	"github.com/sirupsen/logrus"
)

// Session wires a canvas to its loader, renderer and score keeping.
type Session struct {
	Canvas   *canvas.Canvas
	Renderer *render.Renderer
	Loader   *imagesrc.Loader
	Score    *ui.Score
	Puzzle   puzzle.Config
}

// NewSession loads the configured puzzle and builds a ready canvas. Every
// notification is counted in Score before being forwarded to onPainted.
func NewSession(cfg *Config, log logrus.FieldLogger, onPainted func(core.CellPainted)) (*Session, error) {
	pz := puzzle.DefaultConfig()
	if cfg.Puzzle != "" {
		loaded, err := puzzle.Load(cfg.Puzzle)
		if err != nil {
			return nil, err
		}
		pz = loaded
	}
	if cfg.Image != "" {
		pz.ImageURI = cfg.Image
	}
	if cfg.Color != "" {
		pz.SelectedColorHex = cfg.Color
	}
	if cfg.Size <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %d", cfg.Size)
	}

	style := render.DefaultStyle()
	style.BackgroundAlpha = cfg.BackgroundAlpha
	style.FlatFill = cfg.FlatFill

	s := &Session{
		Renderer: render.NewRenderer(style, log),
		Loader:   imagesrc.NewLoader(imagesrc.DefaultSize, log),
		Score:    &ui.Score{},
		Puzzle:   pz,
	}
	s.Canvas = canvas.New(canvas.Options{
		Images: s.Loader,
		Log:    log,
		OnCellPainted: func(ev core.CellPainted) {
			s.Score.Record(ev)
			if onPainted != nil {
				onPainted(ev)
			}
		},
	})
	s.Canvas.OnViewportResize(cfg.Size, cfg.Size)
	if err := s.Canvas.Apply(pz); err != nil {
		s.Loader.Close()
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"grid":  pz.GridSize,
		"cells": len(pz.Cells),
		"image": s.Canvas.ImageURI(),
	}).Info("puzzle loaded")
	return s, nil
}

// Close stops background loading and releases the canvas image.
func (s *Session) Close() {
	s.Canvas.Close()
	s.Loader.Close()
}
