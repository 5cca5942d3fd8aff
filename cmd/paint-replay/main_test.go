package main

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"paint-canvas/internal/app"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func replayConfig() *app.Config {
	cfg := app.NewConfig()
	cfg.Size = 50
	cfg.LogLevel = "error"
	return cfg
}

func TestRunWritesFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	err := run(replayConfig(), replayOptions{gestures: 2, samples: 3, seed: 1, out: out, wait: time.Second})
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 50), img.Bounds())
}

func TestRunReportsErrors(t *testing.T) {
	err := run(replayConfig(), replayOptions{wait: time.Second})
	assert.ErrorContains(t, err, "need -script or -scribble")

	cfg := replayConfig()
	cfg.Puzzle = filepath.Join(t.TempDir(), "missing.yaml")
	err = run(cfg, replayOptions{gestures: 1, wait: time.Second})
	assert.ErrorContains(t, err, "start:")

	err = run(replayConfig(), replayOptions{script: filepath.Join(t.TempDir(), "none.yaml"), wait: time.Second})
	assert.ErrorContains(t, err, "touches:")
}
