package app

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"paint-canvas/internal/core"
	"paint-canvas/internal/render"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePuzzle(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+3] = 0xFF, 0xFF
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "red.png"), buf.Bytes(), 0o644))

	doc := `gridSize: 10
selectedColorHex: "#FF0000"
imageUri: red.png
cells:
  - {row: 0, col: 0, targetColorHex: "#FF0000"}
  - {row: 0, col: 1, targetColorHex: "#00FF00"}
`
	path := filepath.Join(dir, "puzzle.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestSessionEndToEnd(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := NewConfig()
	cfg.Puzzle = writePuzzle(t)
	cfg.Size = 100

	var events []core.CellPainted
	s, err := NewSession(cfg, log, func(ev core.CellPainted) { events = append(events, ev) })
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Canvas.AwaitImage(ctx))
	assert.Equal(t, filepath.Join(filepath.Dir(cfg.Puzzle), "red.png"), s.Canvas.ImageURI())
	require.NotNil(t, s.Canvas.Background())
	assert.Equal(t, image.Rect(0, 0, 600, 600), s.Canvas.Background().Bounds())

	s.Canvas.TouchStart(5, 5)
	s.Canvas.TouchMove(15, 5)
	s.Canvas.TouchEnd()
	assert.Equal(t, []core.CellPainted{{Row: 0, Col: 0, Correct: true}, {Row: 0, Col: 1, Correct: false}}, events)
	assert.Equal(t, 1, s.Score.Correct)
	assert.Equal(t, 1, s.Score.Wrong)

	frame := render.NewFrame(s.Canvas.Viewport())
	require.NoError(t, s.Renderer.Render(frame, s.Canvas.Scene()))
	assert.Equal(t, color.RGBA{R: 0xFF, A: 0xFF}, frame.RGBAAt(0, 0), "revealed cell covers its grid line")
	assert.Equal(t, core.GridLineColor, frame.RGBAAt(10, 5))
}

func TestSessionOverridesAndDefaults(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := NewConfig()
	cfg.Color = "#123456"
	s, err := NewSession(cfg, log, nil)
	require.NoError(t, err)
	defer s.Close()
	assert.Equal(t, "#123456", s.Canvas.SelectedColor())
	assert.Equal(t, 60, s.Canvas.GridSize())
	assert.Equal(t, 10.0, s.Canvas.CellSize())

	cfg.Size = 0
	_, err = NewSession(cfg, log, nil)
	assert.Error(t, err)

	cfg = NewConfig()
	cfg.Puzzle = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewSession(cfg, log, nil)
	assert.Error(t, err)
}

func TestSessionMissingImageDegrades(t *testing.T) {
	log, hook := test.NewNullLogger()
	cfg := NewConfig()
	cfg.Image = filepath.Join(t.TempDir(), "nope.png")
	s, err := NewSession(cfg, log, nil)
	require.NoError(t, err)
	defer s.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Canvas.AwaitImage(ctx))
	assert.Nil(t, s.Canvas.Background())
	warned := false
	for _, e := range hook.AllEntries() {
		warned = warned || e.Level == logrus.WarnLevel
	}
	assert.True(t, warned, "load failure is logged")
}
