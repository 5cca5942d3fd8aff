package puzzle

import (
	"os"
	"path/filepath"
	"testing"

	"paint-canvas/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := FromMap(nil)
	assert.Equal(t, DefaultGridSize, cfg.GridSize)
	assert.Equal(t, core.DefaultSelectedColorHex, cfg.SelectedColorHex)
	assert.Empty(t, cfg.Cells)
	assert.Empty(t, cfg.ImageURI)
}

func TestFromMapIgnoresBadGridSize(t *testing.T) {
	for _, v := range []any{0, -3, "12", nil, 0.0} {
		cfg := FromMap(map[string]any{"gridSize": v})
		assert.Equal(t, DefaultGridSize, cfg.GridSize, "gridSize %v", v)
	}
	cfg := FromMap(map[string]any{"gridSize": 12.9})
	assert.Equal(t, 12, cfg.GridSize)
}

func TestCoerceCellsLenient(t *testing.T) {
	cells := CoerceCells([]any{
		map[string]any{"row": 1, "col": int64(2), "targetColorHex": "#00FF00"},
		map[string]any{"row": "x", "col": 3.7},
		map[string]any{"targetColorHex": 42},
		"garbage",
		map[string]any{"row": 4, "col": 4, "targetColorHex": ""},
	})
	require.Len(t, cells, 5)
	assert.Equal(t, core.Cell{Row: 1, Col: 2, TargetColorHex: "#00FF00"}, cells[0])
	assert.Equal(t, core.Cell{Row: 0, Col: 3, TargetColorHex: core.FallbackColorHex}, cells[1])
	assert.Equal(t, core.Cell{TargetColorHex: core.FallbackColorHex}, cells[2])
	assert.Equal(t, core.Cell{TargetColorHex: core.FallbackColorHex}, cells[3])
	assert.Equal(t, core.Cell{Row: 4, Col: 4, TargetColorHex: core.FallbackColorHex}, cells[4], "empty color falls back")

	assert.Nil(t, CoerceCells("not a list"))
}

func TestDecodeFormats(t *testing.T) {
	yamlDoc := []byte(`
gridSize: 10
selectedColorHex: "#ff0000"
imageUri: "https://example.com/cat.png"
cells:
  - {row: 0, col: 0, targetColorHex: "#FF0000"}
  - {row: 0, col: 1, targetColorHex: "#00FF00"}
`)
	tomlDoc := []byte(`
gridSize = 10
selectedColorHex = "#ff0000"
imageUri = "https://example.com/cat.png"

[[cells]]
row = 0
col = 0
targetColorHex = "#FF0000"

[[cells]]
row = 0
col = 1
targetColorHex = "#00FF00"
`)
	jsonDoc := []byte(`{"gridSize": 10, "selectedColorHex": "#ff0000",
"imageUri": "https://example.com/cat.png",
"cells": [{"row": 0, "col": 0, "targetColorHex": "#FF0000"},
          {"row": 0, "col": 1, "targetColorHex": "#00FF00"}]}`)

	want := Config{
		GridSize:         10,
		SelectedColorHex: "#ff0000",
		ImageURI:         "https://example.com/cat.png",
		Cells: []core.Cell{
			{Row: 0, Col: 0, TargetColorHex: "#FF0000"},
			{Row: 0, Col: 1, TargetColorHex: "#00FF00"},
		},
	}
	for format, doc := range map[Format][]byte{FormatYAML: yamlDoc, FormatTOML: tomlDoc, FormatJSON: jsonDoc} {
		cfg, err := Decode(doc, format)
		require.NoError(t, err, format)
		assert.Equal(t, want, cfg, format)
	}
}

func TestDecodeSyntaxError(t *testing.T) {
	_, err := Decode([]byte("{"), FormatJSON)
	assert.Error(t, err)
	_, err = Decode([]byte("a"), Format("ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestLoadResolvesRelativeImage(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cat.yml")
	require.NoError(t, os.WriteFile(path, []byte("gridSize: 4\nimageUri: cat.png\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.GridSize)
	assert.Equal(t, filepath.Join(dir, "cat.png"), cfg.ImageURI)

	_, err = Load(filepath.Join(dir, "cat.ini"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
