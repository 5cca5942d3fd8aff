package ui

import (
	"image"
	"image/color"
	"testing"

	"paint-canvas/internal/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreRecord(t *testing.T) {
	var s Score
	s.Record(core.CellPainted{Correct: true})
	s.Record(core.CellPainted{Correct: false})
	s.Record(core.CellPainted{Correct: true})
	assert.Equal(t, Score{Correct: 2, Wrong: 1}, s)
}

func TestLayoutSwatchesWraps(t *testing.T) {
	// Room for two swatches per row: 12 + 2*(28+6) = 80.
	swatches := LayoutSwatches([]string{"#FF0000", "#00FF00", "#0000FF", "oops"}, 80, 100)
	require.Len(t, swatches, 4)
	assert.Equal(t, image.Rect(12, 100, 40, 128), swatches[0].Rect)
	assert.Equal(t, image.Rect(46, 100, 74, 128), swatches[1].Rect)
	assert.Equal(t, image.Rect(12, 134, 40, 162), swatches[2].Rect)
	assert.Equal(t, color.RGBA{B: 0xFF, A: 0xFF}, swatches[2].Color)
	assert.Equal(t, color.RGBA{A: 0xFF}, swatches[3].Color)

	assert.Nil(t, LayoutSwatches(nil, 80, 0))
	assert.Nil(t, LayoutSwatches([]string{"#FFF"}, 0, 0))
	assert.Len(t, LayoutSwatches([]string{"#FFF", "#000"}, 1, 0), 2, "narrow panels still get one column")
}

func TestSwatchAt(t *testing.T) {
	swatches := LayoutSwatches([]string{"#FF0000", "#00FF00"}, 200, 0)
	s, ok := SwatchAt(swatches, 50, 10)
	require.True(t, ok)
	assert.Equal(t, "#00FF00", s.Hex)

	_, ok = SwatchAt(swatches, 43, 10)
	assert.False(t, ok, "gap between swatches")
	_, ok = SwatchAt(swatches, 12, 28)
	assert.False(t, ok, "max edge is exclusive")
}
