package ui

import (
	"image"
	"image/color"

	"paint-canvas/internal/core"
)

// Score tallies paint notifications.
type Score struct {
	Correct int
	Wrong   int
}

// Record counts one notification.
func (s *Score) Record(ev core.CellPainted) {
	if ev.Correct {
		s.Correct++
		return
	}
	s.Wrong++
}

// Swatch is one selectable brush color on the panel.
type Swatch struct {
	Hex   string
	Color color.RGBA
	Rect  image.Rectangle
}

// LayoutSwatches arranges colors in a grid of square buttons that fits the
// panel width, starting at top.
func LayoutSwatches(hexes []string, panelWidth, top int) []Swatch {
	if panelWidth <= 0 || len(hexes) == 0 {
		return nil
	}
	perRow := (panelWidth - panelPadding) / (swatchSize + swatchGap)
	if perRow < 1 {
		perRow = 1
	}
	out := make([]Swatch, 0, len(hexes))
	for i, hex := range hexes {
		c, err := core.ParseHex(hex)
		if err != nil {
			c = color.RGBA{A: 0xFF}
		}
		x := panelPadding + (i%perRow)*(swatchSize+swatchGap)
		y := top + (i/perRow)*(swatchSize+swatchGap)
		out = append(out, Swatch{Hex: hex, Color: c, Rect: image.Rect(x, y, x+swatchSize, y+swatchSize)})
	}
	return out
}

// SwatchAt returns the swatch under panel-local point (x, y).
func SwatchAt(swatches []Swatch, x, y int) (Swatch, bool) {
	for _, s := range swatches {
		if pointInRect(x, y, s.Rect) {
			return s, true
		}
	}
	return Swatch{}, false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 18
	swatchSize     = 28
	swatchGap      = 6
	swatchesTop    = panelPadding + headerBaseline + 4*lineHeight
)
