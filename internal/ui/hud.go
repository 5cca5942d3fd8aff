//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"paint-canvas/internal/canvas"
	"paint-canvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the palette and score panel to the right of the canvas.
type HUD struct {
	canvas *canvas.Canvas
	width  int
	score  *Score

	swatches     []Swatch
	paletteKey   string
	panelOffsetX int
	panel        *ebiten.Image
}

// NewHUD constructs a HUD for the canvas and panel width.
func NewHUD(c *canvas.Canvas, score *Score, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{canvas: c, score: score, width: width}
}

// Width is the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the swatch layout and handles palette clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	h.panelOffsetX = panelOffsetX
	palette := h.canvas.Palette()
	key := fmt.Sprint(palette)
	if key != h.paletteKey {
		h.swatches = LayoutSwatches(palette, h.width, swatchesTop)
		h.paletteKey = key
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	if s, ok := SwatchAt(h.swatches, mx-h.panelOffsetX, my); ok {
		h.canvas.SetSelectedColor(s.Hex)
	}
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.panel.Bounds().Dy() != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	label := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dim := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	y := panelPadding + headerBaseline
	text.Draw(h.panel, "Paint", face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	filled, total := h.canvas.Progress()
	y += lineHeight
	text.Draw(h.panel, fmt.Sprintf("Filled %d / %d", filled, total), face, panelPadding, y, label)
	if h.score != nil {
		y += lineHeight
		text.Draw(h.panel, fmt.Sprintf("Hits %d  Misses %d", h.score.Correct, h.score.Wrong), face, panelPadding, y, label)
	}
	y += lineHeight
	status := "Brush " + h.canvas.SelectedColor()
	if h.canvas.Complete() {
		status = "Complete!"
	}
	text.Draw(h.panel, status, face, panelPadding, y, dim)

	selected := h.canvas.SelectedColor()
	for _, s := range h.swatches {
		vector.DrawFilledRect(h.panel, float32(s.Rect.Min.X), float32(s.Rect.Min.Y),
			float32(s.Rect.Dx()), float32(s.Rect.Dy()), s.Color, false)
		if core.SameColor(s.Hex, selected) {
			vector.StrokeRect(h.panel, float32(s.Rect.Min.X)-2, float32(s.Rect.Min.Y)-2,
				float32(s.Rect.Dx())+4, float32(s.Rect.Dy())+4, 2, color.White, false)
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}
