//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"paint-canvas/internal/canvas"
	"paint-canvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay outlines the cell under the cursor in the brush color. Toggle with H.
type Overlay struct {
	canvas *canvas.Canvas
	show   bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(c *canvas.Canvas) *Overlay {
	o := &Overlay{canvas: c, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the visibility toggle.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.show = !o.show
	}
}

// Draw renders the hover outline onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show {
		return
	}
	mx, my := ebiten.CursorPosition()
	key, ok := o.canvas.CellAt(float64(mx), float64(my))
	if !ok || o.canvas.IsFilled(key) {
		return
	}
	col, err := core.ParseHex(o.canvas.SelectedColor())
	if err != nil {
		col = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	cs := o.canvas.CellSize()
	x0 := float64(key.Col) * cs
	y0 := float64(key.Row) * cs
	x1, y1 := x0+cs, y0+cs
	thickness := math.Max(1, math.Min(3, cs/8))
	o.drawLine(screen, x0, y0, x1, y0, thickness, col)
	o.drawLine(screen, x1, y0, x1, y1, thickness, col)
	o.drawLine(screen, x1, y1, x0, y1, thickness, col)
	o.drawLine(screen, x0, y1, x0, y0, thickness, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}
