package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"paint-canvas/internal/core"

	"github.com/sirupsen/logrus"
	xdraw "golang.org/x/image/draw"
)

// Scene is an immutable snapshot of everything one frame depends on.
type Scene struct {
	Size       core.Size
	GridSize   int
	CellSize   float64
	Background image.Image
	// Filled lists revealed cells with their target colors.
	Filled []core.Cell
}

// CellRect returns the integer pixel bounds of a cell, truncating like the
// touch mapping does.
func (s Scene) CellRect(row, col int) image.Rectangle {
	left := float64(col) * s.CellSize
	top := float64(row) * s.CellSize
	return image.Rect(int(left), int(top), int(left+s.CellSize), int(top+s.CellSize))
}

// Style holds the presentation knobs of the compositor.
type Style struct {
	GridColor color.RGBA
	GridWidth int
	// BackgroundAlpha dims the unrevealed picture; 1 draws it as is.
	BackgroundAlpha float64
	// FlatFill paints filled cells with their target color when there is no
	// background to reveal.
	FlatFill bool
}

// DefaultStyle matches the stock look: thin light grey lines, full picture.
func DefaultStyle() Style {
	return Style{GridColor: core.GridLineColor, GridWidth: 1, BackgroundAlpha: 1}
}

// Renderer composites scenes into RGBA frames. It caches the background
// stretched to the viewport so repeated frames only redo the cheap parts.
type Renderer struct {
	Style Style

	log          logrus.FieldLogger
	backdrop     *image.RGBA
	backdropSrc  image.Image
	backdropSize core.Size
	swatches     map[string]color.RGBA
}

// NewRenderer constructs a Renderer with the given style.
func NewRenderer(style Style, log logrus.FieldLogger) *Renderer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Renderer{Style: style, log: log, swatches: map[string]color.RGBA{}}
}

// NewFrame allocates a frame matching the scene size.
func NewFrame(size core.Size) *image.RGBA {
	w, h := size.W, size.H
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

// Render draws sc into dst: background, grid, then revealed cells. A panic
// while drawing is recovered and returned; dst then holds a partial frame.
func (r *Renderer) Render(dst *image.RGBA, sc Scene) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("render: %v", p)
			r.log.WithError(err).Error("frame aborted")
		}
	}()
	clearRGBA(dst)
	if sc.Size.Empty() {
		return nil
	}

	backdrop := r.backdropFor(sc)
	if backdrop != nil {
		r.drawBackdrop(dst, backdrop)
	}
	r.drawGrid(dst, sc)
	for _, cell := range sc.Filled {
		rect := sc.CellRect(cell.Row, cell.Col)
		switch {
		case backdrop != nil:
			copyRectRGBA(dst, backdrop, rect)
		case r.Style.FlatFill:
			fillRectRGBA(dst, rect, r.swatch(cell.TargetColorHex))
		}
	}
	return nil
}

func (r *Renderer) backdropFor(sc Scene) *image.RGBA {
	if sc.Background == nil {
		r.backdrop, r.backdropSrc = nil, nil
		return nil
	}
	if r.backdrop != nil && r.backdropSrc == sc.Background && r.backdropSize == sc.Size {
		return r.backdrop
	}
	dst := image.NewRGBA(image.Rect(0, 0, sc.Size.W, sc.Size.H))
	src := sc.Background
	if src.Bounds().Size() == dst.Rect.Size() {
		draw.Draw(dst, dst.Rect, src, src.Bounds().Min, draw.Src)
	} else {
		xdraw.BiLinear.Scale(dst, dst.Rect, src, src.Bounds(), xdraw.Src, nil)
	}
	r.backdrop, r.backdropSrc, r.backdropSize = dst, src, sc.Size
	return dst
}

func (r *Renderer) drawBackdrop(dst, backdrop *image.RGBA) {
	alpha := r.Style.BackgroundAlpha
	if alpha >= 1 {
		copyRectRGBA(dst, backdrop, dst.Rect)
		return
	}
	if alpha <= 0 {
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})
	draw.DrawMask(dst, dst.Rect, backdrop, image.Point{}, mask, image.Point{}, draw.Over)
}

func (r *Renderer) drawGrid(dst *image.RGBA, sc Scene) {
	if sc.GridSize <= 0 || sc.CellSize <= 0 {
		return
	}
	width := r.Style.GridWidth
	if width <= 0 {
		width = 1
	}
	w, h := sc.Size.W, sc.Size.H
	for i := 0; i <= sc.GridSize; i++ {
		pos := int(float64(i) * sc.CellSize)
		fillRectRGBA(dst, image.Rect(pos, 0, pos+width, h), r.Style.GridColor)
		fillRectRGBA(dst, image.Rect(0, pos, w, pos+width), r.Style.GridColor)
	}
}

func (r *Renderer) swatch(hex string) color.RGBA {
	if c, ok := r.swatches[hex]; ok {
		return c
	}
	c, err := core.ParseHex(hex)
	if err != nil {
		r.log.WithField("color", hex).WithError(err).Debug("unparseable target color")
		c = color.RGBA{A: 0xFF}
	}
	r.swatches[hex] = c
	return c
}
