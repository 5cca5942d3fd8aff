package render

import (
	"image"
	"image/color"
)

// fillRectRGBA writes c into every pixel of r, clipped to the buffer.
func fillRectRGBA(buf *image.RGBA, r image.Rectangle, c color.RGBA) {
	r = r.Intersect(buf.Rect)
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		base := buf.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			buf.Pix[base+0] = c.R
			buf.Pix[base+1] = c.G
			buf.Pix[base+2] = c.B
			buf.Pix[base+3] = c.A
			base += 4
		}
	}
}

// copyRectRGBA copies the pixels of r from src into dst at the same
// coordinates. Both buffers must share an origin.
func copyRectRGBA(dst, src *image.RGBA, r image.Rectangle) {
	r = r.Intersect(dst.Rect).Intersect(src.Rect)
	if r.Empty() {
		return
	}
	n := r.Dx() * 4
	for y := r.Min.Y; y < r.Max.Y; y++ {
		d := dst.PixOffset(r.Min.X, y)
		s := src.PixOffset(r.Min.X, y)
		copy(dst.Pix[d:d+n], src.Pix[s:s+n])
	}
}

// clearRGBA resets the buffer to transparent black.
func clearRGBA(buf *image.RGBA) {
	for i := range buf.Pix {
		buf.Pix[i] = 0
	}
}
