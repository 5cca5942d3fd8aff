//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// FramePainter uploads composited frames to a GPU image.
type FramePainter struct {
	cache frameCache
	img   *ebiten.Image
}

// NewFramePainter wraps a Renderer for on-screen use.
func NewFramePainter(r *Renderer) *FramePainter {
	return &FramePainter{cache: frameCache{renderer: r}}
}

// Blit draws the scene onto dst. The frame is only recomposited when redraw
// is set, the viewport changed size or the last frame failed to render.
func (fp *FramePainter) Blit(dst *ebiten.Image, sc Scene, redraw bool) error {
	if sc.Size.Empty() {
		return nil
	}
	if fp.img == nil || fp.img.Bounds().Dx() != sc.Size.W || fp.img.Bounds().Dy() != sc.Size.H {
		if fp.img != nil {
			fp.img.Dispose()
		}
		fp.img = ebiten.NewImage(sc.Size.W, sc.Size.H)
		redraw = true
	}
	changed, err := fp.cache.update(sc, redraw)
	if changed {
		fp.img.WritePixels(fp.cache.frame.Pix)
	}
	dst.DrawImage(fp.img, &ebiten.DrawImageOptions{})
	return err
}
