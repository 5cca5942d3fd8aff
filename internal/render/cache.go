package render

import "image"

// frameCache recomposites scenes into a reused buffer. A frame whose render
// failed is redone on the next update even when nothing was marked dirty.
type frameCache struct {
	renderer *Renderer
	frame    *image.RGBA
	failed   bool
}

// update renders sc when redraw is set, the size changed or the previous
// render failed. It reports whether the buffer was rewritten.
func (fc *frameCache) update(sc Scene, redraw bool) (bool, error) {
	if fc.frame == nil || fc.frame.Rect.Dx() != sc.Size.W || fc.frame.Rect.Dy() != sc.Size.H {
		fc.frame = NewFrame(sc.Size)
		redraw = true
	}
	if !redraw && !fc.failed {
		return false, nil
	}
	err := fc.renderer.Render(fc.frame, sc)
	fc.failed = err != nil
	return true, err
}
