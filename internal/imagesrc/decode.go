package imagesrc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/h2non/filetype"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// MaxImageBytes caps how much of a source is read before decoding.
const MaxImageBytes = 64 << 20

// MaxImagePixels caps the declared width*height of a source image. Decoders
// allocate the full raster up front, so the header is checked first.
const MaxImagePixels = 8192 * 8192

// DefaultSize is the raster size backgrounds are normalized to.
var DefaultSize = image.Pt(600, 600)

// ErrNotImage is returned when the source bytes are not a known image type.
var ErrNotImage = errors.New("imagesrc: not an image")

// ErrImageTooLarge is returned when an image declares more than MaxImagePixels.
var ErrImageTooLarge = errors.New("imagesrc: image too large")

// Fetch opens ref and decodes it into an RGBA raster of the given size. A zero
// size keeps the source dimensions.
func Fetch(ctx context.Context, ref string, size image.Point) (*image.RGBA, error) {
	rc, err := Open(ctx, ref)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return Decode(rc, size)
}

// Decode reads an encoded image, checks its signature and normalizes it.
func Decode(r io.Reader, size image.Point) (*image.RGBA, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
	}
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("decode %s: empty image", format)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxImagePixels {
		return nil, fmt.Errorf("%w: %s is %dx%d", ErrImageTooLarge, format, cfg.Width, cfg.Height)
	}
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if src.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: empty image", format)
	}
	return Normalize(src, size), nil
}

// Normalize converts src to an RGBA raster anchored at the origin, scaling it
// bilinearly to size when size is non-zero.
func Normalize(src image.Image, size image.Point) *image.RGBA {
	if size.X <= 0 || size.Y <= 0 {
		size = src.Bounds().Size()
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if size == src.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
		return dst
	}
	xdraw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}
