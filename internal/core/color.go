package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// DefaultSelectedColorHex is the brush color before the host picks one.
	DefaultSelectedColorHex = "#FF0000"
	// FallbackColorHex replaces missing or malformed target colors.
	FallbackColorHex = "#000000"
)

// GridLineColor is the fixed stroke color of the grid overlay (#E0E0E0).
var GridLineColor = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}

// NormalizeHex trims surrounding whitespace and upper-cases a color string so
// that equal colors compare equal as plain strings.
func NormalizeHex(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// SameColor reports whether two color strings name the same color. The
// comparison is exact apart from letter case; no distance tolerance applies.
func SameColor(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// ParseHex converts "#rgb", "#rrggbb" or "#rrggbbaa" into an RGBA color.
func ParseHex(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(0xFF)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	if alpha == 0xFF {
		return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
	}
	// color.RGBA is alpha-premultiplied.
	return color.RGBA{
		R: uint8(uint16(r) * uint16(alpha) / 0xFF),
		G: uint8(uint16(g) * uint16(alpha) / 0xFF),
		B: uint8(uint16(b) * uint16(alpha) / 0xFF),
		A: alpha,
	}, nil
}
