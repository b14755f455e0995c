// Package palette defines the canonical color model used throughout the
// texture build and the named color constants of the resource pack.
//
// Colors are 8-bit-per-channel sRGB with straight (non-premultiplied) alpha.
// The central type is [Color], which carries value semantics: two colors are
// interchangeable exactly when they are visually interchangeable. In
// particular every fully transparent color compares equal regardless of its
// RGB components, because transparent pixels carry no visible color
// information. This collapsing rule propagates into task deduplication, so it
// must hold for equality, ordering, and hashing alike.
package palette

import (
	"fmt"
	"image/color"
)

// Color is an sRGB color with straight alpha, 8 bits per channel.
//
// The zero value is fully transparent black, which compares equal to every
// other fully transparent color. Use [Color.Canonical] before storing a Color
// as a map key or embedding it in a derived identifier.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

// RGBA returns a color with an explicit alpha component.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Gray returns an opaque gray with all color channels set to v.
func Gray(v uint8) Color {
	return Color{R: v, G: v, B: v, A: 0xff}
}

// Hex returns an opaque color from a 24-bit 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: uint8(rgb >> 16),
		G: uint8(rgb >> 8),
		B: uint8(rgb),
		A: 0xff,
	}
}

// Transparent is the canonical fully transparent color.
var Transparent = Color{}

// Canonical returns the representative of the color's equality class.
// Fully transparent colors all map to [Transparent]; every other color maps
// to itself.
func (c Color) Canonical() Color {
	if c.A == 0 {
		return Transparent
	}
	return c
}

// Equal reports whether two colors are visually interchangeable.
// All fully transparent colors are equal to each other.
func (c Color) Equal(other Color) bool {
	return c.Canonical() == other.Canonical()
}

// Compare returns -1, 0, or +1 ordering colors lexicographically by
// (R, G, B, A) after canonicalization. The order is total and consistent
// with Equal, so it is safe for deterministic iteration over color-keyed
// collections.
func (c Color) Compare(other Color) int {
	a, b := c.Canonical(), other.Canonical()
	switch {
	case a == b:
		return 0
	case a.packed() < b.packed():
		return -1
	default:
		return 1
	}
}

// Hash returns a hash consistent with Equal: all fully transparent colors
// hash identically.
func (c Color) Hash() uint32 {
	return c.Canonical().packed()
}

// packed returns the canonical channels packed big-endian into a uint32.
func (c Color) packed() uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

// WithAlphaScaled returns the color with its alpha channel multiplied by
// factor and truncated to 8 bits. Factor is clamped to [0, 1].
func (c Color) WithAlphaScaled(factor float64) Color {
	if factor <= 0 {
		return Color{R: c.R, G: c.G, B: c.B, A: 0}
	}
	if factor >= 1 {
		return c
	}
	c.A = uint8(float64(c.A) * factor)
	return c
}

// IsOpaque reports whether the color has full alpha.
func (c Color) IsOpaque() bool { return c.A == 0xff }

// IsTransparent reports whether the color is fully transparent.
func (c Color) IsTransparent() bool { return c.A == 0 }

// NRGBA converts the color to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns a stable textual form used when deriving asset identifiers.
// Fully transparent colors render as "transparent" so that the display form
// is injective on equality classes.
func (c Color) String() string {
	cc := c.Canonical()
	if cc.A == 0 {
		return "transparent"
	}
	if cc.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", cc.R, cc.G, cc.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", cc.R, cc.G, cc.B, cc.A)
}
