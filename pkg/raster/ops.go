package raster

import (
	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// AlphaScaler multiplies alpha channels by a fixed factor through a
// precomputed 256-entry lookup table. Building the table once per scaler
// replaces a floating multiply-and-round per pixel with an array index; a
// scaler is typically constructed once per graph node and reused for every
// buffer that node processes.
type AlphaScaler struct {
	alpha float64
	lut   [256]uint8
}

// NewAlphaScaler creates a scaler for the given factor in [0, 1].
func NewAlphaScaler(alpha float64) (*AlphaScaler, error) {
	if alpha < 0 || alpha > 1 {
		return nil, errors.New(errors.ErrCodeInvalidAlpha,
			"alpha factor %v out of range [0, 1]", alpha)
	}
	s := &AlphaScaler{alpha: alpha}
	for i := range s.lut {
		s.lut[i] = uint8(float64(i)*alpha + 0.5)
	}
	return s, nil
}

// Alpha returns the scaler's factor.
func (s *AlphaScaler) Alpha() float64 { return s.alpha }

// Apply returns a copy of src with every pixel's alpha scaled by the
// factor. Color channels pass through untouched.
func (s *AlphaScaler) Apply(pool *pixel.BufferPool, src *pixel.Pixmap) (*pixel.Pixmap, error) {
	out, err := pool.Get(src.Width(), src.Height())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire alpha buffer")
	}
	sp, op := src.Pix(), out.Pix()
	for i := 0; i < len(op); i += 4 {
		op[i] = sp[i]
		op[i+1] = sp[i+1]
		op[i+2] = sp[i+2]
		op[i+3] = s.lut[sp[i+3]]
	}
	return out, nil
}

// MakeSemitransparent scales src's alpha channel by alpha.
// Prefer holding an [AlphaScaler] when applying the same factor repeatedly.
func MakeSemitransparent(pool *pixel.BufferPool, src *pixel.Pixmap, alpha float64) (*pixel.Pixmap, error) {
	s, err := NewAlphaScaler(alpha)
	if err != nil {
		return nil, err
	}
	return s.Apply(pool, src)
}

// Paint produces a solid-color image masked by the input's per-pixel
// coverage. The output alpha is maskAlpha * color.A / 255; wherever the mask
// alpha is zero the output pixel is fully transparent regardless of color.
func Paint(pool *pixel.BufferPool, mask *pixel.Pixmap, c palette.Color) (*pixel.Pixmap, error) {
	out, err := pool.Get(mask.Width(), mask.Height())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire paint buffer")
	}
	mp, op := mask.Pix(), out.Pix()
	for i := 0; i < len(op); i += 4 {
		ma := mp[i+3]
		if ma == 0 {
			continue // buffer starts transparent
		}
		op[i] = c.R
		op[i+1] = c.G
		op[i+2] = c.B
		op[i+3] = uint8(div255(uint32(ma) * uint32(c.A)))
	}
	return out, nil
}

// ToMask extracts the per-pixel alpha of src as an independent coverage
// buffer. Color channels of the result are zero.
func ToMask(pool *pixel.BufferPool, src *pixel.Pixmap) (*pixel.Pixmap, error) {
	out, err := pool.Get(src.Width(), src.Height())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire mask buffer")
	}
	sp, op := src.Pix(), out.Pix()
	for i := 0; i < len(op); i += 4 {
		op[i+3] = sp[i+3]
	}
	return out, nil
}

// StackOnColor composites foreground over a canvas filled with the given
// color, equivalent to filling a same-size backdrop and applying the "over"
// operator.
func StackOnColor(pool *pixel.BufferPool, c palette.Color, foreground *pixel.Pixmap) (*pixel.Pixmap, error) {
	out, err := pool.Get(foreground.Width(), foreground.Height())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire backdrop buffer")
	}
	fp, op := foreground.Pix(), out.Pix()
	for i := 0; i < len(op); i += 4 {
		r, g, b, a := blendOver(c.R, c.G, c.B, c.A, fp[i], fp[i+1], fp[i+2], fp[i+3])
		op[i], op[i+1], op[i+2], op[i+3] = r, g, b, a
	}
	return out, nil
}
