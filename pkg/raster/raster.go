// Package raster implements the pixel operations of the texture build.
//
// Every function here is a pure transformation from input buffers and
// parameters to a freshly acquired output buffer: inputs are never mutated,
// so the same rendered buffer can safely feed several downstream operations
// running in parallel. Output buffers come from the shared [pixel.BufferPool]
// whenever the result has tile dimensions.
//
// All color math is straight-alpha 8-bit arithmetic with round-to-nearest
// division by 255.
package raster

import (
	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// div255 divides by 255 with rounding, the usual fixed-point idiom for
// 8-bit alpha arithmetic.
func div255(v uint32) uint32 {
	return (v + 127) / 255
}

// blendOver composites one straight-alpha foreground pixel over a background
// pixel with the standard "over" operator.
func blendOver(br, bg, bb, ba, fr, fg, fb, fa uint8) (r, g, b, a uint8) {
	if fa == 0xff || ba == 0 {
		return fr, fg, fb, fa
	}
	if fa == 0 {
		return br, bg, bb, ba
	}

	// Background weight after the foreground has been laid over it.
	wb := div255(uint32(ba) * uint32(255-fa))
	outA := uint32(fa) + wb
	if outA == 0 {
		return 0, 0, 0, 0
	}

	blend := func(fc, bc uint8) uint8 {
		return uint8((uint32(fc)*uint32(fa) + uint32(bc)*wb) / outA)
	}
	return blend(fr, br), blend(fg, bg), blend(fb, bb), uint8(outA)
}

// StackOnLayer alpha-composites foreground over background into a new
// buffer. Dimensions must match exactly.
func StackOnLayer(pool *pixel.BufferPool, background, foreground *pixel.Pixmap) (*pixel.Pixmap, error) {
	if background.Width() != foreground.Width() || background.Height() != foreground.Height() {
		return nil, errors.New(errors.ErrCodeInvalidSize,
			"stack size mismatch: background %dx%d, foreground %dx%d",
			background.Width(), background.Height(), foreground.Width(), foreground.Height())
	}

	out, err := pool.Get(background.Width(), background.Height())
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire stack buffer")
	}

	bp, fp, op := background.Pix(), foreground.Pix(), out.Pix()
	for i := 0; i < len(op); i += 4 {
		r, g, b, a := blendOver(
			bp[i], bp[i+1], bp[i+2], bp[i+3],
			fp[i], fp[i+1], fp[i+2], fp[i+3])
		op[i], op[i+1], op[i+2], op[i+3] = r, g, b, a
	}
	return out, nil
}
