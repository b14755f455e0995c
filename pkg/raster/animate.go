package raster

import (
	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// Animate assembles a vertical filmstrip from the background and the frames.
// The output is background.Width() wide and background.Height() * len(frames)
// tall; frame i occupies the row band [i*h, (i+1)*h) and equals the
// background composited with that frame. Frames appear strictly in index
// order. All inputs must share the background's dimensions.
//
// Filmstrips are taller than a tile, so the output always bypasses the pool.
func Animate(pool *pixel.BufferPool, background *pixel.Pixmap, frames []*pixel.Pixmap) (*pixel.Pixmap, error) {
	if len(frames) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "animation needs at least one frame")
	}
	w, h := background.Width(), background.Height()
	for i, f := range frames {
		if f.Width() != w || f.Height() != h {
			return nil, errors.New(errors.ErrCodeInvalidSize,
				"frame %d is %dx%d, want %dx%d", i, f.Width(), f.Height(), w, h)
		}
	}

	out, err := pool.Get(w, h*len(frames))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire filmstrip buffer")
	}

	bp, op := background.Pix(), out.Pix()
	for i, f := range frames {
		fp := f.Pix()
		offset := i * len(bp)
		for j := 0; j < len(bp); j += 4 {
			r, g, b, a := blendOver(
				bp[j], bp[j+1], bp[j+2], bp[j+3],
				fp[j], fp[j+1], fp[j+2], fp[j+3])
			k := offset + j
			op[k], op[k+1], op[k+2], op[k+3] = r, g, b, a
		}
	}
	return out, nil
}
