package raster

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// Upscale enlarges src to newWidth with nearest-neighbor sampling,
// replicating each source pixel into an S x S block where
// S = newWidth / src.Width(). newWidth must be an exact multiple of the
// source width; anything else would shear pixel boundaries.
func Upscale(pool *pixel.BufferPool, src *pixel.Pixmap, newWidth int) (*pixel.Pixmap, error) {
	w, h := src.Width(), src.Height()
	if newWidth <= 0 || newWidth%w != 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize,
			"upscale width %d is not a positive multiple of source width %d", newWidth, w)
	}

	scale := newWidth / w
	out, err := pool.Get(newWidth, h*scale)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire upscale buffer")
	}

	dst := out.NRGBA()
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src.NRGBA(), image.Rect(0, 0, w, h), xdraw.Src, nil)
	return out, nil
}
