package raster

import (
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

// FromSVG rasterizes the vector source at path into a buffer targetWidth
// pixels wide. The height follows the source's aspect ratio, so square view
// boxes produce tile-sized (pooled) buffers and taller sources produce heap
// buffers.
func FromSVG(pool *pixel.BufferPool, path string, targetWidth int) (*pixel.Pixmap, error) {
	if targetWidth <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidTileWidth,
			"target width must be positive, got %d", targetWidth)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.New(errors.ErrCodeSourceNotFound, "no such source: %s", path)
	}

	icon, err := oksvg.ReadIcon(path, oksvg.StrictErrorMode)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeSourceInvalid, err, "parse %s", path)
	}
	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, errors.New(errors.ErrCodeSourceInvalid,
			"%s has a degenerate view box %gx%g", path, icon.ViewBox.W, icon.ViewBox.H)
	}

	w := targetWidth
	h := int(math.Round(float64(w) * icon.ViewBox.H / icon.ViewBox.W))
	if h <= 0 {
		h = 1
	}

	// rasterx renders premultiplied RGBA; convert into a straight-alpha
	// pixmap afterwards.
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(w, h, scanner)
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(dasher, 1.0)

	out, err := pool.Get(w, h)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeComputeFailed, err, "acquire raster buffer for %s", path)
	}
	draw.Draw(out.NRGBA(), out.NRGBA().Bounds(), rgba, image.Point{}, draw.Src)
	return out, nil
}
