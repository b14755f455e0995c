// Package pixel provides the raster buffer type shared by every image
// operation and a reuse pool for tile-sized buffers.
//
// A [Pixmap] stores straight-alpha RGBA bytes (NRGBA layout). Buffers with
// the pool's standard tile dimensions are recycled through a [BufferPool] to
// avoid repeated allocation across thousands of texture builds; buffers with
// any other dimensions (animation filmstrips, upscaled outputs) are plain
// heap allocations. Callers use both kinds through the same interface and
// release them the same way: Release on a non-pooled pixmap is a no-op.
package pixel

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidSize is returned when a buffer is requested with non-positive
// dimensions.
var ErrInvalidSize = errors.New("pixmap dimensions must be positive")

// Pixmap is a rectangular RGBA buffer with straight alpha.
//
// The pixel at (x, y) occupies pix[(y*width+x)*4 : +4] in R, G, B, A order.
// A Pixmap must not be used after Release.
type Pixmap struct {
	width  int
	height int
	pix    []uint8

	// pool is non-nil when the buffer was borrowed from a BufferPool and
	// must be returned there on Release.
	pool *BufferPool
}

// NewPixmap allocates a pixmap outside any pool, cleared to transparent.
func NewPixmap(width, height int) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	return &Pixmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}, nil
}

// Width returns the buffer width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the buffer height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Pix returns the raw pixel bytes in NRGBA order.
func (p *Pixmap) Pix() []uint8 { return p.pix }

// NRGBA wraps the buffer as a standard library image without copying.
// Mutations through the returned image are visible in the pixmap.
func (p *Pixmap) NRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    p.pix,
		Stride: p.width * 4,
		Rect:   image.Rect(0, 0, p.width, p.height),
	}
}

// At returns the pixel at (x, y) as R, G, B, A bytes.
func (p *Pixmap) At(x, y int) (r, g, b, a uint8) {
	i := (y*p.width + x) * 4
	return p.pix[i], p.pix[i+1], p.pix[i+2], p.pix[i+3]
}

// Set writes the pixel at (x, y).
func (p *Pixmap) Set(x, y int, r, g, b, a uint8) {
	i := (y*p.width + x) * 4
	p.pix[i] = r
	p.pix[i+1] = g
	p.pix[i+2] = b
	p.pix[i+3] = a
}

// Clear fills the whole buffer with transparent black.
func (p *Pixmap) Clear() {
	clear(p.pix)
}

// CopyFrom overwrites this buffer with the contents of src.
// Dimensions must match exactly.
func (p *Pixmap) CopyFrom(src *Pixmap) error {
	if p.width != src.width || p.height != src.height {
		return fmt.Errorf("copy size mismatch: %dx%d into %dx%d",
			src.width, src.height, p.width, p.height)
	}
	copy(p.pix, src.pix)
	return nil
}

// Release returns a pooled buffer to its pool. For heap-allocated pixmaps it
// is a no-op. The pixmap must not be used afterwards.
func (p *Pixmap) Release() {
	if p.pool != nil {
		p.pool.put(p)
	}
}
