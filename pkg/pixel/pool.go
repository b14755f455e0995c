package pixel

import (
	"fmt"
	"sync"
)

// BufferPool recycles pixmaps of one fixed tile size.
//
// Texture builds produce thousands of intermediate buffers that nearly all
// share the standard square tile dimensions, so those are served from a
// sync.Pool. Requests for any other size fall through to a plain allocation
// that the pool never sees again.
//
// Returned buffers are cleared to transparent before reuse; a buffer must
// never be read after Release.
//
// BufferPool is safe for concurrent use.
type BufferPool struct {
	tileWidth  int
	tileHeight int
	pool       sync.Pool
}

// NewBufferPool creates a pool for square tiles of the given width.
func NewBufferPool(tileWidth int) (*BufferPool, error) {
	return NewBufferPoolSize(tileWidth, tileWidth)
}

// NewBufferPoolSize creates a pool for tiles of the given dimensions.
func NewBufferPoolSize(tileWidth, tileHeight int) (*BufferPool, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, tileWidth, tileHeight)
	}
	p := &BufferPool{tileWidth: tileWidth, tileHeight: tileHeight}
	p.pool.New = func() any {
		return &Pixmap{
			width:  tileWidth,
			height: tileHeight,
			pix:    make([]uint8, tileWidth*tileHeight*4),
			pool:   p,
		}
	}
	return p, nil
}

// TileWidth returns the standard tile width served from the pool.
func (p *BufferPool) TileWidth() int { return p.tileWidth }

// Get returns a transparent pixmap with the requested dimensions.
// Tile-sized requests are served from the pool; anything else allocates.
func (p *BufferPool) Get(width, height int) (*Pixmap, error) {
	if width == p.tileWidth && height == p.tileHeight {
		return p.pool.Get().(*Pixmap), nil
	}
	return NewPixmap(width, height)
}

// put clears the pixmap and returns it to the pool.
func (p *BufferPool) put(pm *Pixmap) {
	pm.Clear()
	p.pool.Put(pm)
}
