package raster

import (
	"math/rand"
	"testing"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

func newPool(t *testing.T, tileWidth int) *pixel.BufferPool {
	t.Helper()
	pool, err := pixel.NewBufferPool(tileWidth)
	if err != nil {
		t.Fatal(err)
	}
	return pool
}

// randomPixmap fills a tile with deterministic pseudo-random pixels.
func randomPixmap(t *testing.T, pool *pixel.BufferPool, w, h int, seed int64) *pixel.Pixmap {
	t.Helper()
	pm, err := pool.Get(w, h)
	if err != nil {
		t.Fatal(err)
	}
	rng := rand.New(rand.NewSource(seed))
	p := pm.Pix()
	for i := range p {
		p[i] = uint8(rng.Intn(256))
	}
	return pm
}

func TestAlphaScalerRange(t *testing.T) {
	for _, bad := range []float64{-0.1, 1.1, 2} {
		if _, err := NewAlphaScaler(bad); !errors.Is(err, errors.ErrCodeInvalidAlpha) {
			t.Errorf("NewAlphaScaler(%v) error = %v, want INVALID_ALPHA", bad, err)
		}
	}
}

func TestSemitransparentComposition(t *testing.T) {
	pool := newPool(t, 8)
	src := randomPixmap(t, pool, 8, 8, 1)

	const x, y = 0.8, 0.5

	first, err := MakeSemitransparent(pool, src, x)
	if err != nil {
		t.Fatal(err)
	}
	second, err := MakeSemitransparent(pool, first, y)
	if err != nil {
		t.Fatal(err)
	}
	direct, err := MakeSemitransparent(pool, src, x*y)
	if err != nil {
		t.Fatal(err)
	}

	sp, dp := second.Pix(), direct.Pix()
	for i := 3; i < len(sp); i += 4 {
		diff := int(sp[i]) - int(dp[i])
		if diff < -1 || diff > 1 {
			t.Fatalf("alpha at byte %d: chained %d vs direct %d", i, sp[i], dp[i])
		}
	}
	// Color channels untouched by either route.
	orig := src.Pix()
	for i := 0; i < len(sp); i += 4 {
		if sp[i] != orig[i] || sp[i+1] != orig[i+1] || sp[i+2] != orig[i+2] {
			t.Fatalf("color channels changed at byte %d", i)
		}
	}
}

func TestCompositingIdentityOverTransparent(t *testing.T) {
	pool := newPool(t, 8)
	canvas, err := pool.Get(8, 8) // starts fully transparent
	if err != nil {
		t.Fatal(err)
	}
	x := randomPixmap(t, pool, 8, 8, 2)

	out, err := StackOnLayer(pool, canvas, x)
	if err != nil {
		t.Fatal(err)
	}
	op, xp := out.Pix(), x.Pix()
	for i := range op {
		if op[i] != xp[i] {
			t.Fatalf("byte %d: got %d, want %d", i, op[i], xp[i])
		}
	}
}

func TestStackSizeMismatch(t *testing.T) {
	pool := newPool(t, 8)
	a, _ := pool.Get(8, 8)
	b, _ := pool.Get(8, 16)
	if _, err := StackOnLayer(pool, a, b); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("error = %v, want INVALID_SIZE", err)
	}
}

func TestPaintMasking(t *testing.T) {
	pool := newPool(t, 4)
	mask, err := pool.Get(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	alphas := []uint8{0, 1, 127, 255}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			mask.Set(x, y, 0, 0, 0, alphas[(y*4+x)%len(alphas)])
		}
	}

	red := palette.RGB(0xff, 0, 0)
	out, err := Paint(pool, mask, red)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, ma := mask.At(x, y)
			r, g, b, a := out.At(x, y)
			if ma == 0 {
				if r != 0 || g != 0 || b != 0 || a != 0 {
					t.Fatalf("(%d,%d): masked-out pixel must be fully transparent", x, y)
				}
				continue
			}
			// Opaque paint color: output alpha equals mask alpha.
			if a != ma {
				t.Fatalf("(%d,%d): alpha %d, want %d", x, y, a, ma)
			}
			if r != 0xff || g != 0 || b != 0 {
				t.Fatalf("(%d,%d): color %d,%d,%d, want pure red", x, y, r, g, b)
			}
		}
	}
}

func TestPaintTranslucentColor(t *testing.T) {
	pool := newPool(t, 2)
	mask, _ := pool.Get(2, 2)
	mask.Set(0, 0, 0, 0, 0, 200)

	out, err := Paint(pool, mask, palette.RGBA(0, 0, 0xff, 128))
	if err != nil {
		t.Fatal(err)
	}
	_, _, _, a := out.At(0, 0)
	// 200 * 128 / 255 rounded.
	if want := uint8(100); a != want && a != want+1 {
		t.Errorf("alpha = %d, want ~%d", a, want)
	}
}

func TestToMask(t *testing.T) {
	pool := newPool(t, 4)
	src := randomPixmap(t, pool, 4, 4, 3)

	mask, err := ToMask(pool, src)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			_, _, _, sa := src.At(x, y)
			r, g, b, a := mask.At(x, y)
			if a != sa {
				t.Fatalf("(%d,%d): mask alpha %d, want %d", x, y, a, sa)
			}
			if r != 0 || g != 0 || b != 0 {
				t.Fatalf("(%d,%d): mask color channels must be zero", x, y)
			}
		}
	}
}

func TestStackOnColorMatchesFilledBackdrop(t *testing.T) {
	pool := newPool(t, 8)
	fg := randomPixmap(t, pool, 8, 8, 4)
	c := palette.RGB(0x10, 0x80, 0x30)

	direct, err := StackOnColor(pool, c, fg)
	if err != nil {
		t.Fatal(err)
	}

	backdrop, _ := pool.Get(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			backdrop.Set(x, y, c.R, c.G, c.B, c.A)
		}
	}
	layered, err := StackOnLayer(pool, backdrop, fg)
	if err != nil {
		t.Fatal(err)
	}

	dp, lp := direct.Pix(), layered.Pix()
	for i := range dp {
		if dp[i] != lp[i] {
			t.Fatalf("byte %d: StackOnColor %d vs filled backdrop %d", i, dp[i], lp[i])
		}
	}
}
