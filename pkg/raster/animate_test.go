package raster

import (
	"testing"

	"github.com/tilesmith/tilesmith/pkg/errors"
	"github.com/tilesmith/tilesmith/pkg/pixel"
)

func TestAnimateLayout(t *testing.T) {
	pool := newPool(t, 8)
	bg := randomPixmap(t, pool, 8, 8, 10)
	frames := []*pixel.Pixmap{
		randomPixmap(t, pool, 8, 8, 11),
		randomPixmap(t, pool, 8, 8, 12),
		randomPixmap(t, pool, 8, 8, 13),
	}

	strip, err := Animate(pool, bg, frames)
	if err != nil {
		t.Fatal(err)
	}
	if strip.Width() != 8 || strip.Height() != 8*len(frames) {
		t.Fatalf("filmstrip is %dx%d, want 8x%d", strip.Width(), strip.Height(), 8*len(frames))
	}

	// Each row band must equal the background composited with that frame.
	for i, f := range frames {
		want, err := StackOnLayer(pool, bg, f)
		if err != nil {
			t.Fatal(err)
		}
		wp := want.Pix()
		sp := strip.Pix()[i*len(wp) : (i+1)*len(wp)]
		for j := range wp {
			if sp[j] != wp[j] {
				t.Fatalf("frame %d byte %d: got %d, want %d", i, j, sp[j], wp[j])
			}
		}
	}
}

func TestAnimateRejectsEmptyAndMismatched(t *testing.T) {
	pool := newPool(t, 8)
	bg := randomPixmap(t, pool, 8, 8, 20)

	if _, err := Animate(pool, bg, nil); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty frames error = %v, want INVALID_INPUT", err)
	}

	tall, err := pool.Get(8, 16)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Animate(pool, bg, []*pixel.Pixmap{tall}); !errors.Is(err, errors.ErrCodeInvalidSize) {
		t.Errorf("mismatched frame error = %v, want INVALID_SIZE", err)
	}
}
