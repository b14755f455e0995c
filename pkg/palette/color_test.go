package palette

import "testing"

func TestTransparentCollapse(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"BothTransparentDifferentRGB", RGBA(0xff, 0x00, 0x00, 0), RGBA(0x00, 0xff, 0x33, 0), true},
		{"TransparentVsZero", RGBA(0x12, 0x34, 0x56, 0), Transparent, true},
		{"OpaqueExactMatch", RGB(1, 2, 3), RGB(1, 2, 3), true},
		{"OpaqueDifferentRed", RGB(1, 2, 3), RGB(2, 2, 3), false},
		{"SameRGBDifferentAlpha", RGBA(10, 20, 30, 100), RGBA(10, 20, 30, 200), false},
		{"TransparentVsBarelyVisible", RGBA(10, 20, 30, 0), RGBA(10, 20, 30, 1), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			if tt.want && tt.a.Hash() != tt.b.Hash() {
				t.Errorf("equal colors must hash identically: %v vs %v", tt.a.Hash(), tt.b.Hash())
			}
			if tt.want && tt.a.Compare(tt.b) != 0 {
				t.Errorf("equal colors must compare as 0")
			}
		})
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	colors := []Color{
		Transparent,
		RGBA(0xff, 0, 0, 0), // collapses to Transparent
		RGBA(0, 0, 0, 1),
		Black,
		Stone,
		StoneHighlight,
		White,
	}

	for _, a := range colors {
		for _, b := range colors {
			ab, ba := a.Compare(b), b.Compare(a)
			if ab != -ba {
				t.Errorf("Compare not antisymmetric: %v vs %v (%d, %d)", a, b, ab, ba)
			}
			if (ab == 0) != a.Equal(b) {
				t.Errorf("Compare inconsistent with Equal: %v vs %v", a, b)
			}
		}
	}

	// Transitivity over the sorted sequence: each element <= the next.
	for i := 0; i < len(colors); i++ {
		for j := i; j < len(colors); j++ {
			for k := j; k < len(colors); k++ {
				if colors[i].Compare(colors[j]) <= 0 && colors[j].Compare(colors[k]) <= 0 {
					if colors[i].Compare(colors[k]) > 0 {
						t.Fatalf("Compare not transitive at %d,%d,%d", i, j, k)
					}
				}
			}
		}
	}
}

func TestWithAlphaScaled(t *testing.T) {
	tests := []struct {
		name   string
		in     Color
		factor float64
		want   uint8
	}{
		{"Identity", RGBA(1, 2, 3, 200), 1.0, 200},
		{"Half", RGBA(1, 2, 3, 200), 0.5, 100},
		{"Zero", RGBA(1, 2, 3, 200), 0, 0},
		{"ClampHigh", RGBA(1, 2, 3, 200), 1.5, 200},
		{"ClampLow", RGBA(1, 2, 3, 200), -0.5, 0},
		{"Truncates", RGBA(1, 2, 3, 255), 0.999, 254},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.WithAlphaScaled(tt.factor)
			if got.A != tt.want {
				t.Errorf("alpha = %d, want %d", got.A, tt.want)
			}
			if got.R != tt.in.R || got.G != tt.in.G || got.B != tt.in.B {
				t.Errorf("color channels must be untouched: got %v", got)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Color
		want string
	}{
		{Transparent, "transparent"},
		{RGBA(0xff, 0x12, 0x00, 0), "transparent"},
		{RGB(0x7e, 0x7e, 0x7e), "#7e7e7e"},
		{RGBA(0x10, 0x20, 0x30, 0x80), "#10203080"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String(%+v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
