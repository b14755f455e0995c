package taskspec

import (
	"testing"

	"github.com/tilesmith/tilesmith/pkg/palette"
)

// buildShared constructs a fresh Repaint(FromSVG("stone"), red) tree each
// call, simulating independently built catalogue entries.
func buildShared() Spec {
	return Repaint{Base: FromSVG{Source: "stone"}, Color: palette.RGB(0xff, 0, 0)}
}

func TestStructuralEquality(t *testing.T) {
	a, b := buildShared(), buildShared()
	if !Equal(a, b) {
		t.Error("independently built identical trees must be equal")
	}
	if Key(a) != Key(b) {
		t.Error("equal specs must share a key")
	}
	if Compare(a, b) != 0 {
		t.Error("equal specs must compare as 0")
	}
}

func TestInequality(t *testing.T) {
	base := FromSVG{Source: "stone"}
	tests := []struct {
		name string
		a, b Spec
	}{
		{"DifferentSource", FromSVG{Source: "stone"}, FromSVG{Source: "dirt"}},
		{"DifferentColor",
			Repaint{Base: base, Color: palette.RGB(1, 2, 3)},
			Repaint{Base: base, Color: palette.RGB(3, 2, 1)}},
		{"DifferentAlpha",
			Semitransparent{Base: base, Alpha: 0.5},
			Semitransparent{Base: base, Alpha: 0.25}},
		{"DifferentVariant", ToAlpha{Base: base}, Repaint{Base: base, Color: palette.Black}},
		{"SwappedLayers",
			StackOnLayer{Background: FromSVG{Source: "a"}, Foreground: FromSVG{Source: "b"}},
			StackOnLayer{Background: FromSVG{Source: "b"}, Foreground: FromSVG{Source: "a"}}},
		{"DifferentFrameOrder",
			Animate{Background: base, Frames: []Spec{FromSVG{Source: "f0"}, FromSVG{Source: "f1"}}},
			Animate{Background: base, Frames: []Spec{FromSVG{Source: "f1"}, FromSVG{Source: "f0"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Equal(tt.a, tt.b) {
				t.Errorf("specs must differ: %s vs %s", tt.a, tt.b)
			}
			if Key(tt.a) == Key(tt.b) {
				t.Error("distinct specs must have distinct keys")
			}
		})
	}
}

func TestSeparatorsInNamesCannotForgeStructure(t *testing.T) {
	bg := FromSVG{Source: "bg"}

	// A source name carrying the display form's own separators must not
	// make a one-frame animation collide with a two-frame one.
	oneFrame := Animate{Background: bg, Frames: []Spec{
		FromSVG{Source: `a");fromSVG("b`},
	}}
	twoFrames := Animate{Background: bg, Frames: []Spec{
		FromSVG{Source: "a"}, FromSVG{Source: "b"},
	}}
	if Equal(oneFrame, twoFrames) {
		t.Errorf("structurally different specs compare equal: %s", oneFrame)
	}
	if Key(oneFrame) == Key(twoFrames) {
		t.Error("structurally different specs share a key")
	}

	// Same hole on the destination list side.
	oneDest := PNGOutput{Base: bg, Destinations: []string{`a.png";"b.png`}}
	twoDests := PNGOutput{Base: bg, Destinations: []string{"a.png", "b.png"}}
	if Equal(oneDest, twoDests) || Key(oneDest) == Key(twoDests) {
		t.Error("destination list length must be part of the identity")
	}
}

func TestTransparentColorCollapsesInSpecs(t *testing.T) {
	base := FromSVG{Source: "overlay"}
	a := StackOnColor{Background: palette.RGBA(0xff, 0x00, 0x00, 0), Foreground: base}
	b := StackOnColor{Background: palette.RGBA(0x00, 0xff, 0x00, 0), Foreground: base}
	if !Equal(a, b) {
		t.Error("specs embedding equal (transparent) colors must be equal")
	}
}

func TestCompareIsDeterministicTotalOrder(t *testing.T) {
	base := FromSVG{Source: "stone"}
	specs := []Spec{
		FromSVG{Source: "a"},
		FromSVG{Source: "b"},
		Semitransparent{Base: base, Alpha: 0.5},
		Repaint{Base: base, Color: palette.Black},
		ToAlpha{Base: base},
		StackOnLayer{Background: base, Foreground: base},
		Animate{Background: base, Frames: []Spec{base}},
		PNGOutput{Base: base, Destinations: []string{"block/stone.png"}},
	}
	for i, a := range specs {
		for j, b := range specs {
			ab, ba := Compare(a, b), Compare(b, a)
			if ab != -ba {
				t.Errorf("Compare not antisymmetric for %d,%d", i, j)
			}
			if (ab == 0) != Equal(a, b) {
				t.Errorf("Compare inconsistent with Equal for %d,%d", i, j)
			}
		}
	}

	// Variant tag dominates the ordering.
	if Compare(FromSVG{Source: "zzz"}, PNGOutput{Base: base, Destinations: nil}) >= 0 {
		t.Error("FromSVG must order before PNGOutput regardless of fields")
	}
}

func TestChildren(t *testing.T) {
	bg := FromSVG{Source: "bg"}
	f0, f1 := FromSVG{Source: "f0"}, FromSVG{Source: "f1"}
	anim := Animate{Background: bg, Frames: []Spec{f0, f1}}
	children := anim.Children()
	if len(children) != 3 {
		t.Fatalf("Animate children = %d, want 3", len(children))
	}
	if !Equal(children[0], bg) || !Equal(children[1], f0) || !Equal(children[2], f1) {
		t.Error("Animate children out of order")
	}
	if len(None.Children()) != 0 {
		t.Error("None must have no children")
	}
}
