// Package taskspec defines the node language of the texture build: an
// immutable, recursively composed description of one image-processing step
// and its dependencies.
//
// # Structural identity
//
// Specs are compared by structure, never by pointer identity. Two trees built
// independently that describe the same computation are equal, hash to the
// same key, and collapse to a single node when registered into a build graph.
// Identity is derived from the display form: [Spec.String] encodes the full
// structure of a spec injectively (raw string fields quoted so separator
// characters cannot forge structure, colors canonicalized, floats in
// shortest round-trip form), [Key] hashes it, and [Compare] orders specs by
// variant tag and then display form. The same display form also seeds the asset
// identifiers that bind producers to consumers in the graph, so it must stay
// stable across releases of the catalogue.
//
// # Immutability
//
// Specs are built bottom-up with the constructor functions and composed via
// combinators. They must never be mutated after construction; the slices held
// by [Animate] and [PNGOutput] are owned by the spec once passed in.
package taskspec

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/tilesmith/tilesmith/pkg/palette"
)

// Kind identifies a spec variant. The numeric order of the tags defines the
// primary sort key of [Compare], so new variants must be appended.
type Kind int

const (
	// KindNone is the absence placeholder. It must never reach a build
	// graph; the builder rejects it as a programmer error.
	KindNone Kind = iota
	// KindFromSVG rasterizes a vector source at the configured tile width.
	KindFromSVG
	// KindSemitransparent scales the alpha channel of its base by a factor.
	KindSemitransparent
	// KindRepaint recolors an alpha mask with a solid color.
	KindRepaint
	// KindToAlpha extracts the coverage mask of a color image.
	KindToAlpha
	// KindStackOnLayer alpha-composites a foreground over a background.
	KindStackOnLayer
	// KindStackOnColor composites a foreground over a solid backdrop.
	KindStackOnColor
	// KindAnimate concatenates background-composited frames vertically.
	KindAnimate
	// KindPNGOutput writes the rendered base to one or more destinations.
	KindPNGOutput
)

var kindNames = map[Kind]string{
	KindNone:            "none",
	KindFromSVG:         "fromSVG",
	KindSemitransparent: "semitransparent",
	KindRepaint:         "repaint",
	KindToAlpha:         "toAlpha",
	KindStackOnLayer:    "stack",
	KindStackOnColor:    "stackOnColor",
	KindAnimate:         "animate",
	KindPNGOutput:       "pngOutput",
}

// String returns the variant tag name.
func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// Spec is one node of a texture computation. Implementations are the variant
// structs in this package and nothing else.
type Spec interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Children returns the dependency specs in declaration order.
	Children() []Spec
	// String returns the canonical display form encoding the full
	// structure. Equal specs have equal display forms and vice versa.
	String() string
}

// Key returns the structural identity of a spec as a hex-encoded SHA-256 of
// its display form. Equal specs share a key; the key doubles as the node
// identifier in the build graph.
func Key(s Spec) string {
	sum := sha256.Sum256([]byte(s.String()))
	return hex.EncodeToString(sum[:])
}

// Equal reports structural equality.
func Equal(a, b Spec) bool {
	return a.String() == b.String()
}

// Compare orders specs deterministically: by variant tag first, then by
// display form. The order is total and consistent with Equal, which makes
// iteration over spec-keyed collections reproducible.
func Compare(a, b Spec) int {
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	return strings.Compare(a.String(), b.String())
}

// None is the placeholder spec. Registering it into a graph is an error.
var None Spec = noneSpec{}

type noneSpec struct{}

func (noneSpec) Kind() Kind       { return KindNone }
func (noneSpec) Children() []Spec { return nil }
func (noneSpec) String() string   { return "none" }

// FromSVG is a leaf spec rasterizing the named vector source.
// Source is the logical name of the file; directory and extension are
// resolved by the build configuration.
type FromSVG struct {
	Source string
}

func (s FromSVG) Kind() Kind       { return KindFromSVG }
func (s FromSVG) Children() []Spec { return nil }

// String quotes the source name; an unescaped name could mimic the display
// form's own separators and make distinct trees collide.
func (s FromSVG) String() string { return "fromSVG(" + strconv.Quote(s.Source) + ")" }

// Semitransparent scales the alpha channel of Base by Alpha in [0, 1].
type Semitransparent struct {
	Base  Spec
	Alpha float64
}

func (s Semitransparent) Kind() Kind       { return KindSemitransparent }
func (s Semitransparent) Children() []Spec { return []Spec{s.Base} }

func (s Semitransparent) String() string {
	return "semitransparent(" + s.Base.String() + "," +
		strconv.FormatFloat(s.Alpha, 'g', -1, 64) + ")"
}

// Repaint recolors the alpha mask of Base with a solid color, using the
// per-pixel alpha as a coverage mask.
type Repaint struct {
	Base  Spec
	Color palette.Color
}

func (s Repaint) Kind() Kind       { return KindRepaint }
func (s Repaint) Children() []Spec { return []Spec{s.Base} }

func (s Repaint) String() string {
	return "repaint(" + s.Base.String() + "," + s.Color.String() + ")"
}

// ToAlpha extracts a single-channel coverage mask from Base's alpha channel.
type ToAlpha struct {
	Base Spec
}

func (s ToAlpha) Kind() Kind       { return KindToAlpha }
func (s ToAlpha) Children() []Spec { return []Spec{s.Base} }
func (s ToAlpha) String() string   { return "toAlpha(" + s.Base.String() + ")" }

// StackOnLayer alpha-composites Foreground over Background.
type StackOnLayer struct {
	Background Spec
	Foreground Spec
}

func (s StackOnLayer) Kind() Kind       { return KindStackOnLayer }
func (s StackOnLayer) Children() []Spec { return []Spec{s.Background, s.Foreground} }

func (s StackOnLayer) String() string {
	return "stack(" + s.Background.String() + "," + s.Foreground.String() + ")"
}

// StackOnColor composites Foreground over a solid-color backdrop.
type StackOnColor struct {
	Background palette.Color
	Foreground Spec
}

func (s StackOnColor) Kind() Kind       { return KindStackOnColor }
func (s StackOnColor) Children() []Spec { return []Spec{s.Foreground} }

func (s StackOnColor) String() string {
	return "stackOnColor(" + s.Background.String() + "," + s.Foreground.String() + ")"
}

// Animate vertically concatenates Background-composited Frames into a
// filmstrip, one frame per tile-height row, in index order.
type Animate struct {
	Background Spec
	Frames     []Spec
}

func (s Animate) Kind() Kind { return KindAnimate }

func (s Animate) Children() []Spec {
	children := make([]Spec, 0, len(s.Frames)+1)
	children = append(children, s.Background)
	children = append(children, s.Frames...)
	return children
}

func (s Animate) String() string {
	var b strings.Builder
	b.WriteString("animate(")
	b.WriteString(s.Background.String())
	b.WriteString(",[")
	for i, f := range s.Frames {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(f.String())
	}
	b.WriteString("])")
	return b.String()
}

// PNGOutput is a sink writing the rendered Base to every destination path.
// The first destination receives the encoded file; the rest become
// filesystem links to it.
type PNGOutput struct {
	Base         Spec
	Destinations []string
}

func (s PNGOutput) Kind() Kind       { return KindPNGOutput }
func (s PNGOutput) Children() []Spec { return []Spec{s.Base} }

func (s PNGOutput) String() string {
	var b strings.Builder
	b.WriteString("pngOutput(")
	b.WriteString(s.Base.String())
	b.WriteString(",[")
	for i, d := range s.Destinations {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Quote(d))
	}
	b.WriteString("])")
	return b.String()
}
