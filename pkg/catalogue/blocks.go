package catalogue

import (
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// shaded builds the standard block texture: a noise layer recolored with the
// base shade over a solid backdrop, with highlight and shadow overlays. All
// simple blocks and ore backdrops go through this one helper so equal
// parameter sets produce structurally equal trees.
func shaded(source string, base, highlight, shadow palette.Color) taskspec.Spec {
	backdrop := taskspec.StackOnColor{
		Background: base,
		Foreground: overlay(source+"_highlight", highlight),
	}
	return taskspec.StackOnLayer{
		Background: backdrop,
		Foreground: overlay(source+"_shadow", shadow),
	}
}

// overlay recolors the coverage mask of a vector source with a solid color.
func overlay(source string, color palette.Color) taskspec.Spec {
	return taskspec.Repaint{
		Base:  taskspec.ToAlpha{Base: taskspec.FromSVG{Source: source}},
		Color: color,
	}
}

// stoneBase is the backdrop shared by plain stone and every stone ore.
func stoneBase() taskspec.Spec {
	return shaded("stone", palette.Stone, palette.StoneHighlight, palette.StoneShadow)
}

// deepslateBase is the backdrop shared by plain deepslate and its ores.
func deepslateBase() taskspec.Spec {
	return shaded("deepslate", palette.Deepslate, palette.DeepslateHighlight, palette.DeepslateShadow)
}

// simpleBlock parameterizes one standalone shaded block.
type simpleBlock struct {
	name      string
	source    string
	base      palette.Color
	highlight palette.Color
	shadow    palette.Color
}

var simpleBlocks = []simpleBlock{
	{"stone", "stone", palette.Stone, palette.StoneHighlight, palette.StoneShadow},
	{"deepslate", "deepslate", palette.Deepslate, palette.DeepslateHighlight, palette.DeepslateShadow},
	{"netherrack", "netherrack", palette.Netherrack, palette.NetherrackHighlight, palette.NetherrackShadow},
	{"grass_block_top", "grass", palette.BiomeColorable, palette.BiomeColorableHighlight, palette.BiomeColorableShadow},
}

// SimpleBlocks builds the standalone shaded blocks. Plain stone and
// deepslate reuse the exact base trees the ores stack onto, so they add no
// extra renders to a full build.
func SimpleBlocks() ([]Material, error) {
	materials := make([]Material, 0, len(simpleBlocks))
	for _, b := range simpleBlocks {
		materials = append(materials, Material{
			Name:     b.name,
			Category: "block",
			Base:     shaded(b.source, b.base, b.highlight, b.shadow),
		})
	}
	return materials, nil
}
