package catalogue

import (
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// ore parameterizes one ore family. Each entry yields a stone and a
// deepslate variant sharing the same recolored blob layer.
type ore struct {
	name  string
	blob  string
	color palette.Color
}

var ores = []ore{
	{"coal", "ore_blob", palette.Hex(0x303030)},
	{"iron", "ore_blob", palette.Hex(0xd8af93)},
	{"copper", "ore_blob", palette.Hex(0xe77c56)},
	{"gold", "ore_blob", palette.Hex(0xfcee4b)},
	{"redstone", "ore_blob", palette.Hex(0xff0000)},
	{"lapis", "lapis_blob", palette.Hex(0x1d4cc6)},
	{"diamond", "diamond_blob", palette.Hex(0x4aedd9)},
	{"emerald", "emerald_blob", palette.Hex(0x17dd62)},
}

// Ores builds the stone and deepslate ore blocks. Both variants of one ore
// share the recolored blob node, and all stone variants share one stone
// backdrop (likewise for deepslate), so a full ore build renders far fewer
// nodes than it writes textures.
func Ores() ([]Material, error) {
	stone := stoneBase()
	deepslate := deepslateBase()

	var materials []Material
	for _, o := range ores {
		blob := overlay(o.blob, o.color)
		materials = append(materials,
			Material{
				Name:     o.name + "_ore",
				Category: "block",
				Base:     taskspec.StackOnLayer{Background: stone, Foreground: blob},
			},
			Material{
				Name:     "deepslate_" + o.name + "_ore",
				Category: "block",
				Base:     taskspec.StackOnLayer{Background: deepslate, Foreground: blob},
			},
		)
	}
	return materials, nil
}
