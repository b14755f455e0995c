package catalogue

import (
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// doorStyle selects the frame shape of a species' door and trapdoor. This
// is the full, closed set of shapes in the pack; species not listed in
// doorStyles use styleSolid.
type doorStyle int

const (
	// styleSolid is a plain plank door with a small window.
	styleSolid doorStyle = iota
	// styleBarred is an open-barred door, window across the full width.
	styleBarred
)

var doorStyles = map[string]doorStyle{
	"birch":  styleBarred,
	"jungle": styleBarred,
}

// frameSources maps a door style to its vector sources.
var frameSources = map[doorStyle]struct{ door, trapdoor string }{
	styleSolid:  {door: "door_solid", trapdoor: "trapdoor_solid"},
	styleBarred: {door: "door_barred", trapdoor: "trapdoor_barred"},
}

// WoodSets builds planks, log, door, and trapdoor for every wood species.
// Door and trapdoor stack their frame onto the species' planks texture, so
// the planks tree is rendered once per species no matter how many wood
// blocks reference it.
func WoodSets() ([]Material, error) {
	woods, err := palette.LoadWoods()
	if err != nil {
		return nil, err
	}

	var materials []Material
	for _, w := range woods {
		planks := shaded("planks", w.Planks, w.Highlight, w.Shadow)
		frames := frameSources[doorStyles[w.Name]]

		materials = append(materials,
			Material{
				Name:     w.Name + "_planks",
				Category: "block",
				Base:     planks,
			},
			Material{
				Name:     w.Name + "_log",
				Category: "block",
				Base: taskspec.StackOnColor{
					Background: w.Bark,
					Foreground: overlay("bark", w.Shadow),
				},
			},
			Material{
				Name:     w.Name + "_door",
				Category: "block",
				Base: taskspec.StackOnLayer{
					Background: planks,
					Foreground: overlay(frames.door, w.Shadow),
				},
			},
			Material{
				Name:     w.Name + "_trapdoor",
				Category: "block",
				Base: taskspec.StackOnLayer{
					Background: planks,
					Foreground: overlay(frames.trapdoor, w.Shadow),
				},
			},
		)
	}
	return materials, nil
}
