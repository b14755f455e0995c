// Package catalogue defines the material catalogue of the resource pack:
// the declarative content layer that turns parameter tables into task
// specification trees for the build pipeline.
//
// Materials are plain data. Each family (dyed blocks, ores, wood sets,
// animated blocks) is a table of parameter structs consumed by one generic
// builder function; shared bases like the stone backdrop are built through
// the same helper everywhere so that structurally equal sub-trees collapse
// to single graph nodes downstream.
package catalogue

import (
	"fmt"
	"sort"

	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// Material is one named texture of the resource pack, bound to the spec
// tree that renders it.
type Material struct {
	// Name is the texture name without directory or extension.
	Name string
	// Category is the output subdirectory, usually "block" or "item".
	Category string
	// Base is the spec tree producing the texture, without the sink.
	Base taskspec.Spec
}

// Destination returns the output path of the material relative to the
// output root.
func (m Material) Destination() string {
	return m.Category + "/" + m.Name + ".png"
}

// Sink returns the complete spec tree including the output sink.
func (m Material) Sink() taskspec.Spec {
	return taskspec.PNGOutput{
		Base:         m.Base,
		Destinations: []string{m.Destination()},
	}
}

// All returns every material of the catalogue, sorted by destination.
func All() ([]Material, error) {
	var all []Material
	for _, build := range []func() ([]Material, error){
		SimpleBlocks,
		DyedBlocks,
		Ores,
		WoodSets,
		AnimatedBlocks,
	} {
		ms, err := build()
		if err != nil {
			return nil, err
		}
		all = append(all, ms...)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].Destination() < all[j].Destination()
	})
	for i := 1; i < len(all); i++ {
		if all[i].Destination() == all[i-1].Destination() {
			return nil, fmt.Errorf("duplicate material destination %s", all[i].Destination())
		}
	}
	return all, nil
}

// Sinks returns the sink specs of the given materials, in order.
func Sinks(materials []Material) []taskspec.Spec {
	specs := make([]taskspec.Spec, len(materials))
	for i, m := range materials {
		specs[i] = m.Sink()
	}
	return specs
}
