package catalogue

import (
	"strconv"

	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// animatedBlock parameterizes one filmstrip texture: a static backdrop plus
// a sequence of recolored flow frames blended over it.
type animatedBlock struct {
	name       string
	background taskspec.Spec
	frameBase  string
	frameCount int
	frameColor palette.Color
	frameAlpha float64
}

func animatedBlocks() []animatedBlock {
	return []animatedBlock{
		{
			name: "lava",
			background: taskspec.StackOnColor{
				Background: palette.Lava,
				Foreground: overlay("lava_base", palette.LavaBright),
			},
			frameBase:  "lava_flow",
			frameCount: 4,
			frameColor: palette.LavaBright,
			frameAlpha: 0.7,
		},
		{
			name: "fire",
			background: taskspec.StackOnColor{
				Background: palette.Transparent,
				Foreground: overlay("fire_base", palette.Hex(0xd45a12)),
			},
			frameBase:  "fire_flicker",
			frameCount: 8,
			frameColor: palette.Hex(0xf5db23),
			frameAlpha: 0.85,
		},
		{
			name: "water_still",
			background: taskspec.StackOnColor{
				Background: palette.WaterSurface,
				Foreground: overlay("water_base", palette.Hex(0x2a5cc8)),
			},
			frameBase:  "water_ripple",
			frameCount: 4,
			frameColor: palette.White,
			frameAlpha: 0.2,
		},
	}
}

// AnimatedBlocks builds the filmstrip textures. Frame order in the output
// strip is strictly index order.
func AnimatedBlocks() ([]Material, error) {
	var materials []Material
	for _, a := range animatedBlocks() {
		frames := make([]taskspec.Spec, a.frameCount)
		for i := range frames {
			frames[i] = taskspec.Semitransparent{
				Base:  overlay(frameSource(a.frameBase, i), a.frameColor),
				Alpha: a.frameAlpha,
			}
		}
		materials = append(materials, Material{
			Name:     a.name,
			Category: "block",
			Base: taskspec.Animate{
				Background: a.background,
				Frames:     frames,
			},
		})
	}
	return materials, nil
}

func frameSource(base string, index int) string {
	return base + "_" + strconv.Itoa(index)
}
