package catalogue

import (
	"github.com/tilesmith/tilesmith/pkg/palette"
	"github.com/tilesmith/tilesmith/pkg/taskspec"
)

// dyedTemplate parameterizes one block family that exists in all sixteen
// dye colors.
type dyedTemplate struct {
	// suffix is appended to the dye name, e.g. "wool" in "red_wool".
	suffix string
	// source is the vector texture recolored per dye.
	source string
	// shadowAlpha darkens the texture detail; zero means no shadow layer.
	shadowAlpha float64
}

var dyedTemplates = []dyedTemplate{
	{suffix: "wool", source: "wool", shadowAlpha: 0.25},
	{suffix: "concrete", source: "concrete", shadowAlpha: 0},
	{suffix: "concrete_powder", source: "concrete_powder", shadowAlpha: 0.15},
	{suffix: "terracotta", source: "terracotta", shadowAlpha: 0.2},
}

// DyedBlocks builds every dyed family in every dye color. The detail mask of
// a family is one shared node; only the backdrop color differs per dye.
func DyedBlocks() ([]Material, error) {
	dyes, err := palette.LoadDyes()
	if err != nil {
		return nil, err
	}

	var materials []Material
	for _, tpl := range dyedTemplates {
		detail := taskspec.ToAlpha{Base: taskspec.FromSVG{Source: tpl.source}}
		for _, dye := range dyes {
			base := taskspec.Spec(taskspec.StackOnColor{
				Background: dye.Color,
				Foreground: taskspec.Semitransparent{
					Base:  taskspec.Repaint{Base: detail, Color: palette.White},
					Alpha: 0.3,
				},
			})
			if tpl.shadowAlpha > 0 {
				base = taskspec.StackOnLayer{
					Background: base,
					Foreground: taskspec.Semitransparent{
						Base:  taskspec.Repaint{Base: detail, Color: palette.Black},
						Alpha: tpl.shadowAlpha,
					},
				}
			}
			materials = append(materials, Material{
				Name:     dye.Name + "_" + tpl.suffix,
				Category: "block",
				Base:     base,
			})
		}
	}
	return materials, nil
}
