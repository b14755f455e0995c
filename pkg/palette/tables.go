package palette

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

//go:embed data/dyes.toml
var dyesTOML []byte

//go:embed data/woods.toml
var woodsTOML []byte

// Dye is one of the sixteen dye colors of the resource pack.
type Dye struct {
	Name  string
	Color Color
}

// Wood describes the color scheme of one wood species.
type Wood struct {
	Name      string
	Planks    Color
	Bark      Color
	Highlight Color
	Shadow    Color
}

// LoadDyes parses the embedded dye table. The result is sorted by dye name
// so that catalogue construction is deterministic.
func LoadDyes() ([]Dye, error) {
	var raw struct {
		Dyes map[string]string `toml:"dyes"`
	}
	if err := toml.Unmarshal(dyesTOML, &raw); err != nil {
		return nil, fmt.Errorf("parse dye table: %w", err)
	}
	dyes := make([]Dye, 0, len(raw.Dyes))
	for name, hex := range raw.Dyes {
		c, err := parseHex(hex)
		if err != nil {
			return nil, fmt.Errorf("dye %q: %w", name, err)
		}
		dyes = append(dyes, Dye{Name: name, Color: c})
	}
	sort.Slice(dyes, func(i, j int) bool { return dyes[i].Name < dyes[j].Name })
	return dyes, nil
}

// LoadWoods parses the embedded wood species table, sorted by species name.
func LoadWoods() ([]Wood, error) {
	var raw struct {
		Species []struct {
			Name      string `toml:"name"`
			Planks    string `toml:"planks"`
			Bark      string `toml:"bark"`
			Highlight string `toml:"highlight"`
			Shadow    string `toml:"shadow"`
		} `toml:"species"`
	}
	if err := toml.Unmarshal(woodsTOML, &raw); err != nil {
		return nil, fmt.Errorf("parse wood table: %w", err)
	}
	woods := make([]Wood, 0, len(raw.Species))
	for _, s := range raw.Species {
		w := Wood{Name: s.Name}
		for _, field := range []struct {
			hex string
			dst *Color
		}{
			{s.Planks, &w.Planks},
			{s.Bark, &w.Bark},
			{s.Highlight, &w.Highlight},
			{s.Shadow, &w.Shadow},
		} {
			c, err := parseHex(field.hex)
			if err != nil {
				return nil, fmt.Errorf("wood %q: %w", s.Name, err)
			}
			*field.dst = c
		}
		woods = append(woods, w)
	}
	sort.Slice(woods, func(i, j int) bool { return woods[i].Name < woods[j].Name })
	return woods, nil
}

// parseHex parses a 6-digit RRGGBB hex string into an opaque color.
func parseHex(s string) (Color, error) {
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid hex color %q (want RRGGBB)", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Hex(uint32(v)), nil
}
