package palette

// Named shades used across the material catalogue. Several of these are
// load-bearing: catalogue entries branch on exact equality with them, so the
// values must not drift.
var (
	Black = RGB(0x00, 0x00, 0x00)
	White = RGB(0xff, 0xff, 0xff)

	// Stone family.
	Stone          = Hex(0x7e7e7e)
	StoneHighlight = Hex(0xaaaaaa)
	StoneShadow    = Hex(0x555555)
	StoneExtreme   = Hex(0x2f2f2f)

	// Deepslate family.
	Deepslate          = Hex(0x515151)
	DeepslateHighlight = Hex(0x737373)
	DeepslateShadow    = Hex(0x2f2f37)

	// Netherrack family.
	Netherrack          = Hex(0x723232)
	NetherrackHighlight = Hex(0x854242)
	NetherrackShadow    = Hex(0x5f2727)

	// Biome-colorable foliage placeholders. These are the gray shades that
	// the game tints at runtime; they must stay pure grays.
	BiomeColorable          = Gray(0x92)
	BiomeColorableHighlight = Gray(0xb4)
	BiomeColorableShadow    = Gray(0x6d)

	// Water and lava.
	WaterSurface = Hex(0x3f76e4)
	Lava         = Hex(0xd45a12)
	LavaBright   = Hex(0xf5db23)
)
