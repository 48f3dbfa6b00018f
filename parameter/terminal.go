package parameter

// Terminal construction defaults
const (
	// DefaultTerminalWidth and DefaultTerminalHeight size a terminal built without explicit size
	DefaultTerminalWidth  = 40
	DefaultTerminalHeight = 12

	// DefaultDepth is the world z a terminal is placed at
	DefaultDepth = 0

	// DefaultPivot names the layout pivot, see terminal.ParsePivot
	DefaultPivot = "center"

	// DefaultScaling names the tile scaling, see terminal.ParseTileScaling
	DefaultScaling = "world"

	// DefaultBorder names the border style, see terminal.ParseBorderStyle
	DefaultBorder = "none"

	// DefaultClearGlyph, DefaultFg and DefaultBg form the clear tile
	DefaultClearGlyph = ' '
	DefaultFg         = "#ffffff"
	DefaultBg         = "#000000"

	// DefaultBgClipColor is the atlas texel color replaced by tile backgrounds
	DefaultBgClipColor = "#000000"
)

// Atlas defaults
const (
	// AtlasColumns and AtlasRows are the code page 437 grid
	AtlasColumns = 16
	AtlasRows    = 16

	// DefaultFont is the id of the generated built-in font
	DefaultFont = "cp437-mono"

	// AtlasFontSize is the point size the built-in font is rendered at
	AtlasFontSize = 12

	// AtlasCellWidth and AtlasCellHeight are the built-in font's cell pixels
	AtlasCellWidth  = 8
	AtlasCellHeight = 14
)
