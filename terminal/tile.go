package terminal

// Default tile colors
var (
	DefaultFg = White
	DefaultBg = Black
)

// Tile is a single grid cell
// Glyphs are mapped to atlas sprites through the terminal's atlas.Map
type Tile struct {
	Glyph rune
	Fg    RGBA
	Bg    RGBA
}

// DefaultTile is a blank glyph, white on black
func DefaultTile() Tile {
	return Tile{Glyph: ' ', Fg: DefaultFg, Bg: DefaultBg}
}

// TransparentTile is an invisible tile, both colors carry zero alpha
func TransparentTile() Tile {
	return Tile{Glyph: ' ', Fg: Transparent, Bg: Transparent}
}

// TileOf returns the default tile with the given glyph
func TileOf(glyph rune) Tile {
	t := DefaultTile()
	t.Glyph = glyph
	return t
}
