package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphterm/terminal"
)

// ToTcell converts a tile color to tcell.Color
// Fully transparent colors map to ColorDefault so the host terminal shows through
func ToTcell(c terminal.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// FromTcell converts tcell.Color to an opaque tile color, ColorDefault becomes transparent
func FromTcell(c tcell.Color) terminal.RGBA {
	if c == tcell.ColorDefault {
		return terminal.Transparent
	}
	r, g, b := c.RGB()
	return terminal.RGB(uint8(r), uint8(g), uint8(b))
}

// TileStyle builds the tcell style of a tile
func TileStyle(fg, bg terminal.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}
