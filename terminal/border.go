package terminal

// BorderStyle selects a box drawing character set
type BorderStyle uint8

const (
	BorderNone   BorderStyle = iota
	BorderSingle             // ┌─┐│└┘
	BorderDouble             // ╔═╗║╚╝
	BorderRounded            // ╭─╮│╰╯
	BorderHeavy              // ┏━┓┃┗┛
	BorderCustom
)

var borderStyleNames = [...]string{
	BorderNone:    "none",
	BorderSingle:  "single",
	BorderDouble:  "double",
	BorderRounded: "rounded",
	BorderHeavy:   "heavy",
	BorderCustom:  "custom",
}

// String returns the configuration name of the style
func (s BorderStyle) String() string {
	if int(s) < len(borderStyleNames) {
		return borderStyleNames[s]
	}
	return "unknown"
}

// ParseBorderStyle is the inverse of BorderStyle.String
func ParseBorderStyle(s string) (BorderStyle, bool) {
	for i, name := range borderStyleNames {
		if name == s {
			return BorderStyle(i), true
		}
	}
	return BorderNone, false
}

// Corner and edge slots in Border.Glyphs
const (
	BorderTopLeft = iota
	BorderTopRight
	BorderBottomLeft
	BorderBottomRight
	BorderTop
	BorderBottom
	BorderLeft
	BorderRight
)

// boxGlyphs is indexed by style, ordered as the Border* slot constants
var boxGlyphs = [...][8]rune{
	BorderSingle:  {'┌', '┐', '└', '┘', '─', '─', '│', '│'},
	BorderDouble:  {'╔', '╗', '╚', '╝', '═', '═', '║', '║'},
	BorderRounded: {'╭', '╮', '╰', '╯', '─', '─', '│', '│'},
	BorderHeavy:   {'┏', '┓', '┗', '┛', '━', '━', '┃', '┃'},
}

// Border is descriptive frame metadata drawn around a buffer by the renderer
// It never occupies addressable tiles
type Border struct {
	Style  BorderStyle
	Glyphs [8]rune
	Fg, Bg RGBA
}

// NewBorder builds a border of a predefined style, white on black
// BorderNone and BorderCustom yield space glyphs
func NewBorder(style BorderStyle) Border {
	b := Border{Style: style, Fg: DefaultFg, Bg: DefaultBg}
	if int(style) < len(boxGlyphs) && style != BorderNone {
		b.Glyphs = boxGlyphs[style]
	} else {
		for i := range b.Glyphs {
			b.Glyphs[i] = ' '
		}
	}
	return b
}

// SingleLine is a ┌─┐ border
func SingleLine() Border {
	return NewBorder(BorderSingle)
}

// DoubleLine is a ╔═╗ border
func DoubleLine() Border {
	return NewBorder(BorderDouble)
}

// CustomBorder takes corners (tl, tr, bl, br) and edges (top, bottom, left, right)
func CustomBorder(corners [4]rune, edges [4]rune) Border {
	b := Border{Style: BorderCustom, Fg: DefaultFg, Bg: DefaultBg}
	copy(b.Glyphs[:4], corners[:])
	copy(b.Glyphs[4:], edges[:])
	return b
}

// WithColors returns a copy drawn with the given colors
func (b Border) WithColors(fg, bg RGBA) Border {
	b.Fg, b.Bg = fg, bg
	return b
}

// GlyphAt returns the border glyph for a position in border space, where the addressable
// area spans [0,w)×[0,h) and the frame sits at -1 and w / h
// ok is false for positions not on the frame
func (b Border) GlyphAt(p Point, size Size) (rune, bool) {
	left, right := p.X == -1, p.X == size.W
	bottom, top := p.Y == -1, p.Y == size.H
	inX := p.X >= -1 && p.X <= size.W
	inY := p.Y >= -1 && p.Y <= size.H
	if !inX || !inY {
		return 0, false
	}
	switch {
	case top && left:
		return b.Glyphs[BorderTopLeft], true
	case top && right:
		return b.Glyphs[BorderTopRight], true
	case bottom && left:
		return b.Glyphs[BorderBottomLeft], true
	case bottom && right:
		return b.Glyphs[BorderBottomRight], true
	case top:
		return b.Glyphs[BorderTop], true
	case bottom:
		return b.Glyphs[BorderBottom], true
	case left:
		return b.Glyphs[BorderLeft], true
	case right:
		return b.Glyphs[BorderRight], true
	}
	return 0, false
}

// Frame calls fn for every frame position in border space, bottom row first, left to right
func (b Border) Frame(size Size, fn func(p Point, glyph rune)) {
	for y := -1; y <= size.H; y++ {
		for x := -1; x <= size.W; x++ {
			if y != -1 && y != size.H && x != -1 && x != size.W {
				continue
			}
			p := Point{x, y}
			if g, ok := b.GlyphAt(p, size); ok {
				fn(p, g)
			}
		}
	}
}
