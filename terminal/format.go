package terminal

import "strings"

// Format is an optional foreground/background pair
// Unset channels leave the existing tile color untouched when applied
type Format struct {
	fg, bg       RGBA
	hasFg, hasBg bool
}

// Fg sets the foreground override
func (f Format) Fg(c RGBA) Format {
	f.fg, f.hasFg = c, true
	return f
}

// Bg sets the background override
func (f Format) Bg(c RGBA) Format {
	f.bg, f.hasBg = c, true
	return f
}

// FgColor returns the foreground override and whether it is set
func (f Format) FgColor() (RGBA, bool) {
	return f.fg, f.hasFg
}

// BgColor returns the background override and whether it is set
func (f Format) BgColor() (RGBA, bool) {
	return f.bg, f.hasBg
}

// Apply writes the set channels into t
func (f Format) Apply(t *Tile) {
	if f.hasFg {
		t.Fg = f.fg
	}
	if f.hasBg {
		t.Bg = f.bg
	}
}

// FormattedChar is a glyph with optional color overrides
type FormattedChar struct {
	Glyph rune
	Format
}

// Char wraps a glyph with no color overrides
func Char(glyph rune) FormattedChar {
	return FormattedChar{Glyph: glyph}
}

// Fg sets the foreground override
func (c FormattedChar) Fg(col RGBA) FormattedChar {
	c.Format = c.Format.Fg(col)
	return c
}

// Bg sets the background override
func (c FormattedChar) Bg(col RGBA) FormattedChar {
	c.Format = c.Format.Bg(col)
	return c
}

// FormattedString is transient text with optional color overrides
// Alignment comes from the pivot of the Position it is written at
type FormattedString struct {
	text string
	Format
}

// Text wraps a string with no color overrides
func Text(s string) FormattedString {
	return FormattedString{text: s}
}

// Fg sets the foreground override
func (s FormattedString) Fg(col RGBA) FormattedString {
	s.Format = s.Format.Fg(col)
	return s
}

// Bg sets the background override
func (s FormattedString) Bg(col RGBA) FormattedString {
	s.Format = s.Format.Bg(col)
	return s
}

// String returns the raw text
func (s FormattedString) String() string {
	return s.text
}

// Lines splits on \n, dropping a trailing \r per line and the empty tail after a final newline
func (s FormattedString) Lines() []string {
	if s.text == "" {
		return nil
	}
	lines := strings.Split(s.text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// ColorTarget selects the tile channel a ColorFormat writes
type ColorTarget uint8

const (
	TargetFg ColorTarget = iota
	TargetBg
)

// ColorFormat is a single-channel color update
type ColorFormat struct {
	Target ColorTarget
	Color  RGBA
}

// FgColor targets the foreground channel
func FgColor(c RGBA) ColorFormat {
	return ColorFormat{Target: TargetFg, Color: c}
}

// BgColor targets the background channel
func BgColor(c RGBA) ColorFormat {
	return ColorFormat{Target: TargetBg, Color: c}
}
