package terminal

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is an 8-bit per channel sRGB color with straight alpha
type RGBA struct {
	R, G, B, A uint8
}

// Named colors
var (
	White       = RGBA{255, 255, 255, 255}
	Black       = RGBA{0, 0, 0, 255}
	Red         = RGBA{255, 0, 0, 255}
	Green       = RGBA{0, 128, 0, 255}
	Lime        = RGBA{0, 255, 0, 255}
	LimeGreen   = RGBA{50, 205, 50, 255}
	Blue        = RGBA{0, 0, 255, 255}
	Yellow      = RGBA{255, 255, 0, 255}
	Gray        = RGBA{128, 128, 128, 255}
	Transparent = RGBA{0, 0, 0, 0}
)

// RGB builds an opaque color
func RGB(r, g, b uint8) RGBA {
	return RGBA{r, g, b, 255}
}

// Equal returns true if all four channels match
func (c RGBA) Equal(other RGBA) bool {
	return c == other
}

// Colorful converts to a go-colorful color, alpha is dropped
func (c RGBA) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Linear returns the color in linear RGB space with alpha left linear, as the glyph shader expects
func (c RGBA) Linear() [4]float32 {
	r, g, b := c.Colorful().LinearRgb()
	return [4]float32{float32(r), float32(g), float32(b), float32(c.A) / 255.0}
}

// Hex formats as #rrggbb, or #rrggbbaa when not fully opaque
func (c RGBA) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer
func (c RGBA) String() string {
	return c.Hex()
}

// ParseHex accepts #rgb, #rrggbb and #rrggbbaa
func ParseHex(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		var a uint8
		if _, err := fmt.Sscanf(s[7:], "%02x", &a); err != nil {
			return RGBA{}, fmt.Errorf("parse alpha of %q: %w", s, err)
		}
		alpha = a
		s = s[:7]
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGBA{r, g, b, alpha}, nil
}
