package config

import (
	"fmt"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/parameter"
	"github.com/lixenwraith/glyphterm/terminal"
)

// glyphSet reports whether a font's atlas ordering holds a glyph
type glyphSet func(rune) bool

func cp437Set(r rune) bool {
	_, ok := atlas.GlyphToIndex(r)
	return ok
}

// orderingSet covers exactly the glyphs of an explicit ordering
func orderingSet(glyphs string) glyphSet {
	set := make(map[rune]struct{}, len(glyphs))
	for _, r := range glyphs {
		set[r] = struct{}{}
	}
	return func(r rune) bool {
		_, ok := set[r]
		return ok
	}
}

// fontGlyphs maps every font id a terminal may bind to the glyphs its atlas holds
func (c *Config) fontGlyphs() map[string]glyphSet {
	fonts := map[string]glyphSet{parameter.DefaultFont: cp437Set}
	for _, f := range c.Fonts {
		if f.Glyphs == "" {
			fonts[f.ID] = cp437Set
			continue
		}
		fonts[f.ID] = orderingSet(f.Glyphs)
	}
	return fonts
}

// missingGlyphs lists, once each in first-use order, the glyphs the terminal can hold
// that its font cannot draw: border frame, clear tile and configured text
func (r Terminal) missingGlyphs(has glyphSet) []rune {
	var missing []rune
	seen := make(map[rune]bool)
	check := func(g rune) {
		if seen[g] {
			return
		}
		seen[g] = true
		if !has(g) {
			missing = append(missing, g)
		}
	}

	if r.Border.Style != terminal.BorderNone {
		for _, g := range r.Border.Glyphs {
			check(g)
		}
	}
	check(r.ClearTile.Glyph)
	for _, t := range r.Text {
		for _, line := range t.String.Lines() {
			for _, g := range line {
				check(g)
			}
		}
	}
	return missing
}

func glyphError(font string, missing []rune) error {
	return fmt.Errorf("glyphs %q not in font %q", string(missing), font)
}
