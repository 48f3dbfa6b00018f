package config

import (
	"fmt"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/engine"
)

// Apply registers the configured fonts and builds every terminal into w
// Terminals are returned by name, unnamed ones are skipped in the map
func (c *Config) Apply(w *engine.World) (map[string]engine.Entity, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	for _, fc := range c.Fonts {
		var ordering []rune
		if fc.Glyphs != "" {
			ordering = []rune(fc.Glyphs)
		}
		f, err := atlas.LoadFont(fc.Path, fc.Grid, ordering)
		if err != nil {
			return nil, fmt.Errorf("font %q: %w", fc.ID, err)
		}
		w.Fonts.Register(fc.ID, f)
	}

	out := make(map[string]engine.Entity, len(c.Terminals))
	for _, tc := range c.Terminals {
		r, err := tc.Resolve()
		if err != nil {
			return nil, fmt.Errorf("terminal %q: %w", tc.Name, err)
		}
		e := r.Build(w)
		if r.Name != "" {
			out[r.Name] = e
		}
	}
	return out, nil
}

// Build creates the terminal entity
func (r Terminal) Build(w *engine.World) engine.Entity {
	b := w.NewTerminal(r.Size.W, r.Size.H).
		WithClearTile(r.ClearTile).
		WithBorder(r.Border).
		WithPivot(r.Layout.Pivot).
		WithScaling(r.Layout.Scaling).
		WithFont(r.Font).
		WithPosition(r.Position[0], r.Position[1]).
		WithDepth(r.Depth).
		WithBgClipColor(r.BgClipColor)
	if r.ClearAfterRender {
		b.WithClearAfterRender()
	}
	for _, t := range r.Text {
		b.WithString(t.At, t.String)
	}
	return b.Build()
}
