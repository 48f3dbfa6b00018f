package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/lixenwraith/glyphterm/terminal"
)

// Terminal is a TerminalConfig with every string field parsed
type Terminal struct {
	Name             string
	Size             terminal.Size
	Position         [2]float32
	Depth            float32
	Layout           terminal.Layout
	Border           terminal.Border
	ClearTile        terminal.Tile
	BgClipColor      terminal.RGBA
	Font             string
	ClearAfterRender bool
	Text             []Text
}

// Text is a parsed TextConfig
type Text struct {
	At     terminal.Anchor
	String terminal.FormattedString
}

// Resolve parses the terminal's names and colors, collecting every error
func (t TerminalConfig) Resolve() (Terminal, error) {
	var errs []error
	r := Terminal{
		Name:             t.Name,
		Size:             terminal.Sz(t.Size[0], t.Size[1]),
		Position:         t.Position,
		Depth:            t.Depth,
		Layout:           terminal.DefaultLayout(),
		Font:             t.Font,
		ClearAfterRender: t.ClearAfterRender,
	}

	if t.Size[0] < 1 || t.Size[1] < 1 {
		errs = append(errs, fmt.Errorf("size %v: both dimensions must be at least 1", t.Size))
	}

	if p, ok := terminal.ParsePivot(t.Pivot); ok {
		r.Layout.Pivot = p
	} else {
		errs = append(errs, fmt.Errorf("unknown pivot %q", t.Pivot))
	}
	if s, ok := terminal.ParseTileScaling(t.Scaling); ok {
		r.Layout.Scaling = s
	} else {
		errs = append(errs, fmt.Errorf("unknown scaling %q", t.Scaling))
	}

	style, ok := terminal.ParseBorderStyle(t.Border)
	if !ok || style == terminal.BorderCustom {
		errs = append(errs, fmt.Errorf("unknown border %q", t.Border))
	}
	borderFg := parseColor(&errs, "border_fg", t.BorderFg)
	borderBg := parseColor(&errs, "border_bg", t.BorderBg)
	r.Border = terminal.NewBorder(style).WithColors(borderFg, borderBg)

	if utf8.RuneCountInString(t.ClearGlyph) != 1 {
		errs = append(errs, fmt.Errorf("clear_glyph %q must be a single glyph", t.ClearGlyph))
	}
	glyph, _ := utf8.DecodeRuneInString(t.ClearGlyph)
	r.ClearTile = terminal.Tile{
		Glyph: glyph,
		Fg:    parseColor(&errs, "fg", t.Fg),
		Bg:    parseColor(&errs, "bg", t.Bg),
	}
	r.BgClipColor = parseColor(&errs, "bg_clip_color", t.BgClipColor)

	for i, tc := range t.Text {
		pv, ok := terminal.ParsePivot(tc.Pivot)
		if !ok {
			errs = append(errs, fmt.Errorf("text[%d]: unknown pivot %q", i, tc.Pivot))
		}
		s := terminal.Text(tc.Text)
		if tc.Fg != "" {
			s = s.Fg(parseColor(&errs, fmt.Sprintf("text[%d].fg", i), tc.Fg))
		}
		if tc.Bg != "" {
			s = s.Bg(parseColor(&errs, fmt.Sprintf("text[%d].bg", i), tc.Bg))
		}
		r.Text = append(r.Text, Text{At: terminal.Pt(tc.At[0], tc.At[1]).Pivot(pv), String: s})
	}

	return r, errors.Join(errs...)
}

func parseColor(errs *[]error, field, s string) terminal.RGBA {
	c, err := terminal.ParseHex(s)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", field, err))
	}
	return c
}
