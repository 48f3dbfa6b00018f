package terminal

import "github.com/lixenwraith/glyphterm/vmath"

// StringPlacement is one line of a laid out string
// Start is where glyph 0 of Runes lands, it may lie left of the buffer
type StringPlacement struct {
	Start Point
	Runes []rune
}

// LayoutString computes where each line of text lands, without writing anything
// The result is a pure function of text, anchor and buffer size:
//   - topmost row y0 = anchor.y + round((h-1) * (1-py)), h = line count
//   - line i sits on row y0-i, layout stops at the first row outside the buffer
//   - each line keeps min(len, width) glyphs and starts at anchor.x - round((len-1) * px)
func LayoutString(at Position, text FormattedString, size Size) []StringPlacement {
	lines := text.Lines()
	if len(lines) == 0 {
		return nil
	}
	a := at.Anchor()
	origin := a.Resolve(size)
	px, py := a.Pivot.Vec()

	h := len(lines)
	y0 := origin.Y + vmath.RoundInt(float64(h-1)*float64(1-py))

	out := make([]StringPlacement, 0, h)
	for i, line := range lines {
		y := y0 - i
		if y < 0 || y >= size.H {
			break
		}
		runes := []rune(line)
		n := min(len(runes), size.W)
		if n == 0 {
			continue
		}
		x0 := origin.X - vmath.PivotOffset(n, px)
		out = append(out, StringPlacement{Start: Point{x0, y}, Runes: runes[:n]})
	}
	return out
}

// PutString writes formatted, pivot aligned, possibly multi-line text
// Glyphs falling left or right of the buffer are clipped, rows never wrap
// Unset color overrides leave existing tile colors untouched
func (b *TileBuffer) PutString(at Position, text FormattedString) {
	placements := LayoutString(at, text, b.Size())
	if len(placements) == 0 {
		return
	}
	for _, pl := range placements {
		row := b.tiles[pl.Start.Y*b.width : (pl.Start.Y+1)*b.width]
		for i, r := range pl.Runes {
			x := pl.Start.X + i
			if x < 0 || x >= b.width {
				continue
			}
			t := &row[x]
			t.Glyph = r
			text.Apply(t)
		}
	}
	b.touch()
}
