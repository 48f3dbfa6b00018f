package terminal

import (
	"testing"
)

func TestNewBuffer(t *testing.T) {
	buf := New(20, 10)

	if buf.Width() != 20 {
		t.Errorf("Expected width 20, got %d", buf.Width())
	}
	if buf.Height() != 10 {
		t.Errorf("Expected height 10, got %d", buf.Height())
	}
	if buf.Len() != 200 {
		t.Errorf("Expected 200 tiles, got %d", buf.Len())
	}
	for p, tile := range buf.All() {
		if tile != DefaultTile() {
			t.Fatalf("Expected default tile at %v, got %+v", p, tile)
		}
	}
}

func TestNewBufferZeroSizePanics(t *testing.T) {
	for _, size := range []Size{{0, 5}, {5, 0}, {-1, 1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for size %v", size)
				}
			}()
			New(size.W, size.H)
		}()
	}
}

func TestPutCharRoundTrip(t *testing.T) {
	buf := New(7, 5)
	glyphs := []rune{'a', 'Z', '☺', '█', ' ', '0'}

	i := 0
	for y := 0; y < buf.Height(); y++ {
		for x := 0; x < buf.Width(); x++ {
			g := glyphs[i%len(glyphs)]
			i++
			p := Pt(x, y)
			buf.PutChar(p, Char(g))
			if got := buf.GetChar(p); got != g {
				t.Errorf("At %v: expected %q, got %q", p, g, got)
			}
		}
	}
}

func TestPutCharPartialColorUpdate(t *testing.T) {
	buf := New(10, 10)
	p := Pt(2, 3)

	buf.PutChar(p, Char('a').Fg(Blue).Bg(Red))
	buf.PutChar(p, Char('q'))

	tile := buf.GetTile(p)
	if tile.Glyph != 'q' {
		t.Errorf("Expected glyph 'q', got %q", tile.Glyph)
	}
	if tile.Fg != Blue {
		t.Errorf("Expected fg %v, got %v", Blue, tile.Fg)
	}
	if tile.Bg != Red {
		t.Errorf("Expected bg %v, got %v", Red, tile.Bg)
	}

	buf.PutChar(p, Char('r').Fg(Yellow))
	tile = buf.GetTile(p)
	if tile.Fg != Yellow || tile.Bg != Red {
		t.Errorf("Expected fg yellow and bg red, got %v/%v", tile.Fg, tile.Bg)
	}
}

func TestPutTileAndColor(t *testing.T) {
	buf := New(4, 4)
	p := Pt(1, 1)
	want := Tile{Glyph: '@', Fg: Lime, Bg: Gray}

	buf.PutTile(p, want)
	if got := buf.GetTile(p); got != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}

	buf.PutColor(p, BgColor(Blue))
	got := buf.GetTile(p)
	if got.Bg != Blue || got.Fg != Lime || got.Glyph != '@' {
		t.Errorf("Expected only bg to change, got %+v", got)
	}

	buf.PutColor(p, FgColor(Red))
	got = buf.GetTile(p)
	if got.Fg != Red || got.Bg != Blue {
		t.Errorf("Expected only fg to change, got %+v", got)
	}
}

func TestOutOfBoundsAccessPanics(t *testing.T) {
	buf := New(3, 3)
	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if buf.InBounds(p) {
			t.Errorf("Expected %v out of bounds", p)
		}
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Expected panic for GetTile(%v)", p)
				}
			}()
			buf.GetTile(p)
		}()
	}
}

func TestClearResetsAllTiles(t *testing.T) {
	clear := Tile{Glyph: '.', Fg: Gray, Bg: Blue}
	buf := New(6, 4).WithClearTile(clear)

	buf.PutString(Pt(0, 0), Text("garbage\nmore").Fg(Red))
	buf.PutTile(Pt(5, 3), TileOf('#'))
	buf.Clear()

	for p, tile := range buf.All() {
		if tile != clear {
			t.Fatalf("Expected clear tile at %v, got %+v", p, tile)
		}
	}
}

func TestResizeClears(t *testing.T) {
	tests := []struct {
		name string
		from Size
		to   Size
	}{
		{"Grow", Sz(3, 3), Sz(8, 5)},
		{"Shrink", Sz(8, 5), Sz(2, 2)},
		{"Same", Sz(4, 4), Sz(4, 4)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := New(tt.from.W, tt.from.H)
			buf.PutChar(Pt(1, 1), Char('x').Bg(Red))
			buf.Resize(tt.to.W, tt.to.H)

			if buf.Size() != tt.to {
				t.Errorf("Expected size %v, got %v", tt.to, buf.Size())
			}
			if buf.Len() != tt.to.Area() {
				t.Errorf("Expected %d tiles, got %d", tt.to.Area(), buf.Len())
			}
			for p, tile := range buf.All() {
				if tile != buf.ClearTile() {
					t.Fatalf("Expected clear tile at %v, got %+v", p, tile)
				}
			}
		})
	}
}

func TestSizeWithBorder(t *testing.T) {
	buf := New(10, 4)
	if got := buf.SizeWithBorder(); got != Sz(10, 4) {
		t.Errorf("Expected %v without border, got %v", Sz(10, 4), got)
	}

	buf.SetBorder(SingleLine())
	if got := buf.SizeWithBorder(); got != Sz(12, 6) {
		t.Errorf("Expected %v with border, got %v", Sz(12, 6), got)
	}
	if buf.WidthWithBorder() != 12 || buf.HeightWithBorder() != 6 {
		t.Errorf("Expected 12x6, got %dx%d", buf.WidthWithBorder(), buf.HeightWithBorder())
	}
	if buf.Size() != Sz(10, 4) {
		t.Errorf("Border must not change addressable size, got %v", buf.Size())
	}
	if got := buf.BoundsWithBorder(); got.Min != Pt(-1, -1) || got.Max() != Pt(10, 4) {
		t.Errorf("Unexpected bounds with border %+v", got)
	}

	buf.SetBorder(NewBorder(BorderNone))
	if buf.HasBorder() {
		t.Error("Expected BorderNone to remove the border")
	}
}

func TestIndexTransforms(t *testing.T) {
	buf := New(5, 3)
	for i := 0; i < buf.Len(); i++ {
		p := buf.IndexToLocal(i)
		if got := buf.LocalToIndex(p); got != i {
			t.Errorf("Index %d -> %v -> %d", i, p, got)
		}
	}
	if got := buf.LocalToIndex(Pt(2, 1)); got != 7 {
		t.Errorf("Expected index 7, got %d", got)
	}
}

func TestCenteredTransformsInvert(t *testing.T) {
	buf := New(9, 6)
	p := Pt(3, 5)
	if got := buf.CenteredToLocal(buf.LocalToCentered(p)); got != p {
		t.Errorf("Expected %v, got %v", p, got)
	}
	if got := buf.LocalToCentered(Pt(4, 3)); got != Pt(0, 0) {
		t.Errorf("Expected center at origin, got %v", got)
	}
}

func TestClearBoxClips(t *testing.T) {
	buf := New(5, 5)
	for _, row := range buf.RowsMut(0, 5) {
		for i := range row {
			row[i] = TileOf('x')
		}
	}

	buf.ClearBox(Pt(3, 3), Sz(10, 10))

	for p, tile := range buf.All() {
		cleared := p.X >= 3 && p.Y >= 3
		if cleared && tile.Glyph != ' ' {
			t.Errorf("Expected %v cleared, got %q", p, tile.Glyph)
		}
		if !cleared && tile.Glyph != 'x' {
			t.Errorf("Expected %v untouched, got %q", p, tile.Glyph)
		}
	}
}

func TestClearLineAndString(t *testing.T) {
	buf := New(4, 3)
	buf.PutString(Pt(0, 0), Text("abcd\nefgh\nijkl"))

	if got := buf.GetString(Pt(0, 2), 4); got != "abcd" {
		t.Fatalf("Expected top row abcd, got %q", got)
	}

	buf.ClearLine(1)
	if got := buf.GetString(Pt(0, 1), 4); got != "    " {
		t.Errorf("Expected cleared middle row, got %q", got)
	}

	// Row-major span wraps into the next row up
	buf.ClearString(Pt(2, 0), 3)
	if got := buf.GetString(Pt(0, 0), 4); got != "ij  " {
		t.Errorf("Expected ij__, got %q", got)
	}
	if got := buf.GetChar(Pt(0, 1)); got != ' ' {
		t.Errorf("Expected wrapped clear, got %q", got)
	}

	// Length past the end is clamped
	buf.ClearString(Pt(0, 2), 100)
	if got := buf.GetString(Pt(0, 2), 100); got != "    " {
		t.Errorf("Expected cleared top row, got %q", got)
	}
}

func TestRowAndColumnIteration(t *testing.T) {
	buf := New(3, 2)
	buf.PutString(Pt(0, 0), Text("abc"))
	buf.PutString(Pt(0, 1), Text("def"))

	var rows []string
	for y, row := range buf.Rows(0, 10) {
		s := ""
		for _, tile := range row {
			s += string(tile.Glyph)
		}
		rows = append(rows, s)
		if y != len(rows)-1 {
			t.Errorf("Expected row index %d, got %d", len(rows)-1, y)
		}
	}
	if len(rows) != 2 || rows[0] != "abc" || rows[1] != "def" {
		t.Errorf("Expected bottom-to-top [abc def], got %v", rows)
	}

	col := ""
	for _, tile := range buf.Column(1) {
		col += string(tile.Glyph)
	}
	if col != "be" {
		t.Errorf("Expected column be, got %q", col)
	}

	for _, tile := range buf.ColumnMut(2) {
		tile.Glyph = 'z'
	}
	if buf.GetChar(Pt(2, 0)) != 'z' || buf.GetChar(Pt(2, 1)) != 'z' {
		t.Error("Expected ColumnMut writes to land in the buffer")
	}
}

func TestVersionTracksMutation(t *testing.T) {
	buf := New(4, 4)
	v := buf.Version()

	_ = buf.GetTile(Pt(0, 0))
	_ = buf.Row(0)
	if buf.Version() != v {
		t.Error("Expected reads to leave the version untouched")
	}

	mutations := []struct {
		name string
		fn   func()
	}{
		{"PutChar", func() { buf.PutChar(Pt(0, 0), Char('a')) }},
		{"PutTile", func() { buf.PutTile(Pt(0, 0), DefaultTile()) }},
		{"PutColor", func() { buf.PutColor(Pt(0, 0), FgColor(Red)) }},
		{"PutString", func() { buf.PutString(Pt(0, 0), Text("hi")) }},
		{"Clear", func() { buf.Clear() }},
		{"ClearLine", func() { buf.ClearLine(0) }},
		{"Resize", func() { buf.Resize(5, 5) }},
		{"SetBorder", func() { buf.SetBorder(DoubleLine()) }},
		{"RemoveBorder", func() { buf.RemoveBorder() }},
	}
	for _, m := range mutations {
		before := buf.Version()
		m.fn()
		if buf.Version() <= before {
			t.Errorf("%s: expected version to increase from %d, got %d", m.name, before, buf.Version())
		}
	}

	before := buf.Version()
	buf.PutString(Pt(0, 0), Text(""))
	if buf.Version() != before {
		t.Error("Expected empty string to leave the version untouched")
	}
}

func TestSideIndex(t *testing.T) {
	buf := New(7, 3)
	tests := []struct {
		side Side
		want int
	}{
		{SideLeft, 0},
		{SideRight, 6},
		{SideBottom, 0},
		{SideTop, 2},
	}
	for _, tt := range tests {
		if got := buf.SideIndex(tt.side); got != tt.want {
			t.Errorf("Side %d: expected %d, got %d", tt.side, tt.want, got)
		}
	}
}
