package terminal

import (
	"testing"
)

func TestPutStringCenterPivot(t *testing.T) {
	buf := New(10, 10)
	buf.PutString(Pt(0, 0).Pivot(Center), Text("Hi"))

	if got := buf.GetChar(Pt(4, 5)); got != 'H' {
		t.Errorf("Expected 'H' at (4,5), got %q", got)
	}
	if got := buf.GetChar(Pt(5, 5)); got != 'i' {
		t.Errorf("Expected 'i' at (5,5), got %q", got)
	}
}

func TestPutStringBottomLeftDefault(t *testing.T) {
	buf := New(20, 20)
	buf.PutString(Pt(1, 1), Text("Hello"))

	if got := buf.GetString(Pt(1, 1), 2); got != "He" {
		t.Errorf("Expected He, got %q", got)
	}
	if got := buf.GetString(Pt(1, 1), 5); got != "Hello" {
		t.Errorf("Expected Hello, got %q", got)
	}
}

func TestPutStringMultiLine(t *testing.T) {
	buf := New(12, 6)
	buf.PutString(Pt(0, 0), Text("ab\ncd\nef"))

	// Bottom-left pivot: the block grows upward from the anchor, first line on top
	want := map[Point]rune{
		Pt(0, 2): 'a', Pt(1, 2): 'b',
		Pt(0, 1): 'c', Pt(1, 1): 'd',
		Pt(0, 0): 'e', Pt(1, 0): 'f',
	}
	for p, r := range want {
		if got := buf.GetChar(p); got != r {
			t.Errorf("At %v: expected %q, got %q", p, r, got)
		}
	}
}

func TestPutStringTopRightPivot(t *testing.T) {
	buf := New(10, 5)
	buf.PutString(Pt(0, 0).Pivot(TopRight), Text("abc\nxy"))

	// Lines are right aligned against the last column, first line on the top row
	if got := buf.GetString(Pt(7, 4), 3); got != "abc" {
		t.Errorf("Expected abc on top row, got %q", got)
	}
	if got := buf.GetString(Pt(8, 3), 2); got != "xy" {
		t.Errorf("Expected xy right aligned, got %q", got)
	}
}

func TestPutStringPivotOffsetInward(t *testing.T) {
	buf := New(10, 5)
	buf.PutString(Pt(1, 1).Pivot(TopRight), Text("z"))

	if got := buf.GetChar(Pt(8, 3)); got != 'z' {
		t.Errorf("Expected 'z' one tile in from the top-right corner, got %q", got)
	}
}

func TestPutStringColorOverrides(t *testing.T) {
	buf := New(10, 2)
	buf.PutTile(Pt(0, 0), Tile{Glyph: '.', Fg: Gray, Bg: Green})

	buf.PutString(Pt(0, 0), Text("ab").Fg(Blue))

	tile := buf.GetTile(Pt(0, 0))
	if tile.Glyph != 'a' || tile.Fg != Blue {
		t.Errorf("Expected blue 'a', got %+v", tile)
	}
	if tile.Bg != Green {
		t.Errorf("Expected background untouched, got %v", tile.Bg)
	}
	if got := buf.GetTile(Pt(1, 0)).Bg; got != DefaultBg {
		t.Errorf("Expected default background, got %v", got)
	}
}

func TestPutStringTruncatesToWidth(t *testing.T) {
	buf := New(4, 2)
	buf.PutString(Pt(0, 0), Text("abcdefgh"))

	if got := buf.GetString(Pt(0, 0), 4); got != "abcd" {
		t.Errorf("Expected abcd, got %q", got)
	}
	if got := buf.GetString(Pt(0, 1), 4); got != "    " {
		t.Errorf("Expected no wrap into the next row, got %q", got)
	}
}

func TestPutStringClipsHorizontally(t *testing.T) {
	buf := New(5, 1)
	buf.PutString(Pt(3, 0), Text("xyz"))

	if got := buf.GetString(Pt(0, 0), 5); got != "   xy" {
		t.Errorf("Expected right edge clip, got %q", got)
	}
}

func TestPutStringStopsOutsideVertically(t *testing.T) {
	buf := New(5, 2)
	// Three lines anchored bottom-left at row 0 start on row 2, outside the buffer
	buf.PutString(Pt(0, 0), Text("aaa\nbbb\nccc"))

	for p, tile := range buf.All() {
		if tile.Glyph != ' ' {
			t.Errorf("Expected nothing written, found %q at %v", tile.Glyph, p)
		}
	}
}

func TestPutStringEmpty(t *testing.T) {
	buf := New(3, 3)
	before := buf.Version()
	buf.PutString(Pt(1, 1).Pivot(Center), Text(""))

	if buf.Version() != before {
		t.Error("Expected no write for empty string")
	}
}

func TestLayoutStringDeterministic(t *testing.T) {
	size := Sz(16, 8)
	at := Pt(2, 1).Pivot(BottomCenter)
	text := Text("one\n\nthree\r\n")

	first := LayoutString(at, text, size)
	second := LayoutString(at, text, size)

	if len(first) != len(second) {
		t.Fatalf("Expected identical placements, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Start != second[i].Start || string(first[i].Runes) != string(second[i].Runes) {
			t.Errorf("Placement %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
	// Empty middle line is skipped, trailing newline adds no line, \r is dropped
	if len(first) != 2 {
		t.Fatalf("Expected 2 placements, got %d", len(first))
	}
	if string(first[1].Runes) != "three" {
		t.Errorf("Expected 'three', got %q", string(first[1].Runes))
	}
}

func TestAnchorResolve(t *testing.T) {
	size := Sz(10, 6)
	tests := []struct {
		name string
		at   Anchor
		want Point
	}{
		{"BottomLeft", Pt(2, 1).Pivot(BottomLeft), Pt(2, 1)},
		{"TopLeft", Pt(2, 1).Pivot(TopLeft), Pt(2, 4)},
		{"TopRight", Pt(2, 1).Pivot(TopRight), Pt(7, 4)},
		{"BottomRight", Pt(0, 0).Pivot(BottomRight), Pt(9, 0)},
		{"Center", Pt(1, 1).Pivot(Center), Pt(6, 4)},
		{"RightCenter", Pt(1, 0).Pivot(RightCenter), Pt(8, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.at.Resolve(size); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
