package terminal

import "testing"

func TestBorderGlyphAt(t *testing.T) {
	b := SingleLine()
	size := Sz(3, 2)

	tests := []struct {
		p    Point
		want rune
		ok   bool
	}{
		{Pt(-1, -1), '└', true},
		{Pt(3, -1), '┘', true},
		{Pt(-1, 2), '┌', true},
		{Pt(3, 2), '┐', true},
		{Pt(1, 2), '─', true},
		{Pt(0, -1), '─', true},
		{Pt(-1, 0), '│', true},
		{Pt(3, 1), '│', true},
		{Pt(1, 1), 0, false},
		{Pt(5, 5), 0, false},
		{Pt(-2, 0), 0, false},
	}
	for _, tt := range tests {
		got, ok := b.GlyphAt(tt.p, size)
		if ok != tt.ok || got != tt.want {
			t.Errorf("At %v: expected (%q, %v), got (%q, %v)", tt.p, tt.want, tt.ok, got, ok)
		}
	}
}

func TestBorderFrame(t *testing.T) {
	size := Sz(3, 2)
	count := 0
	DoubleLine().Frame(size, func(p Point, g rune) {
		count++
		if p.X >= 0 && p.X < size.W && p.Y >= 0 && p.Y < size.H {
			t.Errorf("Frame visited interior point %v", p)
		}
	})
	// (w+2)*(h+2) - w*h
	if count != 14 {
		t.Errorf("Expected 14 frame cells, got %d", count)
	}
}

func TestCustomBorder(t *testing.T) {
	b := CustomBorder([4]rune{'1', '2', '3', '4'}, [4]rune{'t', 'b', 'l', 'r'})
	size := Sz(1, 1)

	if g, _ := b.GlyphAt(Pt(-1, 1), size); g != '1' {
		t.Errorf("Expected top-left '1', got %q", g)
	}
	if g, _ := b.GlyphAt(Pt(1, -1), size); g != '4' {
		t.Errorf("Expected bottom-right '4', got %q", g)
	}
	if g, _ := b.GlyphAt(Pt(0, -1), size); g != 'b' {
		t.Errorf("Expected bottom 'b', got %q", g)
	}
	if b.Style != BorderCustom {
		t.Errorf("Expected custom style, got %v", b.Style)
	}
}

func TestParseBorderStyle(t *testing.T) {
	for _, s := range []BorderStyle{BorderNone, BorderSingle, BorderDouble, BorderRounded, BorderHeavy} {
		got, ok := ParseBorderStyle(s.String())
		if !ok || got != s {
			t.Errorf("Expected %v, got %v (ok=%v)", s, got, ok)
		}
	}
	if _, ok := ParseBorderStyle("wavy"); ok {
		t.Error("Expected unknown style to fail")
	}
}

func TestBufferBorderMetadata(t *testing.T) {
	buf := New(4, 3).WithBorder(SingleLine())

	if buf.Size() != Sz(4, 3) {
		t.Errorf("Expected addressable size unchanged, got %v", buf.Size())
	}
	if buf.SizeWithBorder() != Sz(6, 5) {
		t.Errorf("Expected 6x5 with border, got %v", buf.SizeWithBorder())
	}

	buf.SetBorder(NewBorder(BorderNone))
	if buf.HasBorder() {
		t.Error("Expected BorderNone to remove the border")
	}
}
