package render

import (
	"image"
	"sync"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/engine"
	"github.com/lixenwraith/glyphterm/terminal"
)

func newTestScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Screen init failed: %v", err)
	}
	screen.SetSize(20, 10)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestWorld(t *testing.T, preview *Preview) *engine.World {
	t.Helper()
	fonts := atlas.NewRegistry()
	f, err := atlas.NewFont(atlas.BuiltinMono, image.NewRGBA(image.Rect(0, 0, 128, 128)), atlas.CodePage437())
	if err != nil {
		t.Fatalf("NewFont failed: %v", err)
	}
	fonts.Register(atlas.BuiltinMono, f)

	w := engine.NewDefaultWorld(fonts)
	w.SetDefaultCamera(w.AddCamera(preview.Camera()))
	return w
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestPreviewPlacesTiles(t *testing.T) {
	screen := newTestScreen(t)
	preview := NewPreview(screen)
	w := newTestWorld(t, preview)

	w.NewTerminal(4, 2).
		WithPivot(terminal.BottomLeft).
		WithString(terminal.Pt(0, 0), terminal.Text("ab")).
		WithString(terminal.Pt(0, 1), terminal.Text("cd")).
		Build()
	w.Update(0)
	preview.Draw(w)

	// World origin is the screen center, tile rows grow upward
	tests := []struct {
		x, y int
		want rune
	}{
		{10, 4, 'a'},
		{11, 4, 'b'},
		{10, 3, 'c'},
		{11, 3, 'd'},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("Cell (%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestPreviewDrawsBorder(t *testing.T) {
	screen := newTestScreen(t)
	preview := NewPreview(screen)
	w := newTestWorld(t, preview)

	w.NewTerminal(2, 1).
		WithPivot(terminal.BottomLeft).
		WithBorder(terminal.SingleLine()).
		Build()
	w.Update(0)
	preview.Draw(w)

	// Terminal occupies cells (10..11, 4), frame surrounds it
	tests := []struct {
		x, y int
		want rune
	}{
		{9, 5, '└'},
		{12, 5, '┘'},
		{9, 3, '┌'},
		{12, 3, '┐'},
		{10, 3, '─'},
		{9, 4, '│'},
	}
	for _, tt := range tests {
		if got := runeAt(screen, tt.x, tt.y); got != tt.want {
			t.Errorf("Cell (%d,%d): expected %q, got %q", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestPreviewDepthOrder(t *testing.T) {
	screen := newTestScreen(t)
	preview := NewPreview(screen)
	w := newTestWorld(t, preview)

	w.NewTerminal(1, 1).WithPivot(terminal.BottomLeft).WithDepth(5).
		WithString(terminal.Pt(0, 0), terminal.Text("F")).Build()
	w.NewTerminal(1, 1).WithPivot(terminal.BottomLeft).WithDepth(1).
		WithString(terminal.Pt(0, 0), terminal.Text("B")).Build()
	w.Update(0)
	preview.Draw(w)

	if got := runeAt(screen, 10, 4); got != 'F' {
		t.Errorf("Expected front terminal on top, got %q", got)
	}
}

func TestPreviewPick(t *testing.T) {
	screen := newTestScreen(t)
	preview := NewPreview(screen)
	w := newTestWorld(t, preview)

	e := w.NewTerminal(4, 2).WithPivot(terminal.BottomLeft).Build()
	w.Update(0)

	got, tile, ok := preview.Pick(w, 11, 3)
	if !ok || got != e || tile != terminal.Pt(1, 1) {
		t.Errorf("Expected terminal %d tile (1,1), got %d %v ok=%v", e, got, tile, ok)
	}
	if _, _, ok := preview.Pick(w, 0, 0); ok {
		t.Error("Expected no terminal under the screen corner")
	}
}

func TestPreviewSkipsDestroyedTerminals(t *testing.T) {
	screen := newTestScreen(t)
	preview := NewPreview(screen)
	w := newTestWorld(t, preview)
	for i := range 6 {
		w.NewTerminal(3, 1).WithDepth(float32(i)).Build()
	}
	w.Update(0)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			for _, e := range w.Terminals.Entities() {
				w.DestroyEntity(e)
				w.NewTerminal(3, 1).Build()
			}
		}
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Expected draw and pick to skip destroyed terminals, got panic: %v", r)
			}
		}()
		for range 2000 {
			preview.Draw(w)
			preview.Pick(w, 10, 5)
		}
	}()

	close(stop)
	wg.Wait()
}

func TestCellGlyph(t *testing.T) {
	if g, wide := cellGlyph('\x00'); g != ' ' || wide {
		t.Errorf("Expected NUL drawn blank, got %q wide=%v", g, wide)
	}
	if g, wide := cellGlyph('A'); g != 'A' || wide {
		t.Errorf("Expected narrow A, got %q wide=%v", g, wide)
	}
	if _, wide := cellGlyph('字'); !wide {
		t.Error("Expected CJK glyph to be wide")
	}
}

func TestColorBridge(t *testing.T) {
	if ToTcell(terminal.Transparent) != tcell.ColorDefault {
		t.Error("Expected transparent to map to ColorDefault")
	}
	c := terminal.RGB(10, 20, 30)
	if got := FromTcell(ToTcell(c)); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if FromTcell(tcell.ColorDefault) != terminal.Transparent {
		t.Error("Expected ColorDefault to map to transparent")
	}
}
