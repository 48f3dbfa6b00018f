package render

import (
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/glyphterm/engine"
	"github.com/lixenwraith/glyphterm/parameter"
	"github.com/lixenwraith/glyphterm/terminal"
	"github.com/lixenwraith/glyphterm/transform"
	"github.com/lixenwraith/glyphterm/vmath"
)

// Preview draws a world's terminals onto a tcell screen, one screen cell per world unit
// The camera is an orthographic view whose pixels are screen cells, y up
type Preview struct {
	screen tcell.Screen
	camera *transform.Camera
}

// NewPreview creates a preview sized to the screen
func NewPreview(screen tcell.Screen) *Preview {
	w, h := screen.Size()
	return &Preview{
		screen: screen,
		camera: transform.NewOrthoCamera(float32(w), float32(h), 1),
	}
}

// Camera is the preview's camera, register it with the world to enable cell picking
func (p *Preview) Camera() *transform.Camera {
	return p.camera
}

// Resize matches the camera to the current screen size
func (p *Preview) Resize() {
	w, h := p.screen.Size()
	p.camera.SetTargetSize(mgl32.Vec2{float32(w), float32(h)})
	p.camera.SetProjection(transform.OrthoProjection(float32(w), float32(h), 1))
}

// Priority implements engine.System
func (p *Preview) Priority() int { return parameter.PriorityPreview }

// Update implements engine.System, drawing and presenting the frame
func (p *Preview) Update(w *engine.World, _ time.Duration) {
	p.Draw(w)
	p.screen.Show()
}

// Draw blits every terminal back to front by depth, borders included, without Show
func (p *Preview) Draw(w *engine.World) {
	p.screen.Clear()
	for _, dt := range p.byDepth(w) {
		p.drawTerminal(dt.term)
	}
}

type depthTerminal struct {
	entity engine.Entity
	term   *engine.Terminal
}

// byDepth snapshots the live terminals back to front
// Entities destroyed since the store snapshot are skipped
func (p *Preview) byDepth(w *engine.World) []depthTerminal {
	ents := w.Terminals.Entities()
	out := make([]depthTerminal, 0, len(ents))
	for _, e := range ents {
		if t, ok := w.Terminal(e); ok {
			out = append(out, depthTerminal{entity: e, term: t})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].term.Depth() < out[j].term.Depth()
	})
	return out
}

func (p *Preview) drawTerminal(t *engine.Terminal) {
	buf := t.Buffer
	for y := range buf.Height() {
		row := buf.Row(y)
		skip := false
		for x, tile := range row {
			if skip {
				skip = false
				continue
			}
			col, line, ok := p.WorldToCell(t.ToWorld.TileCenterToWorld(terminal.Pt(x, y)))
			if !ok {
				continue
			}
			glyph, wide := cellGlyph(tile.Glyph)
			p.screen.SetContent(col, line, glyph, nil, TileStyle(tile.Fg, tile.Bg))
			skip = wide
		}
	}

	border, ok := buf.Border()
	if !ok {
		return
	}
	style := TileStyle(border.Fg, border.Bg)
	border.Frame(buf.Size(), func(bp terminal.Point, g rune) {
		if col, line, ok := p.WorldToCell(t.ToWorld.TileCenterToWorld(bp)); ok {
			glyph, _ := cellGlyph(g)
			p.screen.SetContent(col, line, glyph, nil, style)
		}
	})
}

// cellGlyph maps zero-width glyphs to a blank and reports glyphs covering two cells
func cellGlyph(r rune) (rune, bool) {
	switch runewidth.RuneWidth(r) {
	case 0:
		return ' ', false
	case 2:
		return r, true
	}
	return r, false
}

// WorldToCell projects a world position through the camera onto a screen cell
// ok is false outside the screen
func (p *Preview) WorldToCell(world mgl32.Vec3) (col, row int, ok bool) {
	vp, resolved := p.camera.ResolvedViewport()
	if !resolved {
		return 0, 0, false
	}
	clip := p.camera.Projection().Mul4(p.camera.Transform().Inv())
	ndc := vmath.ProjectPoint3(clip, world).Vec2()
	screen := vmath.Mul2(ndc.Add(mgl32.Vec2{1, 1}).Mul(0.5), vp.Size).Add(vp.Origin)

	col = vmath.FloorInt(screen.X())
	// Screen rows grow downward
	row = int(vp.Size.Y()) - 1 - vmath.FloorInt(screen.Y())
	w, h := p.screen.Size()
	return col, row, col >= 0 && row >= 0 && col < w && row < h
}

// CellToScreen converts a screen cell to the y-up pixel position of its center
func (p *Preview) CellToScreen(col, row int) mgl32.Vec2 {
	_, h := p.screen.Size()
	return mgl32.Vec2{float32(col) + 0.5, float32(h-row) - 0.5}
}

// Pick returns the topmost terminal and tile under a screen cell
// Terminals must be bound to the preview camera for their transforms to resolve
func (p *Preview) Pick(w *engine.World, col, row int) (engine.Entity, terminal.Point, bool) {
	screen := p.CellToScreen(col, row)
	terms := p.byDepth(w)
	for i := len(terms) - 1; i >= 0; i-- {
		if tile, ok := terms[i].term.ToWorld.ScreenToTileInBounds(screen); ok {
			return terms[i].entity, tile, true
		}
	}
	return 0, terminal.Point{}, false
}
