package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glyphterm/terminal"
)

// TerminalBuilder provides a fluent interface for constructing terminal entities
// The entity ID is reserved upfront, the component is committed by Build
//
// Example usage:
//
//	e := world.NewTerminal(20, 8).
//	    WithBorder(terminal.SingleLine()).
//	    WithPivot(terminal.TopLeft).
//	    WithPosition(0, 0).
//	    Build()
type TerminalBuilder struct {
	world  *World
	entity Entity
	term   *Terminal
	built  bool
}

// NewTerminal starts a terminal of width×height tiles
func (w *World) NewTerminal(width, height int) *TerminalBuilder {
	return &TerminalBuilder{
		world:  w,
		entity: w.CreateEntity(),
		term:   NewTerminal(terminal.New(width, height)),
	}
}

func (b *TerminalBuilder) check() {
	if b.built {
		panic("terminal already built - cannot configure after Build()")
	}
}

// WithBorder sets the border metadata
func (b *TerminalBuilder) WithBorder(border terminal.Border) *TerminalBuilder {
	b.check()
	b.term.Buffer.SetBorder(border)
	return b
}

// WithPivot sets the layout pivot the terminal is placed around
func (b *TerminalBuilder) WithPivot(p terminal.Pivot) *TerminalBuilder {
	b.check()
	b.term.Layout.Pivot = p
	return b
}

// WithScaling sets the tile scaling mode
func (b *TerminalBuilder) WithScaling(s terminal.TileScaling) *TerminalBuilder {
	b.check()
	b.term.Layout.Scaling = s
	return b
}

// WithFont binds a registry font id
func (b *TerminalBuilder) WithFont(id string) *TerminalBuilder {
	b.check()
	b.term.FontID = id
	return b
}

// WithPosition sets the world x, y
func (b *TerminalBuilder) WithPosition(x, y float32) *TerminalBuilder {
	b.check()
	b.term.Position = mgl32.Vec3{x, y, b.term.Position.Z()}
	return b
}

// WithDepth sets the world z
func (b *TerminalBuilder) WithDepth(z float32) *TerminalBuilder {
	b.check()
	b.term.SetDepth(z)
	return b
}

// WithClearTile sets the clear tile and clears the buffer to it
func (b *TerminalBuilder) WithClearTile(t terminal.Tile) *TerminalBuilder {
	b.check()
	b.term.Buffer.WithClearTile(t)
	return b
}

// WithBgClipColor sets the atlas color replaced by tile backgrounds
func (b *TerminalBuilder) WithBgClipColor(c terminal.RGBA) *TerminalBuilder {
	b.check()
	b.term.Material.BgClipColor = c
	return b
}

// WithCamera binds an explicit camera
func (b *TerminalBuilder) WithCamera(cam Entity) *TerminalBuilder {
	b.check()
	b.term.Camera = cam
	return b
}

// WithClearAfterRender clears the buffer at the end of every frame
func (b *TerminalBuilder) WithClearAfterRender() *TerminalBuilder {
	b.check()
	b.term.ClearAfterRender = true
	return b
}

// WithString writes text during construction
func (b *TerminalBuilder) WithString(at terminal.Position, text terminal.FormattedString) *TerminalBuilder {
	b.check()
	b.term.Buffer.PutString(at, text)
	return b
}

// Terminal exposes the component under construction
func (b *TerminalBuilder) Terminal() *Terminal {
	return b.term
}

// Build commits the terminal to the world and returns its entity
func (b *TerminalBuilder) Build() Entity {
	b.check()
	b.built = true
	b.world.Terminals.Set(b.entity, b.term)
	return b.entity
}
