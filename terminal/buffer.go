package terminal

import (
	"fmt"
	"strings"
)

// TileBuffer is a fixed-size grid of tiles stored row-major, origin bottom-left
// Every mutation bumps a version counter that mesh and transform consumers compare
// against their last build stamp
// Single writer: concurrent mutation of one buffer is the caller's problem
type TileBuffer struct {
	tiles     []Tile
	width     int
	height    int
	clearTile Tile
	border    *Border
	version   uint64
}

// New creates a buffer filled with the default tile
// Both dimensions must be at least 1
func New(width, height int) *TileBuffer {
	mustSize(width, height)
	b := &TileBuffer{
		clearTile: DefaultTile(),
	}
	b.alloc(width, height)
	return b
}

func mustSize(width, height int) {
	if width < 1 || height < 1 {
		panic(fmt.Sprintf("terminal: invalid buffer size %dx%d", width, height))
	}
}

func (b *TileBuffer) alloc(width, height int) {
	b.tiles = make([]Tile, width*height)
	b.width = width
	b.height = height
	b.fill(b.clearTile)
	b.version++
}

// fill resets all tiles using exponential copy
func (b *TileBuffer) fill(t Tile) {
	if len(b.tiles) == 0 {
		return
	}
	b.tiles[0] = t
	for filled := 1; filled < len(b.tiles); filled *= 2 {
		copy(b.tiles[filled:], b.tiles[:filled])
	}
}

// touch marks the buffer changed
func (b *TileBuffer) touch() {
	b.version++
}

// Version is a monotonic change counter, any mutation increments it
func (b *TileBuffer) Version() uint64 {
	return b.version
}

// ===== CONFIGURATION =====

// WithBorder sets a border and returns the buffer for chaining
func (b *TileBuffer) WithBorder(border Border) *TileBuffer {
	b.SetBorder(border)
	return b
}

// WithClearTile sets the clear tile and clears the buffer to it
func (b *TileBuffer) WithClearTile(t Tile) *TileBuffer {
	b.clearTile = t
	b.Clear()
	return b
}

// ClearTile returns the tile written by clear operations
func (b *TileBuffer) ClearTile() Tile {
	return b.clearTile
}

// SetClearTile changes the clear tile without touching existing content
func (b *TileBuffer) SetClearTile(t Tile) {
	b.clearTile = t
}

// SetBorder sets the border, a BorderNone style removes it
func (b *TileBuffer) SetBorder(border Border) {
	if border.Style == BorderNone {
		b.RemoveBorder()
		return
	}
	b.border = &border
	b.touch()
}

// RemoveBorder drops the border
func (b *TileBuffer) RemoveBorder() {
	if b.border == nil {
		return
	}
	b.border = nil
	b.touch()
}

// Border returns the border, ok false when none is set
func (b *TileBuffer) Border() (Border, bool) {
	if b.border == nil {
		return Border{}, false
	}
	return *b.border, true
}

// HasBorder reports whether a border is set
func (b *TileBuffer) HasBorder() bool {
	return b.border != nil
}

// Resize reallocates to the new size and clears every tile, previous content is lost
func (b *TileBuffer) Resize(width, height int) {
	mustSize(width, height)
	b.alloc(width, height)
}

// ===== SIZE =====

// Width excludes the border
func (b *TileBuffer) Width() int { return b.width }

// Height excludes the border
func (b *TileBuffer) Height() int { return b.height }

// Size excludes the border
func (b *TileBuffer) Size() Size { return Size{b.width, b.height} }

// Len is the number of addressable tiles
func (b *TileBuffer) Len() int { return len(b.tiles) }

func (b *TileBuffer) borderPad() int {
	if b.border != nil {
		return 2
	}
	return 0
}

// WidthWithBorder adds 2 when a border is set
func (b *TileBuffer) WidthWithBorder() int { return b.width + b.borderPad() }

// HeightWithBorder adds 2 when a border is set
func (b *TileBuffer) HeightWithBorder() int { return b.height + b.borderPad() }

// SizeWithBorder adds (2,2) when a border is set
func (b *TileBuffer) SizeWithBorder() Size {
	return Size{b.WidthWithBorder(), b.HeightWithBorder()}
}

// Bounds is the addressable area in local space
func (b *TileBuffer) Bounds() Rect {
	return Rect{Size: b.Size()}
}

// BoundsWithBorder grows Bounds by one tile on each side when a border is set
func (b *TileBuffer) BoundsWithBorder() Rect {
	r := b.Bounds()
	if b.border != nil {
		r.Min = Point{-1, -1}
		r.Size = b.SizeWithBorder()
	}
	return r
}

// SideIndex returns the column (left/right) or row (bottom/top) of the given edge
func (b *TileBuffer) SideIndex(side Side) int {
	switch side {
	case SideRight:
		return b.width - 1
	case SideTop:
		return b.height - 1
	default:
		return 0
	}
}

// ===== COORDINATES =====

// InBounds returns true if p addresses a tile
func (b *TileBuffer) InBounds(p Point) bool {
	return p.X >= 0 && p.X < b.width && p.Y >= 0 && p.Y < b.height
}

// LocalToIndex converts a local position to its index in the row-major tile slice
// Panics when p is out of bounds
func (b *TileBuffer) LocalToIndex(p Point) int {
	if !b.InBounds(p) {
		panic(fmt.Sprintf("terminal: position %v out of bounds for %dx%d buffer", p, b.width, b.height))
	}
	return p.Y*b.width + p.X
}

// IndexToLocal converts a tile slice index to its local position
func (b *TileBuffer) IndexToLocal(i int) Point {
	if i < 0 || i >= len(b.tiles) {
		panic(fmt.Sprintf("terminal: index %d out of range [0,%d)", i, len(b.tiles)))
	}
	return Point{i % b.width, i / b.width}
}

// LocalToCentered moves a bottom-left origin position to a center origin one
func (b *TileBuffer) LocalToCentered(p Point) Point {
	return Point{p.X - b.width/2, p.Y - b.height/2}
}

// CenteredToLocal is the inverse of LocalToCentered
func (b *TileBuffer) CenteredToLocal(p Point) Point {
	return Point{p.X + b.width/2, p.Y + b.height/2}
}

// Resolve turns a Position into a local point
func (b *TileBuffer) Resolve(at Position) Point {
	return at.Anchor().Resolve(b.Size())
}

// ===== ACCESS =====

// GetTile returns a copy of the tile at p, panics out of bounds
func (b *TileBuffer) GetTile(p Point) Tile {
	return b.tiles[b.LocalToIndex(p)]
}

// GetTileMut returns a pointer into the buffer and marks it changed, panics out of bounds
func (b *TileBuffer) GetTileMut(p Point) *Tile {
	i := b.LocalToIndex(p)
	b.touch()
	return &b.tiles[i]
}

// GetChar returns the glyph at p
func (b *TileBuffer) GetChar(p Point) rune {
	return b.GetTile(p).Glyph
}

// GetString reads up to n glyphs starting at p in row-major order, wrapping to the next row
func (b *TileBuffer) GetString(p Point, n int) string {
	i := b.LocalToIndex(p)
	end := min(i+max(n, 0), len(b.tiles))
	var sb strings.Builder
	for _, t := range b.tiles[i:end] {
		sb.WriteRune(t.Glyph)
	}
	return sb.String()
}

// PutChar writes the glyph and only the explicitly set colors
func (b *TileBuffer) PutChar(p Point, c FormattedChar) {
	t := b.GetTileMut(p)
	t.Glyph = c.Glyph
	c.Apply(t)
}

// PutTile overwrites the whole tile
func (b *TileBuffer) PutTile(p Point, tile Tile) {
	*b.GetTileMut(p) = tile
}

// PutColor updates exactly one color channel
func (b *TileBuffer) PutColor(p Point, c ColorFormat) {
	t := b.GetTileMut(p)
	switch c.Target {
	case TargetFg:
		t.Fg = c.Color
	case TargetBg:
		t.Bg = c.Color
	}
}

// ===== CLEAR =====

// Clear resets every tile to the clear tile
func (b *TileBuffer) Clear() {
	b.fill(b.clearTile)
	b.touch()
}

// ClearBox resets a rectangle, clipped to the buffer
func (b *TileBuffer) ClearBox(p Point, size Size) {
	x0, y0 := max(p.X, 0), max(p.Y, 0)
	x1, y1 := min(p.X+size.W, b.width), min(p.Y+size.H, b.height)
	for y := y0; y < y1; y++ {
		row := b.tiles[y*b.width : (y+1)*b.width]
		for x := x0; x < x1; x++ {
			row[x] = b.clearTile
		}
	}
	b.touch()
}

// ClearLine resets row y, panics out of bounds
func (b *TileBuffer) ClearLine(y int) {
	for i := range b.RowMut(y) {
		b.tiles[y*b.width+i] = b.clearTile
	}
}

// ClearString resets n tiles starting at p in row-major order, clipped to the buffer end
func (b *TileBuffer) ClearString(p Point, n int) {
	i := b.LocalToIndex(p)
	end := min(i+max(n, 0), len(b.tiles))
	for j := i; j < end; j++ {
		b.tiles[j] = b.clearTile
	}
	b.touch()
}
