package atlas

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Quad holds the four texture coordinates of one glyph cell
// Corner order is origin, origin+up, origin+right, origin+up+right, where origin is the
// cell's top-left texel and up points along +v (down the image rows)
type Quad [4]mgl32.Vec2

// MissingGlyphError is returned when a glyph has no atlas cell
type MissingGlyphError struct {
	Glyph rune
}

func (e *MissingGlyphError) Error() string {
	return fmt.Sprintf("atlas: glyph %q (U+%04X) not present in mapping", e.Glyph, e.Glyph)
}

// Map assigns each glyph of an ordering to a cell of a cols×rows atlas grid
// A Map is immutable after construction and may be shared between terminals
type Map struct {
	grid [2]int
	uvs  map[rune]Quad
}

// NewMap maps ordering[i] to grid cell (i % cols, i / cols)
// Glyphs beyond cols*rows are rejected, a repeated glyph keeps its last cell
func NewMap(grid [2]int, ordering []rune) (*Map, error) {
	if grid[0] < 1 || grid[1] < 1 {
		return nil, fmt.Errorf("atlas: invalid grid %dx%d", grid[0], grid[1])
	}
	if len(ordering) > grid[0]*grid[1] {
		return nil, fmt.Errorf("atlas: %d glyphs exceed %dx%d grid", len(ordering), grid[0], grid[1])
	}
	m := &Map{grid: grid, uvs: make(map[rune]Quad, len(ordering))}
	for i, r := range ordering {
		m.uvs[r] = GridUVs(i%grid[0], i/grid[0], grid)
	}
	return m, nil
}

// CodePage437 is the default 16x16 mapping
func CodePage437() *Map {
	m, err := NewMap([2]int{16, 16}, CP437[:])
	if err != nil {
		panic(err)
	}
	return m
}

// GridUVs computes the quad of cell (x, y) in a cols×rows grid
func GridUVs(x, y int, grid [2]int) Quad {
	size := mgl32.Vec2{1 / float32(grid[0]), 1 / float32(grid[1])}
	right := mgl32.Vec2{size.X(), 0}
	up := mgl32.Vec2{0, size.Y()}
	origin := mgl32.Vec2{float32(x) * size.X(), float32(y) * size.Y()}
	return Quad{
		origin,
		origin.Add(up),
		origin.Add(right),
		origin.Add(up).Add(right),
	}
}

// UV returns the quad for glyph, *MissingGlyphError when it was not in the ordering
func (m *Map) UV(glyph rune) (Quad, error) {
	q, ok := m.uvs[glyph]
	if !ok {
		return Quad{}, &MissingGlyphError{Glyph: glyph}
	}
	return q, nil
}

// UVsFromIndex looks up the code page 437 glyph at index i
func (m *Map) UVsFromIndex(i uint8) (Quad, error) {
	return m.UV(IndexToGlyph(i))
}

// Contains reports whether glyph has a cell
func (m *Map) Contains(glyph rune) bool {
	_, ok := m.uvs[glyph]
	return ok
}

// Grid returns [cols, rows]
func (m *Map) Grid() [2]int {
	return m.grid
}

// Len is the number of mapped glyphs
func (m *Map) Len() int {
	return len(m.uvs)
}
