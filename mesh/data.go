package mesh

import "github.com/go-gl/mathgl/mgl32"

// Data holds the vertex attribute arrays of one terminal, four vertices per tile quad
// Positions are local to the terminal, the host applies the terminal's world transform
type Data struct {
	Positions []mgl32.Vec3
	UVs       []mgl32.Vec2
	Fg        []mgl32.Vec4
	Bg        []mgl32.Vec4
	Indices   []uint32
}

// quadIndices triangulates corners ordered top-left, bottom-left, top-right, bottom-right
// Both triangles wind counter-clockwise
var quadIndices = [6]uint32{0, 1, 2, 3, 2, 1}

func (d *Data) reset(quads int) {
	n := quads * 4
	d.Positions = d.Positions[:0]
	d.UVs = d.UVs[:0]
	d.Fg = d.Fg[:0]
	d.Bg = d.Bg[:0]
	d.Indices = d.Indices[:0]
	if cap(d.Positions) < n {
		d.Positions = make([]mgl32.Vec3, 0, n)
		d.UVs = make([]mgl32.Vec2, 0, n)
		d.Fg = make([]mgl32.Vec4, 0, n)
		d.Bg = make([]mgl32.Vec4, 0, n)
	}
	if cap(d.Indices) < quads*6 {
		d.Indices = make([]uint32, 0, quads*6)
	}
}

// VertexCount is the number of vertices
func (d *Data) VertexCount() int {
	return len(d.Positions)
}

// QuadCount is the number of tile quads
func (d *Data) QuadCount() int {
	return len(d.Positions) / 4
}
