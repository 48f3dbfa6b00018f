package engine

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/mesh"
	"github.com/lixenwraith/glyphterm/terminal"
	"github.com/lixenwraith/glyphterm/transform"
)

// Terminal is the component tying a tile buffer to its font, placement and derived state
// Buffer, Position, Layout, FontID, Camera and Material are host-owned inputs
// ToWorld and Mesh are refreshed by the transform and mesh systems
type Terminal struct {
	Buffer *terminal.TileBuffer
	// Position is the world translation, z is the depth
	Position mgl32.Vec3
	Layout   terminal.Layout
	Material mesh.Material
	FontID   string
	// Camera is an explicit camera binding, 0 uses the world default
	Camera Entity
	// ClearAfterRender clears the buffer at the end of every frame
	ClearAfterRender bool

	ToWorld *transform.ToWorld
	Mesh    *mesh.Builder

	font        *atlas.Font
	fontVersion uint64
	fontMissing bool
	meshErr     error
}

// NewTerminal wraps buf with default layout, material and the built-in font
func NewTerminal(buf *terminal.TileBuffer) *Terminal {
	return &Terminal{
		Buffer:   buf,
		Layout:   terminal.DefaultLayout(),
		Material: mesh.DefaultMaterial(),
		FontID:   atlas.BuiltinMono,
		ToWorld:  transform.New(),
		Mesh:     mesh.NewBuilder(),
	}
}

// Font returns the resolved font and its registry version
func (t *Terminal) Font() (*atlas.Font, uint64, bool) {
	return t.font, t.fontVersion, t.font != nil
}

// SetFont rebinds the terminal to another registry id, the mesh rebuilds next frame
func (t *Terminal) SetFont(id string) {
	t.FontID = id
}

// Depth is the world z of the terminal
func (t *Terminal) Depth() float32 {
	return t.Position.Z()
}

// SetDepth changes the world z, keeping x and y
func (t *Terminal) SetDepth(z float32) {
	t.Position[2] = z
}

// MeshInput assembles what the mesh builder reads
func (t *Terminal) MeshInput() mesh.Input {
	in := mesh.Input{Buffer: t.Buffer, FontVersion: t.fontVersion, Layout: t.Layout}
	if t.font != nil {
		in.Map = t.font.Map
	}
	return in
}

// MeshError is the error of the last failed rebuild, nil after a successful one
func (t *Terminal) MeshError() error {
	return t.meshErr
}
