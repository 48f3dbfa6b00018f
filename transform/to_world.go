package transform

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glyphterm/terminal"
	"github.com/lixenwraith/glyphterm/vmath"
)

// snapEpsilon absorbs float error so a tile's own corner floors back onto that tile
// It is measured in tiles: a point up to 1e-4 tile left of or below a tile edge
// belongs to the tile past that edge
const snapEpsilon = 1e-4

// ToWorld converts between a terminal's tile grid, world space and screen space
// Buffer-derived state and camera-derived state refresh independently through
// UpdateFromTerminal and UpdateFromCamera
type ToWorld struct {
	termSize mgl32.Vec2
	termPos  mgl32.Vec3
	layout   terminal.Layout

	camera        *Camera
	cameraVersion uint64
	ndcToWorld    mgl32.Mat4
	cameraPos     mgl32.Vec3
	viewport      Viewport
	hasViewport   bool
}

// New creates a transform with no camera resolved
func New() *ToWorld {
	return &ToWorld{layout: terminal.DefaultLayout()}
}

// UpdateFromTerminal refreshes buffer-derived state, reporting whether anything changed
func (t *ToWorld) UpdateFromTerminal(size terminal.Size, pos mgl32.Vec3, layout terminal.Layout) bool {
	s := mgl32.Vec2{float32(size.W), float32(size.H)}
	if s == t.termSize && pos == t.termPos && layout == t.layout {
		return false
	}
	t.termSize, t.termPos, t.layout = s, pos, layout
	return true
}

// UpdateFromCamera refreshes camera-derived state when cam differs from the bound camera
// or has changed since the last call
// A nil camera clears camera state and leaves screen queries unresolved
func (t *ToWorld) UpdateFromCamera(cam *Camera) bool {
	if cam == nil {
		if t.camera == nil {
			return false
		}
		t.camera = nil
		t.cameraVersion = 0
		t.hasViewport = false
		return true
	}
	if cam == t.camera && cam.Version() == t.cameraVersion {
		return false
	}
	t.camera = cam
	t.cameraVersion = cam.Version()
	t.cameraPos = cam.Position()
	t.ndcToWorld = cam.NDCToWorld()
	t.viewport, t.hasViewport = cam.ResolvedViewport()
	return true
}

// WorldUnit is the world size of one tile
func (t *ToWorld) WorldUnit() mgl32.Vec2 {
	return t.layout.WorldUnit()
}

// pivotOffset is term_size * pivot in tiles
func (t *ToWorld) pivotOffset() mgl32.Vec2 {
	return vmath.Mul2(t.termSize, t.layout.PivotVec())
}

// TileToWorld returns the world position of the bottom-left corner of tile p
// Tile offsets from the pivot are scaled by WorldUnit before the terminal position is
// added, so under pixel scaling a tile spans one atlas cell of world space
// z is the terminal's depth
func (t *ToWorld) TileToWorld(p terminal.Point) mgl32.Vec3 {
	tile := mgl32.Vec2{float32(p.X), float32(p.Y)}
	xy := vmath.Mul2(tile.Sub(t.pivotOffset()), t.WorldUnit()).Add(t.termPos.Vec2())
	return xy.Vec3(t.termPos.Z())
}

// TileCenterToWorld returns the world position of the center of tile p
func (t *ToWorld) TileCenterToWorld(p terminal.Point) mgl32.Vec3 {
	half := t.WorldUnit().Mul(0.5)
	return t.TileToWorld(p).Add(half.Vec3(0))
}

// WorldToTile returns the tile containing a world position, which may lie outside the buffer
// The result is floor(rel + snapEpsilon), rel being the position in tiles from the buffer origin
func (t *ToWorld) WorldToTile(world mgl32.Vec2) terminal.Point {
	rel := vmath.Div2(world.Sub(t.termPos.Vec2()), t.WorldUnit()).Add(t.pivotOffset())
	return terminal.Point{
		X: vmath.FloorInt(rel.X() + snapEpsilon),
		Y: vmath.FloorInt(rel.Y() + snapEpsilon),
	}
}

// ScreenToWorld unprojects a pixel position, y up from the bottom of the target
// ok is false until a camera with a known viewport has been applied
func (t *ToWorld) ScreenToWorld(screen mgl32.Vec2) (mgl32.Vec2, bool) {
	if !t.hasViewport {
		return mgl32.Vec2{}, false
	}
	ndc := vmath.ScreenToNDC(screen.Sub(t.viewport.Origin), t.viewport.Size)
	world := vmath.ProjectPoint3(t.ndcToWorld, ndc.Vec3(-1))
	return world.Vec2(), true
}

// ScreenToTile chains ScreenToWorld and WorldToTile
func (t *ToWorld) ScreenToTile(screen mgl32.Vec2) (terminal.Point, bool) {
	w, ok := t.ScreenToWorld(screen)
	if !ok {
		return terminal.Point{}, false
	}
	return t.WorldToTile(w), true
}

// ScreenToTileInBounds is ScreenToTile restricted to addressable tiles
func (t *ToWorld) ScreenToTileInBounds(screen mgl32.Vec2) (terminal.Point, bool) {
	p, ok := t.ScreenToTile(screen)
	if !ok {
		return p, false
	}
	inside := p.X >= 0 && p.Y >= 0 && float32(p.X) < t.termSize.X() && float32(p.Y) < t.termSize.Y()
	return p, inside
}

// WorldPosition is the terminal's world translation
func (t *ToWorld) WorldPosition() mgl32.Vec3 {
	return t.termPos
}

// CameraPosition is the bound camera's translation
func (t *ToWorld) CameraPosition() (mgl32.Vec3, bool) {
	return t.cameraPos, t.camera != nil
}

// Viewport is the resolved viewport of the bound camera
func (t *ToWorld) Viewport() (Viewport, bool) {
	return t.viewport, t.hasViewport
}

// Camera is the currently bound camera, nil when unresolved
func (t *ToWorld) Camera() *Camera {
	return t.camera
}
