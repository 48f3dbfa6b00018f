package terminal

import "github.com/go-gl/mathgl/mgl32"

// TileScaling decides how big one tile is in world space
type TileScaling uint8

const (
	// ScalingWorldUnit makes every tile one world unit tall
	ScalingWorldUnit TileScaling = iota
	// ScalingPixelDerived sizes tiles by the pixel size of one atlas cell
	ScalingPixelDerived
)

// String returns the configuration name
func (s TileScaling) String() string {
	if s == ScalingPixelDerived {
		return "pixels"
	}
	return "world"
}

// ParseTileScaling is the inverse of TileScaling.String
func ParseTileScaling(s string) (TileScaling, bool) {
	switch s {
	case "world":
		return ScalingWorldUnit, true
	case "pixels":
		return ScalingPixelDerived, true
	}
	return ScalingWorldUnit, false
}

// Layout is the render-side placement of a buffer: how it is pivoted around its world
// position and how large a tile is
type Layout struct {
	Pivot   Pivot
	Scaling TileScaling
	// PixelsPerTile is the atlas cell size in pixels, set on atlas binding
	PixelsPerTile [2]int
}

// DefaultLayout is centered, world unit scaled, 8x8 pixel cells
func DefaultLayout() Layout {
	return Layout{Pivot: Center, Scaling: ScalingWorldUnit, PixelsPerTile: [2]int{8, 8}}
}

// PivotVec returns the pivot in [0,1]²
func (l Layout) PivotVec() mgl32.Vec2 {
	x, y := l.Pivot.Vec()
	return mgl32.Vec2{x, y}
}

// WorldUnit is the world space size of one tile
func (l Layout) WorldUnit() mgl32.Vec2 {
	if l.Scaling == ScalingPixelDerived {
		return mgl32.Vec2{float32(l.PixelsPerTile[0]), float32(l.PixelsPerTile[1])}
	}
	return mgl32.Vec2{1, 1}
}
