package transform

import "github.com/go-gl/mathgl/mgl32"

// Viewport is a sub-rectangle of the render target in physical pixels
type Viewport struct {
	Origin mgl32.Vec2
	Size   mgl32.Vec2
}

// Camera is the host-supplied view: a world transform, a projection and where it draws
// Every setter bumps the version so bound transforms know to refresh
type Camera struct {
	position   mgl32.Vec3
	scale      float32
	projection mgl32.Mat4
	viewport   *Viewport
	target     mgl32.Vec2
	version    uint64
}

// NewCamera creates a camera at the origin drawing to a target of the given pixel size
func NewCamera(projection mgl32.Mat4, target mgl32.Vec2) *Camera {
	return &Camera{
		scale:      1,
		projection: projection,
		target:     target,
		version:    1,
	}
}

// NewOrthoCamera maps pixelsPerUnit screen pixels to one world unit, centered on the camera
func NewOrthoCamera(width, height, pixelsPerUnit float32) *Camera {
	return NewCamera(OrthoProjection(width, height, pixelsPerUnit), mgl32.Vec2{width, height})
}

// OrthoProjection is a centered orthographic projection for a width×height pixel target
func OrthoProjection(width, height, pixelsPerUnit float32) mgl32.Mat4 {
	if pixelsPerUnit <= 0 {
		pixelsPerUnit = 1
	}
	hw := width / 2 / pixelsPerUnit
	hh := height / 2 / pixelsPerUnit
	return mgl32.Ortho(-hw, hw, -hh, hh, -1000, 1000)
}

func (c *Camera) touch() {
	c.version++
}

// Version increments on every change
func (c *Camera) Version() uint64 {
	return c.version
}

// Position is the camera's world translation
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.touch()
}

// SetScale zooms the camera, values above 1 show more of the world
func (c *Camera) SetScale(s float32) {
	if s <= 0 {
		s = 1
	}
	c.scale = s
	c.touch()
}

// Transform is the camera's world matrix, translation times uniform scale
func (c *Camera) Transform() mgl32.Mat4 {
	return mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).
		Mul4(mgl32.Scale3D(c.scale, c.scale, 1))
}

// Projection returns the clip-from-view matrix
func (c *Camera) Projection() mgl32.Mat4 {
	return c.projection
}

// SetProjection replaces the clip-from-view matrix
func (c *Camera) SetProjection(m mgl32.Mat4) {
	c.projection = m
	c.touch()
}

// SetViewport restricts drawing to a sub-rectangle, nil draws to the whole target
func (c *Camera) SetViewport(v *Viewport) {
	if v != nil {
		cp := *v
		v = &cp
	}
	c.viewport = v
	c.touch()
}

// SetTargetSize records the render target size, e.g. after a window resize
func (c *Camera) SetTargetSize(size mgl32.Vec2) {
	c.target = size
	c.touch()
}

// ResolvedViewport returns the explicit viewport, else the whole target
// ok is false while the target size is still unknown
func (c *Camera) ResolvedViewport() (Viewport, bool) {
	if c.viewport != nil {
		return *c.viewport, true
	}
	if c.target.X() <= 0 || c.target.Y() <= 0 {
		return Viewport{}, false
	}
	return Viewport{Size: c.target}, true
}

// NDCToWorld maps normalized device coordinates back into world space
func (c *Camera) NDCToWorld() mgl32.Mat4 {
	return c.Transform().Mul4(c.projection.Inv())
}
