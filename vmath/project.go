package vmath

import "github.com/go-gl/mathgl/mgl32"

// ProjectPoint3 transforms p as a point (w=1) and performs the perspective divide
// Affine matrices leave w at 1 so the divide is a no-op for orthographic cameras
func ProjectPoint3(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	r := m.Mul4x1(p.Vec4(1))
	w := r.W()
	if w == 0 || w == 1 {
		return r.Vec3()
	}
	return r.Vec3().Mul(1 / w)
}

// ScreenToNDC maps a viewport-relative position in [0, size] onto [-1, 1]
func ScreenToNDC(pos, size mgl32.Vec2) mgl32.Vec2 {
	n := Div2(pos, size).Mul(2)
	return n.Sub(mgl32.Vec2{1, 1})
}
