package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// RoundInt rounds half away from zero, the rule used for every pivot offset
func RoundInt(v float64) int {
	return int(math.Round(v))
}

// FloorInt floors toward negative infinity
// Plain int conversion truncates toward zero and would map -0.5 to tile 0
func FloorInt(v float32) int {
	return int(math.Floor(float64(v)))
}

// FloorVec2 floors both components of a world position onto the integer grid
func FloorVec2(v mgl32.Vec2) (x, y int) {
	return FloorInt(v.X()), FloorInt(v.Y())
}

// PivotOffset returns round((n-1) * pivot), the distance from the first cell of an
// n-cell span to the cell the pivot lands on
func PivotOffset(n int, pivot float32) int {
	if n <= 1 {
		return 0
	}
	return RoundInt(float64(n-1) * float64(pivot))
}

// Mul2 multiplies component-wise
func Mul2(a, b mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{a.X() * b.X(), a.Y() * b.Y()}
}

// Div2 divides component-wise, zero divisors leave the component untouched
func Div2(a, b mgl32.Vec2) mgl32.Vec2 {
	out := a
	if b.X() != 0 {
		out[0] = a.X() / b.X()
	}
	if b.Y() != 0 {
		out[1] = a.Y() / b.Y()
	}
	return out
}
