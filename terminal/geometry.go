package terminal

import "github.com/lixenwraith/glyphterm/vmath"

// Point is a grid position, origin bottom-left
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+o
func (p Point) Add(o Point) Point {
	return Point{p.X + o.X, p.Y + o.Y}
}

// Sub returns p-o
func (p Point) Sub(o Point) Point {
	return Point{p.X - o.X, p.Y - o.Y}
}

// Pivot attaches a pivot, the point is then measured inward from that pivot of the buffer
func (p Point) Pivot(pv Pivot) Anchor {
	return Anchor{Point: p, Pivot: pv}
}

// Anchor implements Position, a bare point is anchored bottom-left
func (p Point) Anchor() Anchor {
	return Anchor{Point: p, Pivot: BottomLeft}
}

// Size is a width/height pair in tiles
type Size struct {
	W, H int
}

// Sz is shorthand for Size{w, h}
func Sz(w, h int) Size {
	return Size{W: w, H: h}
}

// Area returns W*H
func (s Size) Area() int {
	return s.W * s.H
}

// Rect is an axis aligned tile rectangle, Min inclusive
type Rect struct {
	Min  Point
	Size Size
}

// Max returns the top-right tile inside the rect
func (r Rect) Max() Point {
	return Point{r.Min.X + r.Size.W - 1, r.Min.Y + r.Size.H - 1}
}

// Contains reports whether p lies within the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.Y >= r.Min.Y &&
		p.X < r.Min.X+r.Size.W && p.Y < r.Min.Y+r.Size.H
}

// Side names an edge of the buffer
type Side uint8

const (
	SideLeft Side = iota
	SideRight
	SideBottom
	SideTop
)

// Pivot is one of nine named anchor points of a box
type Pivot uint8

const (
	BottomLeft Pivot = iota
	BottomCenter
	BottomRight
	LeftCenter
	Center
	RightCenter
	TopLeft
	TopCenter
	TopRight
)

var pivotNames = [...]string{
	BottomLeft:   "bottom_left",
	BottomCenter: "bottom_center",
	BottomRight:  "bottom_right",
	LeftCenter:   "left_center",
	Center:       "center",
	RightCenter:  "right_center",
	TopLeft:      "top_left",
	TopCenter:    "top_center",
	TopRight:     "top_right",
}

// String returns the snake_case name used in configuration files
func (p Pivot) String() string {
	if int(p) < len(pivotNames) {
		return pivotNames[p]
	}
	return "unknown"
}

// ParsePivot is the inverse of Pivot.String
func ParsePivot(s string) (Pivot, bool) {
	for i, name := range pivotNames {
		if name == s {
			return Pivot(i), true
		}
	}
	return BottomLeft, false
}

// Vec returns the pivot in [0,1]², bottom-left (0,0), top-right (1,1)
func (p Pivot) Vec() (x, y float32) {
	col := int(p) % 3
	row := int(p) / 3
	return float32(col) * 0.5, float32(row) * 0.5
}

// axis is the direction an anchored point's offset runs, inward from the pivot
func (p Pivot) axis() Point {
	x, y := p.Vec()
	a := Point{1, 1}
	if x == 1 {
		a.X = -1
	}
	if y == 1 {
		a.Y = -1
	}
	return a
}

// Anchor is a point measured from a pivot of the buffer, the pivot also aligns text
type Anchor struct {
	Point Point
	Pivot Pivot
}

// Anchor implements Position
func (a Anchor) Anchor() Anchor {
	return a
}

// Position is anything that resolves to an Anchor, Point or Anchor
type Position interface {
	Anchor() Anchor
}

// Resolve returns the buffer-local point for the anchor in a buffer of the given size
func (a Anchor) Resolve(size Size) Point {
	px, py := a.Pivot.Vec()
	origin := Point{vmath.PivotOffset(size.W, px), vmath.PivotOffset(size.H, py)}
	axis := a.Pivot.axis()
	return Point{origin.X + a.Point.X*axis.X, origin.Y + a.Point.Y*axis.Y}
}
