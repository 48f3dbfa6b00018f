package mesh

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/glyphterm/atlas"
	"github.com/lixenwraith/glyphterm/terminal"
	"github.com/lixenwraith/glyphterm/vmath"
)

// Input is everything one rebuild reads
type Input struct {
	Buffer *terminal.TileBuffer
	Map    *atlas.Map
	// FontVersion is the registry version of the bound font, a swap changes it
	FontVersion uint64
	Layout      terminal.Layout
}

// Stamp identifies the inputs of the last successful build
type Stamp struct {
	Buffer uint64
	Font   uint64
	Layout terminal.Layout
}

// Builder regenerates a terminal's vertex data only when its inputs changed
// A failed rebuild keeps the previous data and stamp, so the renderer never sees a partial mesh
// and the next call retries
type Builder struct {
	data    Data
	scratch Data
	stamp   Stamp
	built   bool
}

// NewBuilder creates a builder with no data
func NewBuilder() *Builder {
	return &Builder{}
}

// Data is the last successfully built mesh, valid until the next Build
func (b *Builder) Data() *Data {
	return &b.data
}

// Built reports whether any build has succeeded
func (b *Builder) Built() bool {
	return b.built
}

// Stamp returns the inputs of the last successful build
func (b *Builder) Stamp() Stamp {
	return b.stamp
}

// Invalidate forces the next Build to run
func (b *Builder) Invalidate() {
	b.built = false
}

// Dirty reports whether in differs from the last successful build
func (b *Builder) Dirty(in Input) bool {
	return !b.built || stampOf(in) != b.stamp
}

func stampOf(in Input) Stamp {
	return Stamp{Buffer: in.Buffer.Version(), Font: in.FontVersion, Layout: in.Layout}
}

// Build rebuilds when dirty, reporting whether new data was produced
func (b *Builder) Build(in Input) (bool, error) {
	if in.Buffer == nil || in.Map == nil {
		return false, fmt.Errorf("mesh: missing buffer or atlas map")
	}
	if !b.Dirty(in) {
		return false, nil
	}
	if err := fill(&b.scratch, in); err != nil {
		return false, err
	}
	b.data, b.scratch = b.scratch, b.data
	b.stamp = stampOf(in)
	b.built = true
	return true, nil
}

func fill(d *Data, in Input) error {
	buf := in.Buffer
	size := buf.Size()
	border, hasBorder := buf.Border()

	quads := size.Area()
	if hasBorder {
		bs := buf.SizeWithBorder()
		quads = bs.Area()
	}
	d.reset(quads)

	unit := in.Layout.WorldUnit()
	offset := vmath.Mul2(mgl32.Vec2{float32(size.W), float32(size.H)}, in.Layout.PivotVec())

	for p, tile := range buf.All() {
		uv, err := in.Map.UV(tile.Glyph)
		if err != nil {
			return fmt.Errorf("tile %v: %w", p, err)
		}
		d.addQuad(p, offset, unit, uv, tile.Fg, tile.Bg)
	}

	if hasBorder {
		var ferr error
		border.Frame(size, func(p terminal.Point, glyph rune) {
			if ferr != nil {
				return
			}
			uv, err := in.Map.UV(glyph)
			if err != nil {
				ferr = fmt.Errorf("border %v: %w", p, err)
				return
			}
			d.addQuad(p, offset, unit, uv, border.Fg, border.Bg)
		})
		if ferr != nil {
			return ferr
		}
	}
	return nil
}

// addQuad appends tile p's four vertices
// Corners run top-left, bottom-left, top-right, bottom-right so they pair with the atlas quad
// order origin, origin+up, origin+right, origin+up+right (v grows down the image)
func (d *Data) addQuad(p terminal.Point, offset, unit mgl32.Vec2, uv atlas.Quad, fg, bg terminal.RGBA) {
	base := uint32(len(d.Positions))

	bl := vmath.Mul2(mgl32.Vec2{float32(p.X), float32(p.Y)}.Sub(offset), unit)
	up := mgl32.Vec2{0, unit.Y()}
	right := mgl32.Vec2{unit.X(), 0}

	d.Positions = append(d.Positions,
		bl.Add(up).Vec3(0),
		bl.Vec3(0),
		bl.Add(up).Add(right).Vec3(0),
		bl.Add(right).Vec3(0),
	)
	d.UVs = append(d.UVs, uv[0], uv[1], uv[2], uv[3])

	f := mgl32.Vec4(fg.Linear())
	g := mgl32.Vec4(bg.Linear())
	d.Fg = append(d.Fg, f, f, f, f)
	d.Bg = append(d.Bg, g, g, g, g)

	for _, i := range quadIndices {
		d.Indices = append(d.Indices, base+i)
	}
}
