package mesh

import (
	"github.com/lixenwraith/glyphterm/terminal"
)

// Material flag bits, shared with the glyph shader
const (
	FlagNone    uint32 = 0
	FlagTexture uint32 = 1 << 0
)

// Material carries the per-terminal shader parameters
//
// Shader contract: a texel equal to BgClipColor is not drawn as sampled but replaced by the
// tile's background color, every other texel is tinted by the tile's foreground color
// Mesh data never encodes this substitution, it only supplies both colors per vertex
type Material struct {
	BgClipColor terminal.RGBA
}

// DefaultMaterial clips black texels, matching white-on-black atlases
func DefaultMaterial() Material {
	return Material{BgClipColor: terminal.Black}
}

// Uniform is the GPU layout of a Material: linear clip color and flag bits
type Uniform struct {
	Color [4]float32
	Flags uint32
}

// Uniform converts the material for upload, hasTexture sets FlagTexture
func (m Material) Uniform(hasTexture bool) Uniform {
	u := Uniform{Color: m.BgClipColor.Linear(), Flags: FlagNone}
	if hasTexture {
		u.Flags |= FlagTexture
	}
	return u
}
