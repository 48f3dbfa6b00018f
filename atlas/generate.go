package atlas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lixenwraith/glyphterm/parameter"
)

// RenderOptions controls atlas rasterisation
type RenderOptions struct {
	// Size is the font size in points
	Size float64
	// DPI defaults to 72
	DPI float64
	// Cell overrides the measured cell size in pixels when non-zero
	Cell [2]int
	// TTF is the font file, Go Mono when nil
	TTF []byte
	// Ordering is laid out on a 16x16 grid, code page 437 when nil
	Ordering []rune
	Fg, Bg   color.Color
}

// DefaultRenderOptions renders Go Mono into the built-in cell size, white on black
// Black is the default background clip color, so glyph backgrounds are replaced by tile colors
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Size: parameter.AtlasFontSize,
		DPI:  72,
		Cell: [2]int{parameter.AtlasCellWidth, parameter.AtlasCellHeight},
		Fg:   color.White,
		Bg:   color.Black,
	}
}

// RenderFont rasterises the ordering into a 16x16 atlas and returns the font bound to it
// Glyphs the face cannot draw are left blank
func RenderFont(name string, opts RenderOptions) (*Font, error) {
	const cols, rows = parameter.AtlasColumns, parameter.AtlasRows

	data := opts.TTF
	if data == nil {
		data = gomono.TTF
	}
	ordering := opts.Ordering
	if ordering == nil {
		ordering = CP437[:]
	}
	if opts.DPI == 0 {
		opts.DPI = 72
	}
	if opts.Fg == nil {
		opts.Fg = color.White
	}
	if opts.Bg == nil {
		opts.Bg = color.Black
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    opts.Size,
		DPI:     opts.DPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	cw, ch := opts.Cell[0], opts.Cell[1]
	if cw == 0 {
		adv, _ := face.GlyphAdvance('M')
		cw = adv.Ceil()
	}
	if ch == 0 {
		ch = (metrics.Ascent + metrics.Descent).Ceil()
	}
	if cw < 1 || ch < 1 {
		return nil, fmt.Errorf("font %q: degenerate cell %dx%d", name, cw, ch)
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*cw, rows*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Bg), image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(opts.Fg),
		Face: face,
	}

	// Baseline sits one descent above the cell bottom, glyph centered horizontally
	descent := metrics.Descent.Ceil()
	for i, r := range ordering {
		if i >= cols*rows {
			break
		}
		if r == 0 || r == ' ' || r == '\u00a0' {
			continue
		}
		adv, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}
		x := (i%cols)*cw + (cw-adv.Round())/2
		y := (i/cols+1)*ch - descent
		drawer.Dot = fixed.P(x, y)
		drawer.DrawString(string(r))
	}

	m, err := NewMap([2]int{cols, rows}, ordering)
	if err != nil {
		return nil, err
	}
	return NewFont(name, img, m)
}

// EncodePNG writes the font's atlas image as PNG
func (f *Font) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, f.Image); err != nil {
		return fmt.Errorf("encode atlas %q: %w", f.Name, err)
	}
	return nil
}
