package atlas

import (
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// ErrEmptyImage rejects zero-area atlas images
var ErrEmptyImage = errors.New("atlas: image has no pixels")

// Font binds an atlas image to the glyph mapping that indexes it
// Image and Map are shared read-only between every terminal using the font
type Font struct {
	Name  string
	Image image.Image
	Map   *Map
}

// NewFont validates that the image divides into the map's grid
func NewFont(name string, img image.Image, m *Map) (*Font, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("font %q: %w", name, ErrEmptyImage)
	}
	grid := m.Grid()
	b := img.Bounds()
	if b.Dx() < grid[0] || b.Dy() < grid[1] {
		return nil, fmt.Errorf("font %q: %dx%d image smaller than %dx%d grid", name, b.Dx(), b.Dy(), grid[0], grid[1])
	}
	return &Font{Name: name, Image: img, Map: m}, nil
}

// PixelsPerTile is the pixel size of one atlas cell, image size divided by the grid
func (f *Font) PixelsPerTile() [2]int {
	grid := f.Map.Grid()
	b := f.Image.Bounds()
	return [2]int{b.Dx() / grid[0], b.Dy() / grid[1]}
}

// DecodeImage reads a PNG or BMP atlas
func DecodeImage(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode atlas image: %w", err)
	}
	return img, nil
}

// LoadFont reads an atlas image from path and maps ordering over a cols×rows grid
// A nil ordering selects code page 437
func LoadFont(path string, grid [2]int, ordering []rune) (*Font, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open atlas: %w", err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if ordering == nil {
		ordering = CP437[:]
	}
	m, err := NewMap(grid, ordering)
	if err != nil {
		return nil, err
	}
	return NewFont(path, img, m)
}
