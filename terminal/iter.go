package terminal

import (
	"fmt"
	"iter"
)

// Tiles is a read-only view of the row-major tile slice
func (b *TileBuffer) Tiles() []Tile {
	return b.tiles
}

// TilesMut is the mutable tile slice, the buffer is marked changed
func (b *TileBuffer) TilesMut() []Tile {
	b.touch()
	return b.tiles
}

func (b *TileBuffer) checkRow(y int) {
	if y < 0 || y >= b.height {
		panic(fmt.Sprintf("terminal: row %d out of range [0,%d)", y, b.height))
	}
}

func (b *TileBuffer) checkColumn(x int) {
	if x < 0 || x >= b.width {
		panic(fmt.Sprintf("terminal: column %d out of range [0,%d)", x, b.width))
	}
}

// Row is a read-only view of row y, left to right
func (b *TileBuffer) Row(y int) []Tile {
	b.checkRow(y)
	return b.tiles[y*b.width : (y+1)*b.width]
}

// RowMut is a mutable view of row y, the buffer is marked changed
func (b *TileBuffer) RowMut(y int) []Tile {
	row := b.Row(y)
	b.touch()
	return row
}

// Rows yields rows [from, to) bottom to top, bounds are clamped
func (b *TileBuffer) Rows(from, to int) iter.Seq2[int, []Tile] {
	from, to = max(from, 0), min(to, b.height)
	return func(yield func(int, []Tile) bool) {
		for y := from; y < to; y++ {
			if !yield(y, b.tiles[y*b.width:(y+1)*b.width]) {
				return
			}
		}
	}
}

// RowsMut is Rows over mutable views, the buffer is marked changed
func (b *TileBuffer) RowsMut(from, to int) iter.Seq2[int, []Tile] {
	b.touch()
	return b.Rows(from, to)
}

// Column yields the tiles of column x bottom to top
func (b *TileBuffer) Column(x int) iter.Seq2[int, Tile] {
	b.checkColumn(x)
	return func(yield func(int, Tile) bool) {
		for y := 0; y < b.height; y++ {
			if !yield(y, b.tiles[y*b.width+x]) {
				return
			}
		}
	}
}

// ColumnMut yields pointers into column x bottom to top, the buffer is marked changed
func (b *TileBuffer) ColumnMut(x int) iter.Seq2[int, *Tile] {
	b.checkColumn(x)
	b.touch()
	return func(yield func(int, *Tile) bool) {
		for y := 0; y < b.height; y++ {
			if !yield(y, &b.tiles[y*b.width+x]) {
				return
			}
		}
	}
}

// All yields every tile with its position, rows bottom to top, each left to right
func (b *TileBuffer) All() iter.Seq2[Point, Tile] {
	return func(yield func(Point, Tile) bool) {
		for i, t := range b.tiles {
			if !yield(Point{i % b.width, i / b.width}, t) {
				return
			}
		}
	}
}
