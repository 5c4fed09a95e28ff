// Package render holds presentation math shared by the GUI build: pixel-space
// board layout and tile color helpers. It stays free of engine imports so the
// headless build and the tests can use it directly.
package render

import (
	"image"
	"image/color"

	"recallgrid/internal/core"
)

// Layout maps board cells to pixel rectangles at a fixed tile size and gap.
type Layout struct {
	Board core.Board
	Tile  int
	Gap   int
}

// NewLayout constructs a layout, clamping tile and gap to sane minimums.
func NewLayout(board core.Board, tile, gap int) Layout {
	if tile < 8 {
		tile = 8
	}
	if gap < 0 {
		gap = 0
	}
	return Layout{Board: board, Tile: tile, Gap: gap}
}

// CellRect returns the screen rectangle of a cell id.
func (l Layout) CellRect(id int) image.Rectangle {
	row, col := l.Board.Coords(id)
	x := l.Gap + col*(l.Tile+l.Gap)
	y := l.Gap + row*(l.Tile+l.Gap)
	return image.Rect(x, y, x+l.Tile, y+l.Tile)
}

// Hit returns the cell id under the screen point (x, y), if any. Points in
// the gaps between tiles miss.
func (l Layout) Hit(x, y int) (int, bool) {
	for id := 0; id < l.Board.Cells(); id++ {
		r := l.CellRect(id)
		if x >= r.Min.X && x < r.Max.X && y >= r.Min.Y && y < r.Max.Y {
			return id, true
		}
	}
	return -1, false
}

// Bounds returns the total pixel size of the board area including the outer gap.
func (l Layout) Bounds() (w, h int) {
	w = l.Gap + l.Board.Cols*(l.Tile+l.Gap)
	h = l.Gap + l.Board.Rows*(l.Tile+l.Gap)
	return w, h
}

// Dim scales the RGB channels of a color, keeping alpha. factor is clamped
// to [0, 1].
func Dim(c color.RGBA, factor float64) color.RGBA {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Tile background shades for the two hidden states.
var (
	HiddenIdle   = color.RGBA{R: 44, G: 46, B: 54, A: 255}
	HiddenActive = color.RGBA{R: 64, G: 68, B: 80, A: 255}
)
