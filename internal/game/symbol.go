package game

import (
	"fmt"
	"image/color"
)

// Symbol is one entry of the memorize pool: a display glyph plus a tile color.
// Glyphs stay within printable ASCII so the bitmap font can render them.
type Symbol struct {
	Name  string
	Glyph rune
	Color color.RGBA
}

// Zero reports whether the symbol is unset.
func (s Symbol) Zero() bool { return s.Name == "" }

// DefaultPool returns the built-in sixteen-symbol deck. Names have distinct
// initials so the glyphs stay unambiguous on screen.
func DefaultPool() []Symbol {
	return []Symbol{
		{Name: "anchor", Glyph: 'A', Color: color.RGBA{R: 70, G: 130, B: 180, A: 255}},
		{Name: "bell", Glyph: 'B', Color: color.RGBA{R: 218, G: 165, B: 32, A: 255}},
		{Name: "comet", Glyph: 'C', Color: color.RGBA{R: 135, G: 206, B: 250, A: 255}},
		{Name: "drum", Glyph: 'D', Color: color.RGBA{R: 178, G: 34, B: 34, A: 255}},
		{Name: "ember", Glyph: 'E', Color: color.RGBA{R: 255, G: 99, B: 71, A: 255}},
		{Name: "fern", Glyph: 'F', Color: color.RGBA{R: 34, G: 139, B: 34, A: 255}},
		{Name: "gem", Glyph: 'G', Color: color.RGBA{R: 186, G: 85, B: 211, A: 255}},
		{Name: "harp", Glyph: 'H', Color: color.RGBA{R: 244, G: 164, B: 96, A: 255}},
		{Name: "iris", Glyph: 'I', Color: color.RGBA{R: 138, G: 43, B: 226, A: 255}},
		{Name: "jade", Glyph: 'J', Color: color.RGBA{R: 0, G: 168, B: 107, A: 255}},
		{Name: "key", Glyph: 'K', Color: color.RGBA{R: 192, G: 192, B: 80, A: 255}},
		{Name: "leaf", Glyph: 'L', Color: color.RGBA{R: 107, G: 142, B: 35, A: 255}},
		{Name: "moon", Glyph: 'M', Color: color.RGBA{R: 176, G: 196, B: 222, A: 255}},
		{Name: "nest", Glyph: 'N', Color: color.RGBA{R: 160, G: 120, B: 90, A: 255}},
		{Name: "opal", Glyph: 'O', Color: color.RGBA{R: 230, G: 230, B: 250, A: 255}},
		{Name: "star", Glyph: 'S', Color: color.RGBA{R: 255, G: 215, B: 0, A: 255}},
	}
}

// ValidatePool checks that the pool can cover a board with the given cell
// count: enough entries, no unset entries, no repeated names.
func ValidatePool(pool []Symbol, cells int) error {
	if len(pool) < cells {
		return fmt.Errorf("symbol pool has %d entries, board needs %d", len(pool), cells)
	}
	seen := make(map[string]struct{}, len(pool))
	for i, sym := range pool {
		if sym.Zero() {
			return fmt.Errorf("symbol pool entry %d is unset", i)
		}
		if _, dup := seen[sym.Name]; dup {
			return fmt.Errorf("symbol pool repeats %q", sym.Name)
		}
		seen[sym.Name] = struct{}{}
	}
	return nil
}
