//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"recallgrid/internal/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status line, the score and the cue tile in a panel to the
// right of the board.
type HUD struct {
	width      int
	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int

	status string
	score  int
	cue    game.Symbol
	hasCue bool
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	return h
}

// SetStatus updates the status line.
func (h *HUD) SetStatus(line string) { h.status = line }

// SetScore updates the displayed score.
func (h *HUD) SetScore(points int) { h.score = points }

// SetCue shows the cue symbol tile.
func (h *HUD) SetCue(sym game.Symbol) {
	h.cue = sym
	h.hasCue = true
}

// ClearCue hides the cue tile.
func (h *HUD) ClearCue() {
	h.cue = game.Symbol{}
	h.hasCue = false
}

// Draw paints the panel anchored at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineBaseline
	text.Draw(h.panel, fmt.Sprintf("Score: %d", h.score), face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	y += lineSpacing
	text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	if h.hasCue {
		y += lineSpacing
		text.Draw(h.panel, "Find:", face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		h.drawCueTile(y + cueGap)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawCueTile(top int) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cueTileSize), float64(cueTileSize))
	op.GeoM.Translate(float64(panelPadding), float64(top))
	col := h.cue.Color
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	glyph := string(h.cue.Glyph)
	bounds := text.BoundString(face, glyph)
	x := panelPadding + (cueTileSize-bounds.Dx())/2
	y := top + (cueTileSize-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, glyph, face, x, y, color.RGBA{R: 16, G: 16, B: 20, A: 255})
}

const (
	panelPadding = 12
	lineBaseline = 18
	lineSpacing  = 22
	cueGap       = 10
	cueTileSize  = 40
)
