//go:build ebiten

package app

import (
	"image/color"
	"time"

	"recallgrid/internal/game"
	"recallgrid/internal/render"
	"recallgrid/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"go.uber.org/zap"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a memory session to the ebiten.Game interface. It is the single
// implementation of the session's display surface and the single producer of
// selection events.
type Game struct {
	session *game.Session
	layout  render.Layout
	hud     *ui.HUD
	log     *zap.Logger

	symbols    []game.Symbol
	shown      []bool
	selectable []bool
	pixel      *ebiten.Image
	hudWidth   int
}

var _ game.Display = (*Game)(nil)

// New constructs the GUI adapter for the given flag config. Attach must be
// called with the session before the game loop starts.
func New(cfg *Config, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	g := &Game{
		log:      log,
		hudWidth: hudPanelWidth,
		hud:      ui.NewHUD(hudPanelWidth),
	}
	g.pixel = ebiten.NewImage(1, 1)
	g.pixel.Fill(color.White)
	return g
}

// Attach wires the session in and sizes the cell buffers to its board.
func (g *Game) Attach(session *game.Session, tile int) {
	g.session = session
	g.layout = render.NewLayout(session.Board(), tile, tileGap)
	n := session.Board().Cells()
	g.symbols = make([]game.Symbol, n)
	g.shown = make([]bool, n)
	g.selectable = make([]bool, n)
}

// ScreenSize returns the total logical screen size, board plus HUD panel.
func (g *Game) ScreenSize() (int, int) {
	w, h := g.layout.Bounds()
	return w + g.hudWidth, h
}

// Update handles input and drives the session's timed transitions.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.log.Info("restart requested")
		g.session.Restart(now)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if cell, ok := g.layout.Hit(x, y); ok && g.selectable[cell] {
			g.session.HandleSelection(now, game.SelectionEvent{
				Cell:  cell,
				Round: g.session.Round(),
			})
		}
	}
	g.session.Advance(now)
	return nil
}

// Draw renders the board tiles and the HUD panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	for id := range g.symbols {
		g.drawCell(screen, id)
	}
	boardW, boardH := g.layout.Bounds()
	g.hud.Draw(screen, boardW, boardH)
}

func (g *Game) drawCell(screen *ebiten.Image, id int) {
	r := g.layout.CellRect(id)

	bg := render.HiddenIdle
	if g.selectable[id] {
		bg = render.HiddenActive
	}
	if g.shown[id] {
		bg = g.symbols[id].Color
	}
	g.fillRect(screen, r.Min.X, r.Min.Y, r.Dx(), r.Dy(), render.Dim(bg, 0.55))
	g.fillRect(screen, r.Min.X+tileBorder, r.Min.Y+tileBorder, r.Dx()-2*tileBorder, r.Dy()-2*tileBorder, bg)

	if !g.shown[id] {
		return
	}
	face := basicfont.Face7x13
	glyph := string(g.symbols[id].Glyph)
	bounds := text.BoundString(face, glyph)
	x := r.Min.X + (r.Dx()-bounds.Dx())/2
	y := r.Min.Y + (r.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(screen, glyph, face, x, y, color.RGBA{R: 16, G: 16, B: 20, A: 255})
}

func (g *Game) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(g.pixel, op)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ShowSymbol reveals a cell's symbol.
func (g *Game) ShowSymbol(cell int, sym game.Symbol) {
	if cell < 0 || cell >= len(g.symbols) {
		return
	}
	g.symbols[cell] = sym
	g.shown[cell] = true
}

// HideSymbol blanks a cell.
func (g *Game) HideSymbol(cell int) {
	if cell < 0 || cell >= len(g.symbols) {
		return
	}
	g.shown[cell] = false
}

// SetInteractable toggles whether a cell accepts clicks.
func (g *Game) SetInteractable(cell int, on bool) {
	if cell < 0 || cell >= len(g.selectable) {
		return
	}
	g.selectable[cell] = on
}

// ShowCue forwards the cue symbol to the HUD.
func (g *Game) ShowCue(sym game.Symbol) { g.hud.SetCue(sym) }

// ClearCue removes the cue from the HUD.
func (g *Game) ClearCue() { g.hud.ClearCue() }

// SetStatus forwards the status line to the HUD.
func (g *Game) SetStatus(text string) { g.hud.SetStatus(text) }

// SetScore forwards the score to the HUD.
func (g *Game) SetScore(points int) { g.hud.SetScore(points) }

const (
	hudPanelWidth = 180
	tileGap       = 6
	tileBorder    = 2
)
