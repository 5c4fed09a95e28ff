package game

import (
	"time"

	"recallgrid/internal/core"
)

// Display is the presentation surface the session drives. Implementations own
// all visual state; the session only issues commands and never reads back.
type Display interface {
	// ShowSymbol reveals the symbol assigned to a cell.
	ShowSymbol(cell int, sym Symbol)
	// HideSymbol blanks a cell, leaving the tile itself visible.
	HideSymbol(cell int)
	// SetInteractable toggles whether a cell accepts selections.
	SetInteractable(cell int, on bool)
	// ShowCue displays the symbol the player must relocate.
	ShowCue(sym Symbol)
	// ClearCue removes the cue display.
	ClearCue()
	SetStatus(text string)
	SetScore(points int)
}

// SelectionEvent is one user cell selection, tagged with the round it was
// produced against so the session can drop events from a discarded round.
type SelectionEvent struct {
	Cell  int
	Round core.Token
}

// SelectionHandler consumes selection events from an input source. The
// session is the single consumer; sources never fan out.
type SelectionHandler interface {
	HandleSelection(now time.Time, ev SelectionEvent)
}

// NopDisplay discards every display command. Useful for headless runs and
// tests that only exercise the state machine.
type NopDisplay struct{}

// ShowSymbol is a no-op.
func (NopDisplay) ShowSymbol(int, Symbol) {}

// HideSymbol is a no-op.
func (NopDisplay) HideSymbol(int) {}

// SetInteractable is a no-op.
func (NopDisplay) SetInteractable(int, bool) {}

// ShowCue is a no-op.
func (NopDisplay) ShowCue(Symbol) {}

// ClearCue is a no-op.
func (NopDisplay) ClearCue() {}

// SetStatus is a no-op.
func (NopDisplay) SetStatus(string) {}

// SetScore is a no-op.
func (NopDisplay) SetScore(int) {}
