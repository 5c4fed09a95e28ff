//go:build !ebiten

package ui

import "recallgrid/internal/game"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string) {}

// SetScore is a no-op in the headless build.
func (h *HUD) SetScore(int) {}

// SetCue is a no-op in the headless build.
func (h *HUD) SetCue(game.Symbol) {}

// ClearCue is a no-op in the headless build.
func (h *HUD) ClearCue() {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
