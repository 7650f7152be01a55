//go:build !ebiten

package ui

import "unfold/internal/engine"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(engine.Phase) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, engine.Frame, int) {}
