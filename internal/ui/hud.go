//go:build ebiten

package ui

import (
	"unfold/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	hudMargin      = 16
	hudLineSpacing = 16
)

// HUD shows the level label and name above the pattern.
type HUD struct {
	face *text.GoXFace
	fade *Fade
}

// NewHUD builds a HUD that fades at tps ticks per second.
func NewHUD(tps int) *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13), fade: NewFade(tps)}
}

// Update steps the label fade for the current transition phase.
func (h *HUD) Update(p engine.Phase) { h.fade.Update(p) }

// Draw renders the frame's label centred at the top of a w-wide screen.
func (h *HUD) Draw(screen *ebiten.Image, f engine.Frame, w int) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(w)/2, hudMargin)
	op.ColorScale.ScaleAlpha(float32(h.fade.Alpha()))
	op.LineSpacing = hudLineSpacing
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, f.Label()+"\n"+f.LevelName, h.face, op)

	hint := string(f.Pattern) + "  |  A-D pattern  wheel/arrows level  Q quit"
	hop := &text.DrawOptions{}
	hop.GeoM.Translate(hudMargin, 0)
	hop.ColorScale.ScaleAlpha(0.6)
	hop.PrimaryAlign = text.AlignStart
	_, hh := text.Measure(hint, h.face, hudLineSpacing)
	hop.GeoM.Translate(0, float64(screen.Bounds().Dy())-hh-hudMargin)
	text.Draw(screen, hint, h.face, hop)
}
