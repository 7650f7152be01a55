package ui

import (
	"github.com/charmbracelet/harmonica"

	"unfold/internal/engine"
)

const (
	fadeFrequency = 8.0
	fadeDamping   = 1.0
)

// Fade eases the level label's opacity toward zero while a transition fades
// out and back to one otherwise.
type Fade struct {
	spring harmonica.Spring
	alpha  float64
	vel    float64
}

// NewFade returns a fully visible fade stepped tps times per second.
func NewFade(tps int) *Fade {
	if tps <= 0 {
		tps = 30
	}
	return &Fade{
		spring: harmonica.NewSpring(harmonica.FPS(tps), fadeFrequency, fadeDamping),
		alpha:  1,
	}
}

// Update advances the fade one tick for the given transition phase and
// returns the new opacity in [0, 1].
func (f *Fade) Update(p engine.Phase) float64 {
	target := 1.0
	if p == engine.PhaseFadeOut {
		target = 0
	}
	f.alpha, f.vel = f.spring.Update(f.alpha, f.vel, target)
	return f.Alpha()
}

// Alpha returns the current opacity clamped to [0, 1].
func (f *Fade) Alpha() float64 {
	return min(max(f.alpha, 0), 1)
}
