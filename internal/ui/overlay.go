//go:build ebiten

package ui

import (
	"image/color"

	"unfold/internal/glow"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// shadowAlpha is the opacity share given to the faked blur around a halo.
const shadowAlpha = 0.15

// Overlay draws the glow particles on top of the pattern.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay { return &Overlay{visible: true} }

// Toggle shows or hides the particles.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Draw renders every disc in draws onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, draws []glow.Draw) {
	if !o.visible {
		return
	}
	for _, d := range draws {
		if d.Blur > 0 {
			vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y),
				float32(d.Radius+d.Blur/2), white(d.Alpha*shadowAlpha), true)
		}
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y),
			float32(d.Radius), white(d.Alpha), true)
	}
}

func white(a float64) color.Color {
	return color.NRGBA{R: 255, G: 255, B: 255, A: uint8(min(max(a, 0), 1) * 255)}
}
