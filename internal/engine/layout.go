package engine

import (
	"unfold/internal/core"
	"unfold/internal/glow"
)

// DisplayFraction is the share of the shorter display side the buffer fills.
const DisplayFraction = 0.8

// Placement locates the square buffer on a display.
type Placement struct {
	X, Y float64
	Size float64
}

// Fit centres the buffer on a w*h display at DisplayFraction of the shorter
// side, preserving its aspect ratio.
func Fit(w, h int) Placement {
	side := float64(min(w, h)) * DisplayFraction
	return Placement{
		X:    (float64(w) - side) / 2,
		Y:    (float64(h) - side) / 2,
		Size: side,
	}
}

// Scale is the display pixels per buffer pixel for a buffer of edge n.
func (p Placement) Scale(n int) float64 {
	if n <= 0 {
		n = core.BufferSize
	}
	return p.Size / float64(n)
}

// Transform maps buffer coordinates of an n*n buffer onto the placement.
func (p Placement) Transform(n int) glow.Transform {
	return glow.Transform{Scale: p.Scale(n), OriginX: p.X, OriginY: p.Y}
}
