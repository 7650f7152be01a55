package escape

import (
	"runtime"

	"unfold/internal/core"
)

// Config holds the fixed plane mapping and iteration constant of one
// escape-time pattern.
type Config struct {
	Pattern core.Pattern

	// CenterX and CenterY offset the plane so the buffer centre maps to them.
	CenterX float64
	CenterY float64
	// Scale is the half-width of the visible plane.
	Scale float64
	// C is the additive constant of the quadratic map z -> z^2 + C.
	C complex128

	// EmitChance is the probability a surviving pixel spawns a glow particle.
	EmitChance float64

	// Workers bounds the number of tiles evaluated concurrently.
	Workers int
	// Tiles is the number of horizontal bands a render is split into.
	Tiles int
}

// ConfigA returns the constants for pattern A.
func ConfigA() Config {
	return Config{
		Pattern:    core.PatternA,
		CenterX:    -0.1,
		CenterY:    0.8,
		Scale:      1.8,
		C:          complex(0.28, 0.01),
		EmitChance: 0.001,
		Workers:    runtime.NumCPU(),
		Tiles:      16,
	}
}

// ConfigB returns the constants for pattern B.
func ConfigB() Config {
	return Config{
		Pattern:    core.PatternB,
		CenterX:    0.3,
		CenterY:    -0.01,
		Scale:      1.5,
		C:          complex(-0.7, 0.27),
		EmitChance: 0.001,
		Workers:    runtime.NumCPU(),
		Tiles:      16,
	}
}

// Plane maps buffer pixel (x, y) of a w*h buffer to its complex coordinate.
func (c Config) Plane(x, y, w, h int) (float64, float64) {
	hw := float64(w) / 2
	hh := float64(h) / 2
	a := c.Scale*(float64(x)-hw)/hw + c.CenterX
	b := c.Scale*(float64(y)-hh)/hh + c.CenterY
	return a, b
}

// withWorkers overrides the band concurrency when n is positive.
func (c Config) withWorkers(n int) Config {
	if n > 0 {
		c.Workers = n
	}
	return c
}
