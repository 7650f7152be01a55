// Package flower renders the radial flower: rings of petals placed
// recursively around each petal of the previous ring.
package flower

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"unfold/internal/core"
	"unfold/internal/render"
)

// Config holds the fixed geometry of the flower.
type Config struct {
	// Petals is the number of petals per ring.
	Petals int
	// CenterRadius is the radius of the disc drawn at the buffer centre.
	CenterRadius float64
	// Spread is the first ring's distance from the centre as a fraction of
	// the buffer width.
	Spread float64
	// Shrink divides the ring distance at every recursion step.
	Shrink float64
	// PetalRadius is the petal radius at level 0; each level halves it.
	PetalRadius float64
}

// DefaultConfig returns the standard hexagonal flower.
func DefaultConfig() Config {
	return Config{Petals: 6, CenterRadius: 20, Spread: 0.45, Shrink: 3, PetalRadius: 20}
}

// Renderer draws the radial flower.
type Renderer struct {
	cfg     Config
	offsets []mgl64.Vec2
}

var _ core.Renderer = (*Renderer)(nil)

// New constructs a flower renderer.
func New(cfg Config) *Renderer {
	if cfg.Petals <= 0 {
		cfg.Petals = 1
	}
	r := &Renderer{cfg: cfg, offsets: make([]mgl64.Vec2, cfg.Petals)}
	unit := mgl64.Vec2{1, 0}
	for i := range r.offsets {
		angle := float64(i) * 2 * math.Pi / float64(cfg.Petals)
		r.offsets[i] = mgl64.Rotate2D(angle).Mul2x1(unit)
	}
	return r
}

// Name returns the pattern identifier.
func (r *Renderer) Name() core.Pattern { return core.PatternC }

// Render clears dst and paints the flower for the given blend.
func (r *Renderer) Render(dst *core.Buffer, b core.Blend, fx core.Emitter) {
	dst.Clear()
	c := render.NewCanvas(dst, color.White)
	r.Draw(c, dst.W, dst.H, b, fx)
	c.Flush()
}

// Draw issues the flower's discs to c for a w*h buffer and reports every petal
// centre to fx.
func (r *Renderer) Draw(c core.Canvas, w, h int, b core.Blend, fx core.Emitter) {
	center := mgl64.Vec2{float64(w) / 2, float64(h) / 2}
	c.Disc(center.X(), center.Y(), r.cfg.CenterRadius)
	r.ring(c, fx, center, float64(w)*r.cfg.Spread, b.Base, b.Next, b.Factor, 0)
}

// PetalRadius blends the petal radius of the two remaining-level counters.
func (r *Renderer) PetalRadius(base, next int, blend float64) float64 {
	rb := math.Pow(0.5, float64(base)) * r.cfg.PetalRadius
	rn := math.Pow(0.5, float64(next)) * r.cfg.PetalRadius
	return rb*(1-blend) + rn*blend
}

// ring draws one ring of petals around node. base and next count down
// independently, each stopping at zero, so the deeper of the two levels keeps
// recursing after the shallower one has bottomed out.
func (r *Renderer) ring(c core.Canvas, fx core.Emitter, node mgl64.Vec2, size float64, base, next int, blend float64, depth int) {
	if depth > core.MaxLevel {
		return
	}
	radius := r.PetalRadius(base, next, blend)
	for _, off := range r.offsets {
		p := node.Add(off.Mul(size))
		c.Disc(p.X(), p.Y(), radius)
		if fx != nil {
			fx.Emit(p.X(), p.Y())
		}
		if base > 0 || next > 0 {
			r.ring(c, fx, p, size/r.cfg.Shrink, max(base-1, 0), max(next-1, 0), blend, depth+1)
		}
	}
}

func init() {
	core.Register(core.PatternC, func(core.Settings) core.Renderer {
		return New(DefaultConfig())
	})
}
