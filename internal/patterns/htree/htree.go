// Package htree renders the H-tree: an H whose four tips each carry a
// half-size H, recursively.
package htree

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"unfold/internal/core"
	"unfold/internal/render"
)

// Config holds the fixed geometry of the tree.
type Config struct {
	// Size is the root H's width as a fraction of the buffer width.
	Size float64
	// MaxStroke is the stroke width at level 0.
	MaxStroke float64
	// StrokeFalloff is subtracted from the stroke width per level.
	StrokeFalloff float64
	// MinStroke bounds the stroke width from below.
	MinStroke float64
}

// DefaultConfig returns the standard tree geometry.
func DefaultConfig() Config {
	return Config{Size: 0.25, MaxStroke: 4, StrokeFalloff: 0.6, MinStroke: 1}
}

var corners = [4]mgl64.Vec2{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Renderer draws the H-tree.
type Renderer struct {
	cfg Config
}

var _ core.Renderer = (*Renderer)(nil)

// New constructs an H-tree renderer.
func New(cfg Config) *Renderer { return &Renderer{cfg: cfg} }

// Name returns the pattern identifier.
func (r *Renderer) Name() core.Pattern { return core.PatternD }

// StrokeWidth returns the line width for a blend. Only the base level and the
// blend factor contribute; the next level is ignored.
func (r *Renderer) StrokeWidth(b core.Blend) float64 {
	effective := float64(b.Base) + b.Factor
	return max(r.cfg.MinStroke, r.cfg.MaxStroke-effective*r.cfg.StrokeFalloff)
}

// Render clears dst and paints the tree for the given blend.
func (r *Renderer) Render(dst *core.Buffer, b core.Blend, fx core.Emitter) {
	dst.Clear()
	c := render.NewCanvas(dst, color.White)
	r.Draw(c, dst.W, dst.H, b, fx)
	c.Flush()
}

// Draw issues the tree's strokes to c for a w*h buffer.
func (r *Renderer) Draw(c core.Canvas, w, h int, b core.Blend, fx core.Emitter) {
	center := mgl64.Vec2{float64(w) / 2, float64(h) / 2}
	r.Tree(c, fx, center, float64(w)*r.cfg.Size, r.StrokeWidth(b), max(b.Base, b.Next))
}

// Tree draws the H rooted at center and its descendants down to maxDepth.
func (r *Renderer) Tree(c core.Canvas, fx core.Emitter, center mgl64.Vec2, size, stroke float64, maxDepth int) {
	r.h(c, fx, center, size, stroke, 0, min(maxDepth, core.MaxLevel))
}

func (r *Renderer) h(c core.Canvas, fx core.Emitter, p mgl64.Vec2, size, stroke float64, depth, maxDepth int) {
	if depth > maxDepth {
		return
	}
	half := size / 2
	x, y := p.X(), p.Y()
	c.Line(x-half, y, x+half, y, stroke)
	c.Line(x-half, y-half, x-half, y+half, stroke)
	c.Line(x+half, y-half, x+half, y+half, stroke)

	if depth >= 1 && fx != nil {
		for _, k := range corners {
			tip := p.Add(k.Mul(half))
			fx.Emit(tip.X(), tip.Y())
		}
	}
	for _, k := range corners {
		r.h(c, fx, p.Add(k.Mul(half)), half, stroke, depth+1, maxDepth)
	}
}

func init() {
	core.Register(core.PatternD, func(core.Settings) core.Renderer {
		return New(DefaultConfig())
	})
}
