// Package escape renders the two Julia-style boundary patterns by escape-time
// iteration.
package escape

import (
	"image/color"
	"math"

	"golang.org/x/sync/errgroup"

	"unfold/internal/core"
	"unfold/internal/render"
)

var (
	inside  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outside = color.RGBA{A: 255}
)

// Detail returns the iteration budget of a discrete level: 2^(level+1) * 10.
func Detail(level int) int {
	return (1 << uint(level+1)) * 10
}

// BlendedDetail interpolates the iteration budget between the blend's base
// and next levels, truncated toward zero.
func BlendedDetail(b core.Blend) int {
	return int(math.Floor(b.Lerp(float64(Detail(b.Base)), float64(Detail(b.Next)))))
}

// Iterate applies z -> z^2 + c starting at z0 = (za, zb) until detail steps
// have run or |z|^2 reaches 4. It returns the number of steps taken; a result
// equal to detail means the point survived.
func Iterate(za, zb float64, c complex128, detail int) int {
	cr, ci := real(c), imag(c)
	i := 0
	for i < detail && za*za+zb*zb < 4 {
		za, zb = za*za-zb*zb+cr, 2*za*zb+ci
		i++
	}
	return i
}

type point struct{ x, y int }

// Renderer draws one escape-time pattern.
type Renderer struct {
	cfg  Config
	rng  *core.RNG
	mask []uint8
}

var _ core.Renderer = (*Renderer)(nil)

// New constructs a renderer for cfg whose particle sampling is driven by seed.
func New(cfg Config, seed int64) *Renderer {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Tiles <= 0 {
		cfg.Tiles = 1
	}
	return &Renderer{cfg: cfg, rng: core.NewRNG(seed)}
}

// Name returns the pattern identifier.
func (r *Renderer) Name() core.Pattern { return r.cfg.Pattern }

// Render overwrites dst with the pattern at the blended iteration budget.
// Bands of rows are evaluated concurrently; the output is identical to a
// sequential pass. Emission candidates are reported to fx band by band after
// every band has finished.
func (r *Renderer) Render(dst *core.Buffer, b core.Blend, fx core.Emitter) {
	w, h := dst.W, dst.H
	if len(r.mask) != w*h {
		r.mask = make([]uint8, w*h)
	}
	detail := BlendedDetail(b)

	tiles := r.cfg.Tiles
	if tiles > h {
		tiles = h
	}
	rows := (h + tiles - 1) / tiles
	found := make([][]point, tiles)

	var g errgroup.Group
	g.SetLimit(r.cfg.Workers)
	for t := 0; t < tiles; t++ {
		y0 := t * rows
		y1 := min(y0+rows, h)
		if y0 >= y1 {
			break
		}
		rng := r.rng.Stream(uint64(t))
		g.Go(func() error {
			found[t] = r.band(y0, y1, w, h, detail, rng)
			return nil
		})
	}
	// Bands never fail.
	_ = g.Wait()

	render.FillMask(dst, 0, h, r.mask, inside, outside)
	if fx == nil {
		return
	}
	for _, pts := range found {
		for _, p := range pts {
			fx.Emit(float64(p.x), float64(p.y))
		}
	}
}

func (r *Renderer) band(y0, y1, w, h, detail int, rng *core.RNG) []point {
	var pts []point
	for y := y0; y < y1; y++ {
		row := r.mask[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			a, bb := r.cfg.Plane(x, y, w, h)
			if Iterate(a, bb, r.cfg.C, detail) != detail {
				row[x] = 0
				continue
			}
			row[x] = 1
			if rng.Chance(r.cfg.EmitChance) {
				pts = append(pts, point{x: x, y: y})
			}
		}
	}
	return pts
}

func init() {
	core.Register(core.PatternA, func(s core.Settings) core.Renderer {
		return New(ConfigA().withWorkers(s.Workers), s.Seed)
	})
	core.Register(core.PatternB, func(s core.Settings) core.Renderer {
		return New(ConfigB().withWorkers(s.Workers), s.Seed)
	})
}
