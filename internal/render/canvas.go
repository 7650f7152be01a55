package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"

	"unfold/internal/core"
)

// kappa places cubic Bézier control points so four segments approximate a
// quarter circle each.
const kappa = 0.5522847498307936

// VectorCanvas rasterises discs and stroked lines into a Buffer with
// anti-aliased edges. Shapes accumulate into a single coverage mask that is
// composited onto the buffer by Flush.
type VectorCanvas struct {
	dst   *core.Buffer
	z     *vector.Rasterizer
	src   image.Image
	dirty bool
}

var _ core.Canvas = (*VectorCanvas)(nil)

// NewCanvas constructs a canvas painting with col onto dst.
func NewCanvas(dst *core.Buffer, col color.Color) *VectorCanvas {
	return &VectorCanvas{
		dst: dst,
		z:   vector.NewRasterizer(dst.W, dst.H),
		src: image.NewUniform(col),
	}
}

// Disc adds a filled circle of radius r centred on (cx, cy).
func (c *VectorCanvas) Disc(cx, cy, r float64) {
	if r <= 0 {
		return
	}
	k := r * kappa
	z := c.z
	// Same winding as Line so overlapping shapes add coverage instead of
	// cancelling it.
	z.MoveTo(f32(cx+r), f32(cy))
	z.CubeTo(f32(cx+r), f32(cy+k), f32(cx+k), f32(cy+r), f32(cx), f32(cy+r))
	z.CubeTo(f32(cx-k), f32(cy+r), f32(cx-r), f32(cy+k), f32(cx-r), f32(cy))
	z.CubeTo(f32(cx-r), f32(cy-k), f32(cx-k), f32(cy-r), f32(cx), f32(cy-r))
	z.CubeTo(f32(cx+k), f32(cy-r), f32(cx+r), f32(cy-k), f32(cx+r), f32(cy))
	z.ClosePath()
	c.dirty = true
}

// Line adds a segment stroked with the given width and round caps.
func (c *VectorCanvas) Line(x0, y0, x1, y1, width float64) {
	if width <= 0 {
		return
	}
	hw := width / 2
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length > 1e-9 {
		nx, ny := -dy/length*hw, dx/length*hw
		z := c.z
		z.MoveTo(f32(x0-nx), f32(y0-ny))
		z.LineTo(f32(x1-nx), f32(y1-ny))
		z.LineTo(f32(x1+nx), f32(y1+ny))
		z.LineTo(f32(x0+nx), f32(y0+ny))
		z.ClosePath()
	}
	c.Disc(x0, y0, hw)
	c.Disc(x1, y1, hw)
	c.dirty = true
}

// Flush composites accumulated shapes onto the buffer and resets the mask.
func (c *VectorCanvas) Flush() {
	if !c.dirty {
		return
	}
	img := c.dst.Image()
	c.z.Draw(img, img.Bounds(), c.src, image.Point{})
	c.z.Reset(c.dst.W, c.dst.H)
	c.dirty = false
}

func f32(v float64) float32 { return float32(v) }
