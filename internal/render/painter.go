//go:build ebiten

package render

import (
	"unfold/internal/core"
	"unfold/internal/engine"

	"github.com/hajimehoshi/ebiten/v2"
)

// BufferPainter mirrors an offscreen buffer into a GPU image and draws it
// onto the screen at a placement.
type BufferPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewBufferPainter allocates a painter for a buffer of size w*h.
func NewBufferPainter(w, h int) *BufferPainter {
	return &BufferPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Upload copies the buffer pixels to the GPU image. Call it only after the
// buffer was regenerated.
func (bp *BufferPainter) Upload(buf *core.Buffer) {
	if buf.W != bp.w || buf.H != bp.h {
		return
	}
	bp.img.WritePixels(buf.Pix())
}

// Blit draws the uploaded image scaled into p.
func (bp *BufferPainter) Blit(dst *ebiten.Image, p engine.Placement) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(p.Size/float64(bp.w), p.Size/float64(bp.h))
	op.GeoM.Translate(p.X, p.Y)
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(bp.img, op)
}
