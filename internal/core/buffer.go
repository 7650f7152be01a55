package core

import (
	"image"
	"image/color"
)

// BufferSize is the fixed edge length of the offscreen raster.
const BufferSize = 800

// Buffer is the RGBA raster every renderer draws into, stored row-major.
type Buffer struct {
	W, H int
	img  *image.RGBA
}

// NewBuffer allocates a buffer with the given dimensions.
func NewBuffer(w, h int) *Buffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Buffer{W: w, H: h, img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image for drawing and display.
func (b *Buffer) Image() *image.RGBA { return b.img }

// Pix exposes the backing byte slice so callers can read/write pixels directly.
func (b *Buffer) Pix() []byte { return b.img.Pix }

// Index returns the byte offset of the pixel at (x, y).
func (b *Buffer) Index(x, y int) int { return 4 * (y*b.W + x) }

// At returns the colour stored at (x, y).
func (b *Buffer) At(x, y int) color.RGBA { return b.img.RGBAAt(x, y) }

// Fill overwrites every pixel with c.
func (b *Buffer) Fill(c color.RGBA) {
	pix := b.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = c.R
		pix[i+1] = c.G
		pix[i+2] = c.B
		pix[i+3] = c.A
	}
}

// Clear fills the buffer with opaque black.
func (b *Buffer) Clear() {
	b.Fill(color.RGBA{A: 255})
}
