// Package term presents engine frames on a character terminal. Each cell
// shows two vertically stacked pixels with the upper half block glyph.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"unfold/internal/engine"
)

const upperHalf = '▀'

// View draws frames onto a tcell screen.
type View struct {
	screen tcell.Screen
	w, h   int
	// px holds the virtual raster, two pixel rows per cell row.
	px []color.RGBA
}

// NewView wraps an initialised screen.
func NewView(s tcell.Screen) *View {
	v := &View{screen: s}
	v.Resize()
	return v
}

// Resize picks up the current screen size. The bottom row is reserved for
// the status line.
func (v *View) Resize() {
	cols, rows := v.screen.Size()
	v.w = max(cols, 0)
	v.h = max(rows-1, 0) * 2
	if cap(v.px) < v.w*v.h {
		v.px = make([]color.RGBA, v.w*v.h)
	}
	v.px = v.px[:v.w*v.h]
}

// Placement returns where the buffer sits on the virtual raster.
func (v *View) Placement() engine.Placement { return engine.Fit(v.w, v.h) }

// Draw composites the frame and shows it.
func (v *View) Draw(f engine.Frame) {
	v.sample(f)
	v.glow(f)

	for cy := 0; cy < v.h/2; cy++ {
		for cx := 0; cx < v.w; cx++ {
			top := v.px[(2*cy)*v.w+cx]
			bot := v.px[(2*cy+1)*v.w+cx]
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bot))
			v.screen.SetContent(cx, cy, upperHalf, nil, style)
		}
	}
	v.status(f)
	v.screen.Show()
}

// sample scales the buffer into the virtual raster, nearest neighbour.
func (v *View) sample(f engine.Frame) {
	p := v.Placement()
	buf := f.Buffer
	s := p.Scale(buf.W)
	for y := 0; y < v.h; y++ {
		for x := 0; x < v.w; x++ {
			c := color.RGBA{A: 255}
			if s > 0 {
				bx := int((float64(x) + 0.5 - p.X) / s)
				by := int((float64(y) + 0.5 - p.Y) / s)
				if bx >= 0 && by >= 0 && bx < buf.W && by < buf.H &&
					float64(x) >= p.X && float64(y) >= p.Y {
					c = buf.At(bx, by)
				}
			}
			v.px[y*v.w+x] = c
		}
	}
}

// glow brightens the virtual pixel under each disc by its opacity.
func (v *View) glow(f engine.Frame) {
	for _, d := range f.Draws {
		if d.Blur > 0 {
			continue
		}
		x, y := int(d.X), int(d.Y)
		if x < 0 || y < 0 || x >= v.w || y >= v.h {
			continue
		}
		i := y*v.w + x
		v.px[i] = lighten(v.px[i], d.Alpha)
	}
}

func (v *View) status(f engine.Frame) {
	cols, rows := v.screen.Size()
	if rows < 1 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	if f.Phase == engine.PhaseFadeOut {
		style = style.Dim(true)
	}
	line := fmt.Sprintf(" %s  %s  [%s]  a-d pattern  up/down level  q quit", f.Label(), f.LevelName, f.Pattern)
	runes := []rune(line)
	for x := 0; x < cols; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, rows-1, r, nil, style)
	}
}

func lighten(c color.RGBA, a float64) color.RGBA {
	a = min(max(a, 0), 1)
	mix := func(v uint8) uint8 { return uint8(float64(v) + (255-float64(v))*a) }
	return color.RGBA{R: mix(c.R), G: mix(c.G), B: mix(c.B), A: 255}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
