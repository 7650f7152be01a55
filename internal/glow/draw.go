package glow

// Transform maps buffer-local coordinates onto the display: a buffer point p
// lands at Origin + p*Scale.
type Transform struct {
	Scale   float64
	OriginX float64
	OriginY float64
}

// Draw is a single translucent white disc in display coordinates.
type Draw struct {
	X, Y   float64
	Radius float64
	Alpha  float64
	// Blur is the soft shadow radius a front-end should fake around the disc.
	Blur float64
}

// AppendDraws appends two overlapping discs per live particle to dst: the core
// disc and a slightly smaller blurred halo.
func (r *Ring) AppendDraws(dst []Draw, t Transform) []Draw {
	r.Each(func(p Particle) {
		a := p.Opacity()
		if a <= 0 {
			return
		}
		x := t.OriginX + p.Pos.X()*t.Scale
		y := t.OriginY + p.Pos.Y()*t.Scale
		d := p.Size * t.Scale
		dst = append(dst,
			Draw{X: x, Y: y, Radius: d / 2, Alpha: a},
			Draw{X: x, Y: y, Radius: d * haloFactor / 2, Alpha: a, Blur: haloBlur * t.Scale},
		)
	})
	return dst
}
