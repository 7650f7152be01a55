// Package glow keeps the short-lived decorative particles the renderers spawn
// and turns them into translucent disc draws.
package glow

import (
	"github.com/go-gl/mathgl/mgl64"

	"unfold/internal/core"
)

const (
	// Capacity is the default soft cap on live particles.
	Capacity = 1000

	minSize  = 2.0
	maxSize  = 6.0
	minLife  = 20.0
	maxLife  = 60.0
	maxSpeed = 0.3

	peakAlpha  = 0.8
	haloFactor = 0.8
	haloBlur   = 15.0
)

// Particle is a single glow point in buffer-local coordinates.
type Particle struct {
	Pos     mgl64.Vec2
	Vel     mgl64.Vec2
	Size    float64
	Life    float64
	MaxLife float64
}

// Alive reports whether the particle still has life left.
func (p Particle) Alive() bool { return p.Life > 0 }

// Opacity is proportional to the remaining life fraction, peaking at 0.8.
func (p Particle) Opacity() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	return peakAlpha * min(p.Life/p.MaxLife, 1)
}

// Ring is a FIFO-bounded particle collection. Emitting into a full ring
// evicts the oldest particle regardless of its remaining life.
type Ring struct {
	buf  []Particle
	head int
	n    int
	rng  *core.RNG
}

var _ core.Emitter = (*Ring)(nil)

// NewRing allocates a ring holding at most capacity particles.
func NewRing(capacity int, seed int64) *Ring {
	if capacity <= 0 {
		capacity = Capacity
	}
	return &Ring{buf: make([]Particle, capacity), rng: core.NewRNG(seed)}
}

// Len returns the number of live particles.
func (r *Ring) Len() int { return r.n }

// Cap returns the ring capacity.
func (r *Ring) Cap() int { return len(r.buf) }

// Clear drops every particle.
func (r *Ring) Clear() {
	r.head, r.n = 0, 0
}

// Emit spawns a particle at (x, y) with randomised size, life and drift.
func (r *Ring) Emit(x, y float64) {
	life := r.rng.Range(minLife, maxLife)
	r.push(Particle{
		Pos:     mgl64.Vec2{x, y},
		Vel:     mgl64.Vec2{r.rng.Range(-maxSpeed, maxSpeed), r.rng.Range(-maxSpeed, maxSpeed)},
		Size:    r.rng.Range(minSize, maxSize),
		Life:    life,
		MaxLife: life,
	})
}

func (r *Ring) push(p Particle) {
	c := len(r.buf)
	if r.n == c {
		r.head = (r.head + 1) % c
		r.n--
	}
	r.buf[(r.head+r.n)%c] = p
	r.n++
}

// Tick advances every particle by its velocity, ages it by one frame and
// drops the ones whose life ran out. Survivors keep their relative order.
func (r *Ring) Tick() {
	c := len(r.buf)
	kept := 0
	for i := 0; i < r.n; i++ {
		p := r.buf[(r.head+i)%c]
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if !p.Alive() {
			continue
		}
		r.buf[(r.head+kept)%c] = p
		kept++
	}
	r.n = kept
}

// Each calls fn for every live particle, oldest first.
func (r *Ring) Each(fn func(Particle)) {
	c := len(r.buf)
	for i := 0; i < r.n; i++ {
		fn(r.buf[(r.head+i)%c])
	}
}

// Snapshot copies the live particles, oldest first.
func (r *Ring) Snapshot() []Particle {
	out := make([]Particle, 0, r.n)
	r.Each(func(p Particle) { out = append(out, p) })
	return out
}
