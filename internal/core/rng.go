package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Stream derives an independent RNG for the given stream id, seeded from the
// parent's next value. Concurrent workers each take their own stream; Stream
// itself must be called from a single goroutine.
func (r *RNG) Stream(id uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(r.r.Uint64(), id))}
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	return r.r.Float64() < p
}

// Range returns a uniform value in [lo, hi).
func (r *RNG) Range(lo, hi float64) float64 {
	return lo + r.r.Float64()*(hi-lo)
}
