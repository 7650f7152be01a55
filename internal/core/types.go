package core

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Pattern identifies one of the built-in fractal patterns.
type Pattern string

const (
	// PatternA is the first escape-time boundary fractal.
	PatternA Pattern = "A"
	// PatternB is the second escape-time boundary fractal.
	PatternB Pattern = "B"
	// PatternC is the radial flower.
	PatternC Pattern = "C"
	// PatternD is the H-tree.
	PatternD Pattern = "D"
)

// ErrUnknownPattern is returned when a pattern identifier is not registered.
var ErrUnknownPattern = errors.New("unknown pattern")

// ParsePattern converts a user supplied identifier (case-insensitive) into a
// registered Pattern.
func ParsePattern(s string) (Pattern, error) {
	p := Pattern(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := renderers[p]; !ok {
		return "", fmt.Errorf("parse %q: %w", s, ErrUnknownPattern)
	}
	return p, nil
}

// Emitter receives glow particle spawn points in buffer-local coordinates.
type Emitter interface {
	Emit(x, y float64)
}

// EmitterFunc adapts a plain function to the Emitter interface.
type EmitterFunc func(x, y float64)

// Emit calls f(x, y).
func (f EmitterFunc) Emit(x, y float64) { f(x, y) }

// Canvas receives vector drawing primitives in buffer-local coordinates.
type Canvas interface {
	Disc(cx, cy, r float64)
	Line(x0, y0, x1, y1, width float64)
}

// Renderer is the contract every pattern implements: overwrite dst with the
// pattern blended between two discrete levels and report points of interest
// to fx.
type Renderer interface {
	Name() Pattern
	Render(dst *Buffer, b Blend, fx Emitter)
}

// Settings are the per-session values a Factory builds a Renderer with.
type Settings struct {
	// Seed drives any stochastic sampling the renderer performs.
	Seed int64
	// Workers bounds the goroutines a renderer may use. Zero selects the
	// renderer's default.
	Workers int
}

// Factory constructs a Renderer for one session.
type Factory func(s Settings) Renderer

var renderers = map[Pattern]Factory{}

// Register adds a renderer factory under the provided pattern identifier.
func Register(p Pattern, f Factory) {
	if p == "" || f == nil {
		return
	}
	renderers[p] = f
}

// Renderers exposes the registry of available renderer factories.
func Renderers() map[Pattern]Factory {
	return renderers
}

// Patterns lists the registered pattern identifiers in order.
func Patterns() []Pattern {
	out := make([]Pattern, 0, len(renderers))
	for p := range renderers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
