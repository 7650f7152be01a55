package core

import "math"

const (
	// MaxLevel is the highest discrete unfolding level.
	MaxLevel = 4
	// EaseFactor is the fraction of the remaining distance covered per frame.
	EaseFactor = 0.05
	// SettleEpsilon is the distance below which the level is considered settled.
	SettleEpsilon = 0.01
)

var levelNames = [MaxLevel + 1]string{
	"Base Consciousness",
	"First Unfolding",
	"Second Unfolding",
	"Third Unfolding",
	"Full Unfoldment",
}

// LevelName returns the display name of a discrete level. Out of range values
// are clamped.
func LevelName(level int) string {
	return levelNames[ClampLevel(level)]
}

// ClampLevel limits level to [0, MaxLevel].
func ClampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// UnfoldingState tracks the continuous level shown on screen and the discrete
// level it is easing toward.
type UnfoldingState struct {
	Current float64
	Target  int
}

// Settled reports whether Current is within SettleEpsilon of Target.
func (s UnfoldingState) Settled() bool {
	return math.Abs(s.Current-float64(s.Target)) <= SettleEpsilon
}

// Advance applies one frame of easing. The step is geometric so Current
// approaches Target without overshooting.
func Advance(s UnfoldingState) UnfoldingState {
	if s.Settled() {
		return s
	}
	s.Current += (float64(s.Target) - s.Current) * EaseFactor
	return s
}

// SetTarget moves the target one step in the direction of delta. It is a
// no-op when the target already sits on the corresponding bound.
func SetTarget(s UnfoldingState, delta int) UnfoldingState {
	switch {
	case delta > 0 && s.Target < MaxLevel:
		s.Target++
	case delta < 0 && s.Target > 0:
		s.Target--
	}
	return s
}

// Blend is the (base, next, factor) triple renderers interpolate with.
type Blend struct {
	Base   int
	Next   int
	Factor float64
}

// BlendOf derives the blend triple for a continuous level.
func BlendOf(level float64) Blend {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	base := int(math.Floor(level))
	next := base + 1
	if next > MaxLevel {
		next = MaxLevel
	}
	return Blend{Base: base, Next: next, Factor: level - float64(base)}
}

// Blend derives the blend triple for the current level.
func (s UnfoldingState) Blend() Blend { return BlendOf(s.Current) }

// Lerp interpolates between the value at Base (v0) and at Next (v1).
func (b Blend) Lerp(v0, v1 float64) float64 {
	return v0*(1-b.Factor) + v1*b.Factor
}

// Level returns the discrete level shown to the user. Easing stops within
// SettleEpsilon of the target, so a level approached from below is reported
// once it is that close.
func (s UnfoldingState) Level() int {
	return ClampLevel(int(math.Floor(s.Current + SettleEpsilon)))
}
