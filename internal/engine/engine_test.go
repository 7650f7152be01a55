package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"unfold/internal/core"
	"unfold/internal/glow"
	_ "unfold/internal/patterns/escape"
	_ "unfold/internal/patterns/flower"
	_ "unfold/internal/patterns/htree"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// EngineSuite drives an engine on a small buffer with a manual clock.
type EngineSuite struct {
	suite.Suite
	clock *fakeClock
	eng   *Engine
}

func (s *EngineSuite) SetupTest() {
	s.clock = &fakeClock{t: time.Unix(1_700_000_000, 0)}
	eng, err := New(Options{Pattern: core.PatternD, Seed: 5, Size: 64, Clock: s.clock.Now})
	require.NoError(s.T(), err)
	s.eng = eng
}

func (s *EngineSuite) frame() Frame {
	s.clock.Advance(33 * time.Millisecond)
	return s.eng.RenderFrame(glow.Transform{Scale: 1})
}

func (s *EngineSuite) settle() Frame {
	var f Frame
	for i := 0; i < 400; i++ {
		f = s.frame()
		if s.eng.State().Settled() && !f.Regenerated {
			return f
		}
	}
	s.T().Fatalf("level never settled: %+v", s.eng.State())
	return f
}

func (s *EngineSuite) TestFirstFrameRegenerates() {
	f := s.frame()
	require.True(s.T(), f.Regenerated)
	require.Equal(s.T(), core.PatternD, f.Pattern)
	require.Equal(s.T(), 0, f.Level)
	require.Equal(s.T(), "Level 0", f.Label())
	require.Equal(s.T(), "Base Consciousness", f.LevelName)
	require.Equal(s.T(), PhaseIdle, f.Phase)

	f = s.frame()
	require.False(s.T(), f.Regenerated, "a settled level is not redrawn")
}

func (s *EngineSuite) TestWheelRequestsInsideCooldownAreDropped() {
	require.False(s.T(), s.eng.RequestLevelChange(-1, InputWheel), "already at the lowest level")
	s.clock.Advance(100 * time.Millisecond)
	require.False(s.T(), s.eng.RequestLevelChange(+1, InputWheel), "second wheel notch within 300ms")
	require.Equal(s.T(), 0, s.eng.State().Target)

	s.clock.Advance(Cooldown)
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputWheel))
	require.Equal(s.T(), 1, s.eng.State().Target)
}

func (s *EngineSuite) TestKeysAndTouchIgnoreWheelCooldown() {
	require.False(s.T(), s.eng.RequestLevelChange(-1, InputWheel))
	s.clock.Advance(100 * time.Millisecond)
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey), "keys are only guarded by the transition lock")

	s.clock.Advance(2*PhaseDuration - 100*time.Millisecond)
	require.False(s.T(), s.eng.RequestLevelChange(+1, InputWheel), "transition still running")
	s.clock.Advance(100 * time.Millisecond)
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputTouch), "touch is only guarded by the transition lock")
	require.Equal(s.T(), 2, s.eng.State().Target)
}

func (s *EngineSuite) TestTransitionLockHoldsForTwoPhases() {
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey))

	s.clock.Advance(400 * time.Millisecond)
	require.Equal(s.T(), PhaseFadeOut, s.eng.RenderFrame(glow.Transform{Scale: 1}).Phase)
	require.False(s.T(), s.eng.RequestLevelChange(+1, InputKey), "transition still running")

	s.clock.Advance(400 * time.Millisecond)
	require.Equal(s.T(), PhaseFadeIn, s.eng.RenderFrame(glow.Transform{Scale: 1}).Phase)

	s.clock.Advance(400 * time.Millisecond)
	require.Equal(s.T(), PhaseIdle, s.eng.RenderFrame(glow.Transform{Scale: 1}).Phase)
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey))
	require.Equal(s.T(), 2, s.eng.State().Target)
}

func (s *EngineSuite) TestRequestsAtBoundsDoNotLock() {
	require.False(s.T(), s.eng.RequestLevelChange(-1, InputKey))
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey), "a rejected bound request must not start a transition")
}

func (s *EngineSuite) TestLevelEasesAndSettles() {
	s.settle()
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey))

	f := s.frame()
	require.True(s.T(), f.Regenerated)
	require.InDelta(s.T(), 0.05, s.eng.State().Current, 1e-12)
	require.Equal(s.T(), 0, f.Level)

	f = s.settle()
	require.Equal(s.T(), 1, f.Level)
	require.Equal(s.T(), "First Unfolding", f.LevelName)
	require.Less(s.T(), s.eng.State().Current, 1.0)
}

func (s *EngineSuite) TestSelectPatternClearsParticlesAndRegenerates() {
	s.clock.Advance(Cooldown)
	require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey))
	s.settle()
	require.Positive(s.T(), s.eng.Particles(), "H-tree above level 0 emits corner particles")

	require.NoError(s.T(), s.eng.SelectPattern(core.PatternC))
	require.Zero(s.T(), s.eng.Particles())
	require.Equal(s.T(), core.PatternC, s.eng.Pattern())
	f := s.frame()
	require.True(s.T(), f.Regenerated)
	require.Equal(s.T(), core.PatternC, f.Pattern)
}

func (s *EngineSuite) TestUnknownPattern() {
	err := s.eng.SelectPattern("Q")
	require.True(s.T(), errors.Is(err, core.ErrUnknownPattern))
	require.Equal(s.T(), core.PatternD, s.eng.Pattern(), "failed switch keeps the old pattern")
}

func (s *EngineSuite) TestParticlesStayBounded() {
	require.NoError(s.T(), s.eng.SelectPattern(core.PatternC))
	for i := 0; i < core.MaxLevel; i++ {
		s.clock.Advance(2 * time.Second)
		require.True(s.T(), s.eng.RequestLevelChange(+1, InputKey))
	}
	for i := 0; i < 20; i++ {
		f := s.frame()
		require.LessOrEqual(s.T(), s.eng.Particles(), glow.Capacity)
		require.LessOrEqual(s.T(), len(f.Draws), 2*glow.Capacity)
	}
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func TestNewRejectsUnknownPattern(t *testing.T) {
	_, err := New(Options{Pattern: "nope", Size: 16})
	require.ErrorIs(t, err, core.ErrUnknownPattern)
}

func TestZeroBlendFrameMatchesDiscreteRender(t *testing.T) {
	for _, p := range []core.Pattern{core.PatternA, core.PatternB, core.PatternC, core.PatternD} {
		eng, err := New(Options{Pattern: p, Level: 2, Seed: 3, Size: 48})
		require.NoError(t, err)
		f := eng.RenderFrame(glow.Transform{Scale: 1})

		// A settled engine renders BlendOf(L) = (L, L+1, 0). Escape-time output
		// at that blend is identical to a pure level-L render; the geometry
		// patterns recurse to max(base, next) and are compared at the blend.
		discrete := core.BlendOf(2)
		if p == core.PatternA || p == core.PatternB {
			discrete = core.Blend{Base: 2, Next: 2}
		}
		want := core.NewBuffer(48, 48)
		core.Renderers()[p](core.Settings{Seed: 3}).Render(want, discrete, nil)
		require.Equal(t, want.Pix(), f.Buffer.Pix(), "pattern %s", p)
	}
}

func TestWorkersDoNotChangeOutput(t *testing.T) {
	render := func(workers int) (*core.Buffer, int) {
		eng, err := New(Options{Pattern: core.PatternB, Level: 1, Seed: 11, Size: 80, Workers: workers})
		require.NoError(t, err)
		f := eng.RenderFrame(glow.Transform{Scale: 1})
		return f.Buffer, eng.Particles()
	}
	one, n1 := render(1)
	many, n4 := render(4)
	require.Equal(t, one.Pix(), many.Pix())
	require.Equal(t, n1, n4)
}

func TestFit(t *testing.T) {
	p := Fit(1000, 600)
	require.InDelta(t, 480, p.Size, 1e-9)
	require.InDelta(t, 260, p.X, 1e-9)
	require.InDelta(t, 60, p.Y, 1e-9)
	require.InDelta(t, 0.6, p.Scale(core.BufferSize), 1e-12)

	tr := p.Transform(core.BufferSize)
	require.InDelta(t, 260+400*0.6, tr.OriginX+400*tr.Scale, 1e-9, "buffer centre lands on display centre")
	require.InDelta(t, 300, tr.OriginY+400*tr.Scale, 1e-9)
}
