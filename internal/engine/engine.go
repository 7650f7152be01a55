// Package engine owns one visualisation session: the active pattern, the
// unfolding level, the offscreen buffer and the glow particles. Front-ends
// call RenderFrame once per display tick and route input through
// RequestLevelChange and SelectPattern.
package engine

import (
	"fmt"
	"time"

	"unfold/internal/core"
	"unfold/internal/glow"
)

// Options configures a new Engine.
type Options struct {
	Pattern core.Pattern
	Level   int
	Seed    int64
	// Workers bounds the goroutines used to regenerate the buffer; zero lets
	// each pattern pick.
	Workers int
	// Size is the buffer edge length; zero means core.BufferSize.
	Size int
	// Clock defaults to time.Now.
	Clock core.Clock
}

// Frame is the state a front-end needs to present one display tick.
type Frame struct {
	Buffer *core.Buffer
	// Draws holds the glow discs in display coordinates.
	Draws []glow.Draw

	Pattern   core.Pattern
	Level     int
	LevelName string
	Phase     Phase
	// Regenerated reports whether Buffer was redrawn during this frame.
	Regenerated bool
}

// Label returns the short level indicator, e.g. "Level 2".
func (f Frame) Label() string { return fmt.Sprintf("Level %d", f.Level) }

// Engine is the explicit context for one visualisation session.
type Engine struct {
	settings core.Settings
	pattern  core.Pattern
	renderer core.Renderer
	state    core.UnfoldingState
	buf      *core.Buffer
	glow     *glow.Ring
	nav      navigator
	dirty    bool
	draws    []glow.Draw
}

// New constructs an engine showing opts.Pattern at opts.Level.
func New(opts Options) (*Engine, error) {
	if opts.Pattern == "" {
		opts.Pattern = core.PatternA
	}
	if opts.Size <= 0 {
		opts.Size = core.BufferSize
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	level := core.ClampLevel(opts.Level)
	e := &Engine{
		settings: core.Settings{Seed: opts.Seed, Workers: opts.Workers},
		state:    core.UnfoldingState{Current: float64(level), Target: level},
		buf:      core.NewBuffer(opts.Size, opts.Size),
		glow:     glow.NewRing(glow.Capacity, opts.Seed+1),
		nav:      navigator{now: opts.Clock},
	}
	if err := e.SelectPattern(opts.Pattern); err != nil {
		return nil, err
	}
	return e, nil
}

// SelectPattern switches the active pattern, clears the particles and forces
// a full regeneration on the next frame.
func (e *Engine) SelectPattern(p core.Pattern) error {
	factory, ok := core.Renderers()[p]
	if !ok {
		return fmt.Errorf("select pattern %q: %w", p, core.ErrUnknownPattern)
	}
	e.pattern = p
	e.renderer = factory(e.settings)
	e.glow.Clear()
	e.dirty = true
	return nil
}

// RequestLevelChange moves the target level one step up (dir > 0) or down
// (dir < 0). It reports whether the request was accepted; requests during a
// transition or past a bound are ignored, as are wheel requests inside the
// wheel cooldown.
func (e *Engine) RequestLevelChange(dir int, src Input) bool {
	next, ok := e.nav.request(e.state, dir, src)
	e.state = next
	return ok
}

// RenderFrame advances the level by one frame, regenerates the buffer if the
// level moved, ages the particles and returns the frame to present. Glow
// discs are placed on the display with t.
func (e *Engine) RenderFrame(t glow.Transform) Frame {
	moving := !e.state.Settled()
	e.state = core.Advance(e.state)

	regenerated := false
	if moving || e.dirty {
		e.regenerate()
		regenerated = true
	}

	e.glow.Tick()
	e.draws = e.glow.AppendDraws(e.draws[:0], t)

	level := e.Level()
	return Frame{
		Buffer:      e.buf,
		Draws:       e.draws,
		Pattern:     e.pattern,
		Level:       level,
		LevelName:   core.LevelName(level),
		Phase:       e.nav.phase(e.nav.now()),
		Regenerated: regenerated,
	}
}

func (e *Engine) regenerate() {
	e.glow.Clear()
	e.renderer.Render(e.buf, e.state.Blend(), e.glow)
	e.dirty = false
}

// Level returns the discrete level shown to the user.
func (e *Engine) Level() int { return e.state.Level() }

// State returns the current unfolding state.
func (e *Engine) State() core.UnfoldingState { return e.state }

// Pattern returns the active pattern.
func (e *Engine) Pattern() core.Pattern { return e.pattern }

// Buffer returns the offscreen raster.
func (e *Engine) Buffer() *core.Buffer { return e.buf }

// Particles returns the number of live glow particles.
func (e *Engine) Particles() int { return e.glow.Len() }
