package engine

import (
	"time"

	"unfold/internal/core"
)

const (
	// Cooldown is the minimum spacing between accepted level requests.
	Cooldown = 300 * time.Millisecond
	// PhaseDuration is the length of each half of a transition.
	PhaseDuration = 500 * time.Millisecond
)

// Phase is the stage of the level-label transition.
type Phase int

const (
	// PhaseIdle means no transition is running and input is accepted.
	PhaseIdle Phase = iota
	// PhaseFadeOut is the first half of a transition.
	PhaseFadeOut
	// PhaseFadeIn is the second half of a transition.
	PhaseFadeIn
)

func (p Phase) String() string {
	switch p {
	case PhaseFadeOut:
		return "fade-out"
	case PhaseFadeIn:
		return "fade-in"
	default:
		return "idle"
	}
}

// Input identifies the device a level request came from.
type Input int

const (
	// InputKey is a keyboard request.
	InputKey Input = iota
	// InputTouch is a touch swipe.
	InputTouch
	// InputWheel is a scroll-wheel notch. Only wheel requests are debounced.
	InputWheel
)

// navigator debounces level requests. A wheel request must clear the cooldown
// since the previous wheel request that cleared it. No request is accepted
// while a transition is running, and a request that changes the target locks
// input for two phases.
type navigator struct {
	now        core.Clock
	lastScroll time.Time
	changedAt  time.Time
}

func (n *navigator) request(s core.UnfoldingState, dir int, src Input) (core.UnfoldingState, bool) {
	now := n.now()
	if src == InputWheel {
		if !n.lastScroll.IsZero() && now.Sub(n.lastScroll) < Cooldown {
			return s, false
		}
		n.lastScroll = now
	}
	if n.locked(now) {
		return s, false
	}
	next := core.SetTarget(s, dir)
	if next.Target == s.Target {
		return s, false
	}
	n.changedAt = now
	return next, true
}

func (n *navigator) locked(now time.Time) bool {
	return n.phase(now) != PhaseIdle
}

func (n *navigator) phase(now time.Time) Phase {
	if n.changedAt.IsZero() {
		return PhaseIdle
	}
	elapsed := now.Sub(n.changedAt)
	switch {
	case elapsed < PhaseDuration:
		return PhaseFadeOut
	case elapsed < 2*PhaseDuration:
		return PhaseFadeIn
	default:
		return PhaseIdle
	}
}
