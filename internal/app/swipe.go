package app

// SwipeThreshold is the vertical travel in pixels a touch must cover before
// it counts as a level request.
const SwipeThreshold = 50

// swipeTracker turns the vertical travel of one touch into level requests.
// Screen y grows downward, so an upward swipe unfolds.
type swipeTracker struct {
	active bool
	id     int
	startY int
}

func (s *swipeTracker) begin(id, y int) {
	s.active, s.id, s.startY = true, id, y
}

// move reports +1 or -1 once the touch has travelled past the threshold and
// then rearms from the current position.
func (s *swipeTracker) move(id, y int) int {
	if !s.active || id != s.id {
		return 0
	}
	d := s.startY - y
	switch {
	case d >= SwipeThreshold:
		s.startY = y
		return 1
	case d <= -SwipeThreshold:
		s.startY = y
		return -1
	}
	return 0
}

func (s *swipeTracker) end() { s.active = false }
