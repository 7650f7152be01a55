//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type swipe struct {
	swipeTracker
	ids []ebiten.TouchID
}

func (s *swipe) update() int {
	s.ids = inpututil.AppendJustPressedTouchIDs(s.ids[:0])
	if len(s.ids) > 0 && !s.active {
		_, y := ebiten.TouchPosition(s.ids[0])
		s.begin(int(s.ids[0]), y)
		return 0
	}
	if !s.active {
		return 0
	}
	id := ebiten.TouchID(s.id)
	if inpututil.IsTouchJustReleased(id) {
		s.end()
		return 0
	}
	_, y := ebiten.TouchPosition(id)
	return s.move(s.id, y)
}
