package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"unfold/internal/core"
	"unfold/internal/engine"
)

// Action is the effect of one terminal event.
type Action struct {
	Quit    bool
	Resize  bool
	Dir     int
	Input   engine.Input
	Pattern core.Pattern
}

// Translate maps a terminal event onto an Action.
func Translate(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return Action{Quit: true}
		case tcell.KeyUp, tcell.KeyRight:
			return Action{Dir: 1}
		case tcell.KeyDown, tcell.KeyLeft:
			return Action{Dir: -1}
		case tcell.KeyRune:
			r := unicode.ToUpper(ev.Rune())
			switch r {
			case 'Q':
				return Action{Quit: true}
			case 'A', 'B', 'C', 'D':
				return Action{Pattern: core.Pattern(string(r))}
			}
		}
	case *tcell.EventMouse:
		switch b := ev.Buttons(); {
		case b&tcell.WheelUp != 0:
			return Action{Dir: 1, Input: engine.InputWheel}
		case b&tcell.WheelDown != 0:
			return Action{Dir: -1, Input: engine.InputWheel}
		}
	case *tcell.EventResize:
		return Action{Resize: true}
	}
	return Action{}
}
