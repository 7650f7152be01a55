package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player mixes chimes onto the system speaker. A Player that failed to
// initialise, or was muted, silently drops chimes.
type Player struct {
	mu    sync.Mutex
	mixer *beep.Mixer
	ready bool
	muted bool
}

// NewPlayer constructs an uninitialised player.
func NewPlayer(muted bool) *Player {
	return &Player{mixer: &beep.Mixer{}, muted: muted}
}

// Init opens the speaker. Muted players never touch the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready || p.muted {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.muted = true
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Level plays the chime for the given level.
func (p *Player) Level(level int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted {
		return
	}
	s, err := Chime(level)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}
