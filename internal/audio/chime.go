// Package audio plays the short chime that accompanies a level change.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

const (
	sampleRate = beep.SampleRate(44100)

	chimeLength = 250 * time.Millisecond
	baseTone    = 392.0 // G4
	volume      = 0.25
)

// pentatonic semitone offsets, one per level.
var steps = [...]int{0, 2, 4, 7, 9}

// Tone returns the chime frequency for a level; higher levels ring higher.
func Tone(level int) float64 {
	if level < 0 {
		level = 0
	}
	if level >= len(steps) {
		level = len(steps) - 1
	}
	return baseTone * math.Pow(2, float64(steps[level])/12)
}

// decay scales a streamer by a linearly falling envelope over n samples.
type decay struct {
	s   beep.Streamer
	pos int
	n   int
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 0.0
		if d.pos < d.n {
			gain = volume * (1 - float64(d.pos)/float64(d.n))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// Chime builds the streamer for a level's chime.
func Chime(level int) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, Tone(level))
	if err != nil {
		return nil, err
	}
	n := sampleRate.N(chimeLength)
	return beep.Take(n, &decay{s: sine, n: n}), nil
}
