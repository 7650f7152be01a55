package audio

import (
	"math"
	"testing"
)

func TestToneRisesWithLevel(t *testing.T) {
	prev := 0.0
	for level := 0; level <= 4; level++ {
		f := Tone(level)
		if f <= prev {
			t.Fatalf("tone for level %d (%f) should exceed level %d (%f)", level, f, level-1, prev)
		}
		prev = f
	}
	if Tone(-3) != Tone(0) || Tone(12) != Tone(4) {
		t.Fatal("out of range levels must clamp")
	}
	if math.Abs(Tone(0)-392) > 1e-9 {
		t.Fatalf("expected level 0 to ring at 392Hz, got %f", Tone(0))
	}
}

func TestChimeLengthAndDecay(t *testing.T) {
	s, err := Chime(2)
	if err != nil {
		t.Fatalf("chime: %v", err)
	}
	want := sampleRate.N(chimeLength)
	buf := make([][2]float64, 512)
	total := 0
	var head, tail float64
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			v := math.Abs(buf[i][0])
			if v > volume+1e-9 {
				t.Fatalf("sample %d exceeds volume: %f", total+i, v)
			}
			if total+i < want/10 {
				head = math.Max(head, v)
			}
			if total+i > want*9/10 {
				tail = math.Max(tail, v)
			}
		}
		total += n
		if !ok {
			break
		}
	}
	if total != want {
		t.Fatalf("expected %d samples, got %d", want, total)
	}
	if tail >= head {
		t.Fatalf("expected the chime to fade: head peak %f, tail peak %f", head, tail)
	}
}

func TestMutedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(true)
	if err := p.Init(); err != nil {
		t.Fatalf("muted init must not fail: %v", err)
	}
	p.Level(3)
	p.Close()
}
