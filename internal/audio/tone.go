package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveTriangle Wave = iota
	WaveSine
	WaveSquare
)

// tone is a fixed-length oscillator with a linear fade-out, the sound
// of a chiptune note with a fade effect.
type tone struct {
	freq  float64
	amp   float64
	wave  Wave
	phase float64
	pos   int
	total int
	rate  beep.SampleRate
}

// NewTone creates a streamer playing freq Hz for d, fading to silence.
func NewTone(freq float64, d time.Duration, wave Wave, amp float64, rate beep.SampleRate) beep.Streamer {
	return &tone{
		freq:  freq,
		amp:   amp,
		wave:  wave,
		total: rate.N(d),
		rate:  rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		default:
			val = 4*math.Abs(t.phase-0.5) - 1
		}

		fade := 1 - float64(t.pos)/float64(t.total)
		val *= t.amp * fade

		samples[i][0] = val
		samples[i][1] = val

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }
