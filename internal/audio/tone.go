package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// Procedural cue synthesis: short mono tones with an attack/release
// envelope, duplicated to both channels. Used when no WAV sample exists
// for a cue.

type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveNoise
)

// toneStreamer produces a finite waveform with a linear attack/release
// envelope. It implements beep.Streamer.
type toneStreamer struct {
	wave     waveform
	freq     float64
	sr       beep.SampleRate
	pos      int
	total    int
	attack   int
	release  int
	phase    float64
	rng      *rand.Rand
	sweepEnd float64 // If non-zero, frequency glides toward this value
}

// newTone creates a tone of the given duration in seconds.
func newTone(wave waveform, freq, dur float64, sr beep.SampleRate) *toneStreamer {
	total := int(dur * float64(sr))
	return &toneStreamer{
		wave:    wave,
		freq:    freq,
		sr:      sr,
		total:   total,
		attack:  int(0.005 * float64(sr)),
		release: total / 3,
		rng:     rand.New(rand.NewSource(1)),
	}
}

// newSweep creates a tone whose frequency glides from freq to end.
func newSweep(wave waveform, freq, end, dur float64, sr beep.SampleRate) *toneStreamer {
	t := newTone(wave, freq, dur, sr)
	t.sweepEnd = end
	return t
}

// Stream fills samples with the next chunk of the tone.
func (t *toneStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}

	for i := range samples {
		if t.pos >= t.total {
			break
		}

		freq := t.freq
		if t.sweepEnd != 0 {
			frac := float64(t.pos) / float64(t.total)
			freq = t.freq + (t.sweepEnd-t.freq)*frac
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case waveNoise:
			v = t.rng.Float64()*2 - 1
		}

		v *= t.envelope()

		samples[i][0] = v
		samples[i][1] = v

		t.phase += freq / float64(t.sr)
		if t.phase >= 1 {
			t.phase -= 1
		}
		t.pos++
		n++
	}
	return n, n > 0
}

// Err implements beep.Streamer; tone generation cannot fail.
func (t *toneStreamer) Err() error {
	return nil
}

// envelope returns the linear attack/release gain at the current position.
func (t *toneStreamer) envelope() float64 {
	if t.attack > 0 && t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if t.release > 0 && t.pos >= releaseStart {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

// cueTone returns the procedural streamer for a cue.
func cueTone(c Cue, sr beep.SampleRate) beep.Streamer {
	switch c {
	case CueHit:
		return newTone(waveSquare, 880, 0.06, sr)
	case CueScore:
		return newSweep(waveSine, 523, 784, 0.2, sr)
	case CueExplosion:
		return newSweep(waveNoise, 400, 60, 0.45, sr)
	default:
		return newTone(waveSine, 440, 0.05, sr)
	}
}
