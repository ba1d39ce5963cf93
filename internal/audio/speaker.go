package audio

import (
	"math"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/arcadehall/tui-pong/internal/config"
)

const sinkSampleRate = beep.SampleRate(44100)

// SpeakerSink plays cues through the system audio device via the beep
// speaker. Cue buffers are resolved once at open time: a WAV sample
// from the sample directory when present, a generated tone otherwise.
type SpeakerSink struct {
	buffers [cueCount]*beep.Buffer
	volume  float64
	enabled atomic.Bool
	closed  atomic.Bool
}

// Open builds the best available sink for the given configuration,
// walking the fallback chain: speaker (samples/tones) -> terminal
// bell -> silence. It never returns an error; degradation is silent.
func Open(cfg config.AudioConfig) Sink {
	if !cfg.Enabled {
		return NewNoopSink()
	}

	if s, err := NewSpeakerSink(cfg); err == nil {
		return s
	}

	// No audio device; a terminal bell still beats silence.
	return NewBellSink(nil)
}

// NewSpeakerSink initializes the speaker backend and pre-renders all
// cue buffers. Returns an error only when the audio device cannot be
// opened; callers fall back to the next tier.
func NewSpeakerSink(cfg config.AudioConfig) (*SpeakerSink, error) {
	if err := speaker.Init(sinkSampleRate, sinkSampleRate.N(time.Millisecond*50)); err != nil {
		return nil, err
	}

	s := &SpeakerSink{volume: cfg.MasterVolume}
	s.enabled.Store(true)

	format := beep.Format{SampleRate: sinkSampleRate, NumChannels: 2, Precision: 2}
	for c := Cue(0); c < cueCount; c++ {
		buf := beep.NewBuffer(format)
		if !loadSample(sampleDir(cfg), c, buf) {
			buf.Append(cueTone(c, sinkSampleRate))
		}
		s.buffers[c] = buf
	}

	return s, nil
}

// Trigger schedules the cue on the speaker mixer and returns
// immediately. Playback runs on the speaker's own goroutine.
func (s *SpeakerSink) Trigger(c Cue) {
	if s.closed.Load() || !s.enabled.Load() {
		return
	}
	if c < 0 || c >= cueCount {
		return
	}

	buf := s.buffers[c]
	streamer := buf.Streamer(0, buf.Len())
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeGain(s.volume),
		Silent:   s.volume <= 0,
	})
}

// SetEnabled flips the sound-on flag read by Trigger.
func (s *SpeakerSink) SetEnabled(on bool) {
	s.enabled.Store(on)
}

// Close silences the sink. The speaker stays initialized; beep exposes
// no teardown, and the process is exiting anyway.
func (s *SpeakerSink) Close() {
	s.closed.Store(true)
	speaker.Clear()
}

// loadSample decodes <dir>/<cue>.wav into buf, resampling to the sink
// rate. Returns false when the sample is missing or unreadable.
func loadSample(dir string, c Cue, buf *beep.Buffer) bool {
	if dir == "" {
		return false
	}

	f, err := os.Open(filepath.Join(dir, c.String()+".wav"))
	if err != nil {
		return false
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return false
	}

	if format.SampleRate != sinkSampleRate {
		buf.Append(beep.Resample(4, format.SampleRate, sinkSampleRate, streamer))
	} else {
		buf.Append(streamer)
	}
	return true
}

// sampleDir resolves the sample directory, defaulting to ~/.pong/sounds.
func sampleDir(cfg config.AudioConfig) string {
	if cfg.SampleDir != "" {
		return cfg.SampleDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pong", "sounds")
}

// volumeGain converts a linear 0..1 volume to the log scale beep uses.
func volumeGain(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}
