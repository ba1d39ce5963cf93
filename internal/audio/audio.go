// Package audio provides fire-and-forget sound cues for the game.
//
// Every failure here is a non-fatal degradation. Each cue resolves
// through a fallback chain: pre-recorded WAV sample, procedurally
// generated tone, terminal bell, silence. Triggering a cue never
// blocks the simulation tick and never returns an error.
package audio

import (
	"io"
	"os"
	"sync/atomic"
)

// Cue is one of the logical sound cues the game can trigger.
type Cue int

const (
	CueHit Cue = iota // Ball hit a wall or paddle
	CueScore          // A side scored
	CueExplosion      // Match won, explosion burst
	cueCount
)

// String returns the cue's file stem ("hit", "score", "explosion").
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueScore:
		return "score"
	case CueExplosion:
		return "explosion"
	default:
		return "unknown"
	}
}

// Sink plays sound cues. Trigger is asynchronous and non-blocking; the
// caller never waits on playback and never observes a result.
type Sink interface {
	// Trigger schedules a cue for playback. No-op while disabled.
	Trigger(c Cue)

	// SetEnabled flips the sound-on flag. Safe to call from any goroutine;
	// playback goroutines only ever read it.
	SetEnabled(on bool)

	// Close releases the backend. Triggers after Close are silent no-ops.
	Close()
}

// NoopSink is the silent last tier of the fallback chain.
type NoopSink struct{}

// NewNoopSink returns a sink that does nothing.
func NewNoopSink() *NoopSink { return &NoopSink{} }

func (*NoopSink) Trigger(Cue)     {}
func (*NoopSink) SetEnabled(bool) {}
func (*NoopSink) Close()          {}

// BellSink rings the terminal bell for every cue. Used when no audio
// device is available but a terminal is.
type BellSink struct {
	w       io.Writer
	enabled atomic.Bool
}

// NewBellSink creates a bell sink writing BEL to w (defaults to stderr).
func NewBellSink(w io.Writer) *BellSink {
	if w == nil {
		w = os.Stderr
	}
	s := &BellSink{w: w}
	s.enabled.Store(true)
	return s
}

// Trigger rings the bell. Write errors are swallowed: a broken terminal
// just means silence.
func (s *BellSink) Trigger(Cue) {
	if !s.enabled.Load() {
		return
	}
	_, _ = s.w.Write([]byte{'\a'})
}

func (s *BellSink) SetEnabled(on bool) {
	s.enabled.Store(on)
}

func (*BellSink) Close() {}
