package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Event is something noteworthy that happened during a tick.
// The platform maps events to audio cues and persistence; games only emit them.
type Event int

const (
	EventNone      Event = iota
	EventWallHit         // Ball bounced off top/bottom boundary
	EventPaddleHit       // Ball bounced off a paddle
	EventScore           // A side scored
	EventMatchWon        // Win threshold reached, explosion fired
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	ScoreLeft  int  // Left player score
	ScoreRight int  // Right player score
	MatchOver  bool // Whether the match has ended
	Paused     bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
