package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/tui-pong/internal/audio"
	"github.com/arcadehall/tui-pong/internal/core"
	"github.com/arcadehall/tui-pong/internal/game"
	"github.com/arcadehall/tui-pong/internal/registry"
	"github.com/arcadehall/tui-pong/internal/storage"
)

// matchInfo is implemented by games that expose match details for
// persistence and audio settings. The pong variants all do.
type matchInfo interface {
	Winner() game.Side
	Ticks() int
	SoundEnabled() bool
}

// Model is the Bubble Tea model for running a match.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       audio.Sink
	keymap     *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	matchSaved bool // Whether the current finished match has been persisted
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(g registry.Game, store *storage.Store, sink audio.Sink, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if sink == nil {
		sink = audio.NewNoopSink()
	}

	return Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		sink:       sink,
		keymap:     NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keymap.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize with new dimensions; a resize mid-match restarts it.
	if !m.gameState.MatchOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	wasOver := m.gameState.MatchOver
	m.gameState = result.State
	if wasOver && !m.gameState.MatchOver {
		// Game restarted itself
		m.matchSaved = false
	}

	m.dispatchAudio(result.Events)

	// Save match outcome once per match
	if m.gameState.MatchOver && !m.matchSaved {
		if info, ok := m.game.(matchInfo); ok && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveMatch(m.game.ID(), m.gameState.ScoreLeft, m.gameState.ScoreRight,
				info.Winner().String(), info.Ticks())
		}
		m.matchSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// dispatchAudio forwards tick events to the audio sink as cues.
// The sink call is non-blocking; the simulation never waits on sound.
func (m *Model) dispatchAudio(events []core.Event) {
	if info, ok := m.game.(matchInfo); ok {
		m.sink.SetEnabled(info.SoundEnabled())
	}

	for _, ev := range events {
		switch ev {
		case core.EventWallHit, core.EventPaddleHit:
			m.sink.Trigger(audio.CueHit)
		case core.EventScore:
			m.sink.Trigger(audio.CueScore)
		case core.EventMatchWon:
			m.sink.Trigger(audio.CueExplosion)
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(g registry.Game, store *storage.Store, sink audio.Sink, cfg core.RuntimeConfig) error {
	model := NewModel(g, store, sink, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
