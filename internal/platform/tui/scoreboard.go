package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/arcadehall/tui-pong/internal/registry"
	"github.com/arcadehall/tui-pong/internal/storage"
)

// Scoreboard layout constants
const (
	maxMatches = 100 // Max matches to load per variant
)

// ScoreboardKeyMap defines the key bindings for the match history view.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next variant"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev variant"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the match history screen.
type ScoreboardModel struct {
	store    *storage.Store
	games    []registry.GameInfo
	selected int
	table    table.Model
	stats    storage.SideStats
	keymap   ScoreboardKeyMap
	help     help.Model
	width    int
	height   int
	loadErr  error
}

// NewScoreboardModel creates the match history screen.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		games:  registry.List(),
		keymap: DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

// newTable builds the bubbles table for match rows.
func (m *ScoreboardModel) newTable() table.Model {
	columns := []table.Column{
		{Title: "When", Width: 17},
		{Title: "Score", Width: 9},
		{Title: "Winner", Width: 7},
		{Title: "Length", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(m.height-8),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("14"))
	t.SetStyles(styles)

	return t
}

// reload fetches matches and stats for the selected variant.
func (m *ScoreboardModel) reload() {
	m.loadErr = nil
	if m.store == nil || len(m.games) == 0 {
		m.table.SetRows(nil)
		return
	}

	gameID := m.games[m.selected].ID

	stats, err := m.store.Stats(gameID)
	if err != nil {
		m.loadErr = err
		return
	}
	m.stats = stats

	matches, err := m.store.RecentMatches(gameID, maxMatches)
	if err != nil {
		m.loadErr = err
		return
	}

	rows := make([]table.Row, 0, len(matches))
	for _, e := range matches {
		rows = append(rows, table.Row{
			e.CreatedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d - %d", e.ScoreLeft, e.ScoreRight),
			e.Winner,
			ticksToClock(e.Ticks),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// ticksToClock formats a tick count as m:ss assuming 60 ticks/second.
func ticksToClock(ticks int) string {
	secs := ticks / 60
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init implements tea.Model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(m.height - 8)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keymap.NextGame):
			if len(m.games) > 0 {
				m.selected = (m.selected + 1) % len(m.games)
				m.reload()
			}
			return m, nil
		case key.Matches(msg, m.keymap.PrevGame):
			if len(m.games) > 0 {
				m.selected = (m.selected - 1 + len(m.games)) % len(m.games)
				m.reload()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ScoreboardModel) View() string {
	var sb strings.Builder

	title := "Match History"
	if len(m.games) > 0 {
		title = fmt.Sprintf("Match History - %s", m.games[m.selected].Title)
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	sb.WriteString(titleStyle.Render(title))
	sb.WriteString("\n")

	if m.loadErr != nil {
		sb.WriteString(fmt.Sprintf("\n  could not load matches: %v\n", m.loadErr))
		return sb.String()
	}

	statsLine := fmt.Sprintf("  %d matches  |  left wins: %d  |  right wins: %d",
		m.stats.Matches, m.stats.LeftWins, m.stats.RightWins)
	sb.WriteString(lipgloss.NewStyle().Faint(true).Render(statsLine))
	sb.WriteString("\n\n")

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keymap))

	return sb.String()
}

// RunScoreboard shows the match history screen until the user quits.
func RunScoreboard(store *storage.Store, width, height int) error {
	model := NewScoreboardModel(store, width, height)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
