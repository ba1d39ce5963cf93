package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/tui-pong/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case " ":
		return tea.KeyMsg(tea.Key{Type: tea.KeySpace, Runes: []rune{' '}})
	case "up":
		return tea.KeyMsg(tea.Key{Type: tea.KeyUp})
	case "down":
		return tea.KeyMsg(tea.Key{Type: tea.KeyDown})
	case "esc":
		return tea.KeyMsg(tea.Key{Type: tea.KeyEsc})
	case "ctrl+c":
		return tea.KeyMsg(tea.Key{Type: tea.KeyCtrlC})
	default:
		return tea.KeyMsg(tea.Key{Type: tea.KeyRunes, Runes: []rune(s)})
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"w", core.ActionLeftUp, false},
		{"s", core.ActionLeftDown, false},
		{"up", core.ActionRightUp, false},
		{"down", core.ActionRightDown, false},
		{" ", core.ActionServe, false},
		{"c", core.ActionPalette, false},
		{"m", core.ActionMute, false},
		{"p", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"esc", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.key, func(t *testing.T) {
			action, quit := km.MapKey(keyMsg(tc.key))
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.key, action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.key, quit, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(keyMsg("w"), &frame) {
		t.Error("w should not be a quit request")
	}
	if km.MapKeyToFrame(keyMsg("down"), &frame) {
		t.Error("down should not be a quit request")
	}

	if !frame.Has(core.ActionLeftUp) || !frame.Has(core.ActionRightDown) {
		t.Error("Mapped actions should accumulate in the frame")
	}

	// Unknown keys leave the frame untouched
	km.MapKeyToFrame(keyMsg("x"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("ActionNone should never be set in the frame")
	}

	if !km.MapKeyToFrame(keyMsg("q"), &frame) {
		t.Error("q should be a quit request")
	}
}
