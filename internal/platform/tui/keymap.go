package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadehall/tui-pong/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
//
// Terminals deliver no key-release events, so "hold" semantics come
// from key repeat: every repeat re-asserts the action into the frame
// for the tick it arrives in.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "w":
		return core.ActionLeftUp, false
	case "s":
		return core.ActionLeftDown, false
	case "up":
		return core.ActionRightUp, false
	case "down":
		return core.ActionRightDown, false
	case " ":
		return core.ActionServe, false
	case "c":
		return core.ActionPalette, false
	case "m":
		return core.ActionMute, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}
