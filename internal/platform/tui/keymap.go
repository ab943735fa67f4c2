package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glimmer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to decoded keys and host actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey decodes a key message. Arrows and printable characters become
// core.Key values for the game; p, r, enter and esc also carry a host action.
// isQuit is set for ctrl+c and q.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.Key{}, core.ActionQuit, true
	}

	switch msg.Type {
	case tea.KeyUp:
		return core.RawKey(core.KeyArrowUp), core.ActionNone, false
	case tea.KeyDown:
		return core.RawKey(core.KeyArrowDown), core.ActionNone, false
	case tea.KeyLeft:
		return core.RawKey(core.KeyArrowLeft), core.ActionNone, false
	case tea.KeyRight:
		return core.RawKey(core.KeyArrowRight), core.ActionNone, false
	case tea.KeyEnter:
		return core.RawKey(core.KeyEnter), core.ActionConfirm, false
	case tea.KeyEsc:
		return core.RawKey(core.KeyEscape), core.ActionBack, false
	case tea.KeySpace:
		return core.RuneKey(' '), core.ActionNone, false
	case tea.KeyRunes:
		if len(msg.Runes) != 1 {
			return core.RawKey(core.KeyOther), core.ActionNone, false
		}
		r := msg.Runes[0]
		switch r {
		case 'p', 'P':
			action = core.ActionPause
		case 'r', 'R':
			action = core.ActionRestart
		case 'b', 'B':
			action = core.ActionBack
		}
		return core.RuneKey(r), action, false
	}

	return core.RawKey(core.KeyOther), core.ActionNone, false
}

// MapKeyToFrame queues a key message into an input frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	k, action, isQuit := km.MapKey(msg)
	if isQuit {
		return true
	}
	if action != core.ActionNone {
		frame.Set(action)
	}
	if k.Code != core.KeyNone {
		frame.Push(k)
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
