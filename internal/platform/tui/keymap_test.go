package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glimmer/internal/core"
)

func runeMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		key    core.Key
		action core.Action
		quit   bool
	}{
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.RawKey(core.KeyArrowUp), core.ActionNone, false},
		{"down", tea.KeyMsg{Type: tea.KeyDown}, core.RawKey(core.KeyArrowDown), core.ActionNone, false},
		{"left", tea.KeyMsg{Type: tea.KeyLeft}, core.RawKey(core.KeyArrowLeft), core.ActionNone, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.RawKey(core.KeyArrowRight), core.ActionNone, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.RawKey(core.KeyEnter), core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.RawKey(core.KeyEscape), core.ActionBack, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.RuneKey(' '), core.ActionNone, false},
		{"pause", runeMsg('p'), core.RuneKey('p'), core.ActionPause, false},
		{"restart", runeMsg('r'), core.RuneKey('r'), core.ActionRestart, false},
		{"printable", runeMsg('x'), core.RuneKey('x'), core.ActionNone, false},
		{"unicode", runeMsg('ж'), core.RuneKey('ж'), core.ActionNone, false},
		{"quit q", runeMsg('q'), core.Key{}, core.ActionQuit, true},
		{"quit ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.Key{}, core.ActionQuit, true},
		{"other", tea.KeyMsg{Type: tea.KeyF5}, core.RawKey(core.KeyOther), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k, action, quit := km.MapKey(tt.msg)
			if k != tt.key || action != tt.action || quit != tt.quit {
				t.Errorf("MapKey() = %+v, %v, %v; want %+v, %v, %v", k, action, quit, tt.key, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrameQueuesInOrder(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyRight}, &frame)
	km.MapKeyToFrame(runeMsg('p'), &frame)

	if len(frame.Keys) != 3 {
		t.Fatalf("expected 3 queued keys, got %d", len(frame.Keys))
	}
	if frame.Keys[0].Code != core.KeyArrowRight || frame.Keys[2].Rune != 'p' {
		t.Errorf("unexpected key order: %+v", frame.Keys)
	}
	if !frame.Has(core.ActionPause) {
		t.Error("expected pause action")
	}

	if !km.MapKeyToFrame(runeMsg('q'), &frame) {
		t.Error("q should request quit")
	}
	if len(frame.Keys) != 3 {
		t.Error("quit key should not be queued")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeMsg('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeMsg('q'), MenuActionQuit},
		{runeMsg('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
