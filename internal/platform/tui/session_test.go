package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/glimmer/internal/config"
	"github.com/vovakirdan/glimmer/internal/core"
	"github.com/vovakirdan/glimmer/internal/games/glimmer"
)

func updateSession(m SessionModel, msgs ...tea.Msg) SessionModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(SessionModel)
	}
	return m
}

func TestSessionStartsSelectedGame(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), config.PacingConfig{}, "tester")

	// Menu items are sorted by id: glimmer, glimmer_classic.
	m = updateSession(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})

	if m.view != viewGame {
		t.Fatalf("view = %d, want game view", m.view)
	}
	if id := m.game.game.ID(); id != "glimmer_classic" {
		t.Errorf("started %q, want glimmer_classic", id)
	}

	m = updateSession(m, TickMsg{})
	if st := m.game.State(); st.GameOver || st.Score != 0 {
		t.Errorf("state after idle tick = %+v", st)
	}
}

func TestSessionsDoNotShareGames(t *testing.T) {
	a := NewSessionModel(nil, core.DefaultConfig(), config.PacingConfig{}, "a")
	b := NewSessionModel(nil, core.DefaultConfig(), config.PacingConfig{}, "b")

	a = updateSession(a, tea.KeyMsg{Type: tea.KeyEnter})
	b = updateSession(b, tea.KeyMsg{Type: tea.KeyEnter})

	a = updateSession(a, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{})
	b = updateSession(b, TickMsg{})

	if a.game.game == b.game.game {
		t.Fatal("sessions share a game instance")
	}
	if a.game.Screen() == b.game.Screen() {
		t.Fatal("sessions share a screen")
	}
	ga, okA := a.game.game.(*glimmer.Game)
	gb, okB := b.game.game.(*glimmer.Game)
	if !okA || !okB {
		t.Fatal("sessions should run glimmer games")
	}
	if sa, sb := ga.Snapshot(), gb.Snapshot(); sa.X != 41 || sb.X != 40 {
		t.Errorf("positions = %d and %d, want 41 and 40", sa.X, sb.X)
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), config.PacingConfig{}, "tester")

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatalf("view = %d, want scoreboard", m.view)
	}

	m = updateSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Errorf("view = %d, want menu after back", m.view)
	}
	if m.menu.WantsScoreboard() {
		t.Error("menu should be fresh after returning")
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := NewSessionModel(nil, core.DefaultConfig(), config.PacingConfig{}, "tester")
	m = updateSession(m, runeMsg('q'))

	if !m.quitting || m.View() != "" {
		t.Error("q in the menu should end the session")
	}
}
