package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	_ "github.com/vovakirdan/flap/internal/games/flap"
)

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestSessionUnknownGame(t *testing.T) {
	if _, err := NewSessionModel("no-such-game", testConfig(), Services{}); err == nil {
		t.Error("expected an error for an unregistered game")
	}
}

func TestSessionMenuToScoreboardAndBack(t *testing.T) {
	m, err := NewSessionModel("flap", testConfig(), Services{Store: openStore(t)})
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScores {
		t.Fatalf("tab should open the scoreboard, screen = %d", m.screen)
	}

	m, _ = sessionUpdate(t, m, runeKey('b'))
	if m.screen != screenMenu || m.quitting {
		t.Fatal("back from the scoreboard should return to the menu")
	}

	m, cmd := sessionUpdate(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q on the menu should quit the session")
	}
}

func TestSessionPlayPauseAndBack(t *testing.T) {
	m, err := NewSessionModel("flap", testConfig(), Services{})
	if err != nil {
		t.Fatalf("NewSessionModel() failed: %v", err)
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenGame || cmd == nil {
		t.Fatal("enter on Play should start the game and its tick loop")
	}

	m, _ = sessionUpdate(t, m, runeKey('p'))
	m, _ = sessionUpdate(t, m, TickMsg{Model: m.gameModel.id, Time: base})
	if !m.gameModel.State().Paused {
		t.Fatal("game should be paused")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu || m.quitting {
		t.Error("back while paused should return to the menu without quitting")
	}

	// A late tick from the abandoned game is ignored by the menu.
	m, cmd = sessionUpdate(t, m, TickMsg{Model: 1, Time: base})
	if cmd != nil || m.screen != screenMenu {
		t.Error("stale tick should be ignored")
	}
}
