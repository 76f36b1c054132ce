package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/games/flap"
	"github.com/vovakirdan/flap/internal/storage"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 60, ScreenH: 20, TickRate: 60, Seed: 7}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestGameModel(t *testing.T, store *storage.Store) (GameModel, *flap.Game) {
	t.Helper()
	g := flap.New()
	m := NewGameModel(g, testConfig(), Services{Store: store})
	m.Init()
	return m, g
}

func tick(t *testing.T, m GameModel, at time.Time) GameModel {
	t.Helper()
	next, cmd := m.Update(TickMsg{Model: m.id, Time: at})
	if cmd == nil {
		t.Fatal("tick should schedule the next tick")
	}
	return next.(GameModel)
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg, at time.Time) GameModel {
	t.Helper()
	next, _ := m.handleKey(msg, at)
	return next.(GameModel)
}

// killFlyer drops a rock onto the flyer so the next tick ends the round.
func killFlyer(g *flap.Game, score int) {
	s := g.Snapshot()
	s.Score = score
	s.Rocks = append(s.Rocks, flap.NewPhysObj(s.Flyer.X, s.Flyer.Y, 0.1))
}

func TestGameModelHeldJump(t *testing.T) {
	m, g := newTestGameModel(t, nil)

	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace}, base)
	m = tick(t, m, base)

	if vy := g.Snapshot().Flyer.VY; vy != 0.6 {
		t.Errorf("VY after held jump = %g, expected 0.6", vy)
	}
}

func TestGameModelHoldExpires(t *testing.T) {
	m, g := newTestGameModel(t, nil)

	m = press(t, m, runeKey('d'), base)
	m = tick(t, m, base)
	if g.Snapshot().Flyer.VX != 0.4 {
		t.Fatalf("VX = %g, expected 0.4 while right is held", g.Snapshot().Flyer.VX)
	}

	// Far past the hold window the key no longer pushes; drag takes over.
	m = tick(t, m, base.Add(100*time.Millisecond))
	m = tick(t, m, base.Add(400*time.Millisecond))
	m = tick(t, m, base.Add(700*time.Millisecond))
	if vx := g.Snapshot().Flyer.VX; vx >= 0.4 {
		t.Errorf("VX = %g, expected drag to slow the flyer after release", vx)
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, g := newTestGameModel(t, nil)

	next, cmd := m.Update(TickMsg{Model: m.id + 1000, Time: base})
	if cmd != nil {
		t.Error("a tick from another model must not schedule ticks")
	}
	m = next.(GameModel)

	if len(g.Snapshot().Rocks) != 0 {
		t.Error("a tick from another model must not step the game")
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	m, g := newTestGameModel(t, store)

	m = tick(t, m, base)
	killFlyer(g, 3)
	m = tick(t, m, base.Add(2*time.Second))
	if !m.State().GameOver {
		t.Fatal("round should be over")
	}

	for i := 1; i <= 5; i++ {
		m = tick(t, m, base.Add(2*time.Second+time.Duration(i)*16*time.Millisecond))
	}

	scores, err := store.AllScores(flap.GameID)
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 3 || scores[0].Duration != 2*time.Second {
		t.Errorf("saved %+v, expected score 3 over 2s", scores[0])
	}
}

func TestGameModelZeroScoreNotSaved(t *testing.T) {
	store := openStore(t)
	m, g := newTestGameModel(t, store)

	killFlyer(g, 0)
	m = tick(t, m, base)
	if !m.State().GameOver {
		t.Fatal("round should be over")
	}

	if high, _ := store.HighScore(flap.GameID); high != 0 {
		t.Errorf("zero score should not be stored, high = %d", high)
	}
	if scores, _ := store.AllScores(flap.GameID); len(scores) != 0 {
		t.Errorf("stored %d scores, expected none", len(scores))
	}
}

func TestGameModelRestart(t *testing.T) {
	store := openStore(t)
	m, g := newTestGameModel(t, store)

	// Restart is ignored while the round is running.
	m = press(t, m, runeKey('r'), base)
	m = tick(t, m, base)
	if g.Rounds() != 1 {
		t.Fatalf("restart during a round should be ignored, rounds = %d", g.Rounds())
	}

	killFlyer(g, 2)
	m = tick(t, m, base.Add(time.Second))
	m = press(t, m, runeKey('r'), base.Add(2*time.Second))
	m = tick(t, m, base.Add(2*time.Second))

	if g.Rounds() != 2 {
		t.Errorf("rounds = %d, expected 2 after restart", g.Rounds())
	}
	if m.State().GameOver || m.State().Score != 0 {
		t.Errorf("state after restart = %+v", m.State())
	}

	// A second death saves a second score.
	killFlyer(g, 5)
	m = tick(t, m, base.Add(3*time.Second))
	if scores, _ := store.AllScores(flap.GameID); len(scores) != 2 {
		t.Errorf("expected 2 saved scores, got %d", len(scores))
	}
}

func TestGameModelBackOnlyWhenStopped(t *testing.T) {
	m, g := newTestGameModel(t, nil)

	m = tick(t, m, base)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc}, base)
	if m.BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}

	killFlyer(g, 0)
	m = tick(t, m, base.Add(16*time.Millisecond))
	next, cmd := m.handleKey(tea.KeyMsg{Type: tea.KeyEsc}, base)
	m = next.(GameModel)
	if !m.BackToMenu() || cmd == nil {
		t.Error("back after game over should leave the game")
	}
}

func TestGameModelQuit(t *testing.T) {
	m, _ := newTestGameModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(GameModel)

	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelResizeKeepsRound(t *testing.T) {
	m, g := newTestGameModel(t, nil)
	m = tick(t, m, base)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(GameModel)

	if g.Rounds() != 1 {
		t.Error("resize must not restart the round")
	}
	if lines := strings.Count(m.View(), "\n") + 1; lines != 30 {
		t.Errorf("view has %d lines, expected 30", lines)
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	screen := core.NewScreen(20, 3)
	screen.DrawTextColored(1, 1, "Score: 12", core.ColorBrightWhite)
	screen.SetColored(15, 1, '@', core.ColorBrightCyan)

	out := RenderScreen(screen)

	if !strings.Contains(out, "Score: 12") || !strings.Contains(out, "@") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if lines := strings.Count(out, "\n") + 1; lines != 3 {
		t.Errorf("rendered %d lines, expected 3", lines)
	}
}
