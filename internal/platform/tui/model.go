package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/registry"
	"github.com/vovakirdan/flap/internal/storage"
)

// DefaultHoldWindow is used when Services leaves HoldWindow unset.
const DefaultHoldWindow = 150 * time.Millisecond

// Services bundles what every screen of a player's session shares.
type Services struct {
	Store      *storage.Store // nil runs without persistence
	Logger     *log.Logger    // nil discards log output
	HoldWindow time.Duration  // How long a press keeps a key held
}

func (s Services) withDefaults() Services {
	if s.Logger == nil {
		s.Logger = log.New(io.Discard)
	}
	if s.HoldWindow <= 0 {
		s.HoldWindow = DefaultHoldWindow
	}
	return s
}

// GameModel is the Bubble Tea model that runs rounds of a game.
// It owns the game, feeds it held keys and the frame clock, saves the score
// once per finished round and restarts on request.
type GameModel struct {
	id         uint64
	game       registry.Game
	screen     *core.Screen
	services   Services
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HoldTracker
	inputFrame core.InputFrame
	clock      *frameClock
	stats      *FrameStats
	gameState  core.GameState
	roundStart time.Time
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, cfg core.RuntimeConfig, services Services) GameModel {
	services = services.withDefaults()

	return GameModel{
		id:         nextModelID.Add(1),
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		services:   services,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHoldTracker(services.HoldWindow),
		inputFrame: core.NewInputFrame(),
		clock:      &frameClock{},
		stats:      NewFrameStats(statsWindow),
	}
}

// Init starts the first round and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.services.Logger.Info("round started", "game", m.game.ID(), "seed", m.config.Seed)
	return tickCmd(m.config.TickRate, m.id)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		// The playfield is resolution independent, so the round keeps going.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Model != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action.IsMovement():
		m.held.Press(action, now)
	case action == core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
	case action == core.ActionPause, action == core.ActionRestart:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick runs one frame.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.roundStart.IsZero() {
		m.roundStart = now
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart(now)
		return m, tickCmd(m.config.TickRate, m.id)
	}

	elapsed := m.clock.Advance(now)
	started := time.Now()
	result := m.game.Step(m.held.Held(now), m.inputFrame, now, elapsed)
	m.gameState = result.State

	if total, avg, ok := m.stats.Record(time.Since(started)); ok {
		m.services.Logger.Debug("frame stats", "total", total, "avg", avg, "score", m.gameState.Score)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.finishRound(now)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate, m.id)
}

// finishRound logs the death and stores a non-zero score.
func (m *GameModel) finishRound(now time.Time) {
	m.scoreSaved = true
	played := now.Sub(m.roundStart)
	score := m.gameState.Score
	m.services.Logger.Info("round over", "game", m.game.ID(), "score", score, "duration", played.Round(time.Millisecond))

	if score <= 0 || m.services.Store == nil {
		return
	}
	if _, err := m.services.Store.SaveScore(m.game.ID(), score, played); err != nil {
		m.services.Logger.Warn("could not save score", "error", err)
	}
}

// restart replaces the finished round with a fresh one.
func (m *GameModel) restart(now time.Time) {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.roundStart = now
	m.clock.Reset()
	m.held.Reset()
	m.inputFrame.Clear()
	m.services.Logger.Info("round restarted", "game", m.game.ID())
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last frame.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays the game in the current terminal until the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, services Services) error {
	p := tea.NewProgram(
		NewGameModel(game, cfg, services),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
