// Package flap implements a game where the player flies a small craft that
// must dodge rocks falling through a bounded playfield while catching coins.
//
// The playfield spans [-1, 1] on both axes with y growing upward. Tick is
// the simulation step; Game adapts it to the platform's registry.Game.
package flap

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
	"github.com/vovakirdan/flap/internal/registry"
)

// GameID is the registry and score-storage identifier.
const GameID = "flap"

var (
	gameConfig   = config.DefaultFlapConfig()
	gameConfigMu sync.RWMutex
)

// SetConfig sets the configuration used by games created after the call.
func SetConfig(cfg config.FlapConfig) {
	gameConfigMu.Lock()
	defer gameConfigMu.Unlock()
	gameConfig = cfg
}

func currentConfig() config.FlapConfig {
	gameConfigMu.RLock()
	defer gameConfigMu.RUnlock()
	return gameConfig
}

// Game runs rounds of flap for a driver.
type Game struct {
	state  *State
	paused bool
	rounds int // Rounds started since New
	config core.RuntimeConfig
}

// New creates a new flap game instance. Call Reset before Step.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flap"
}

// Reset discards the current round and starts a new one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg
	g.paused = false
	g.rounds++

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.state = NewState(currentConfig(), rand.New(rand.NewSource(seed)))
}

// Step advances the round by one frame unless it is paused or over.
func (g *Game) Step(held core.HeldKeys, in core.InputFrame, now time.Time, elapsed float64) core.StepResult {
	if g.state == nil || g.state.Dead {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.state.Keys = g.state.Keys[:0]
	for _, k := range held {
		if k.IsMovement() {
			g.state.Keys = append(g.state.Keys, k)
		}
	}

	Tick(g.state, now, elapsed)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.state.Score,
		GameOver: g.state.Dead,
		Paused:   g.paused,
	}
}

// Snapshot returns the live simulation state. Callers must not modify it.
func (g *Game) Snapshot() *State {
	return g.state
}

// Rounds returns how many rounds have been started.
func (g *Game) Rounds() int {
	return g.rounds
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
