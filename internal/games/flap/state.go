package flap

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flap/internal/config"
	"github.com/vovakirdan/flap/internal/core"
)

// State is everything the simulation mutates. It is owned by one driver and
// only changed through Tick. Once Dead is set the state is finished; the
// driver replaces it with NewState to start another round.
type State struct {
	Flyer PhysObj
	Rocks []PhysObj // Contact is fatal
	Coins []PhysObj // Contact scores a point and consumes the coin

	Score int
	Dead  bool

	LastJump      Cooldown
	LastRockSpawn Cooldown
	LastCoinSpawn Cooldown

	// RockFallDirection is the sign of the side the next rock spawns on.
	// +1 spawns above the playfield falling down, -1 below rising up.
	RockFallDirection float64

	// Keys holds the actions currently held down, in press order.
	Keys core.HeldKeys

	cfg   config.FlapConfig
	rng   *rand.Rand
	rocks Spawner
	coins Spawner
}

// NewState creates a fresh round: flyer centered, nothing spawned yet.
// A nil rng is replaced by one seeded from the clock.
func NewState(cfg config.FlapConfig, rng *rand.Rand) *State {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &State{
		Flyer:             NewPhysObj(0, 0, cfg.Flyer.Size),
		Rocks:             make([]PhysObj, 0, 8),
		Coins:             make([]PhysObj, 0, 4),
		RockFallDirection: 1,
		cfg:               cfg,
		rng:               rng,
		rocks:             NewSpawner(cfg.Rocks),
		coins:             NewSpawner(cfg.Coins),
	}
}

// Config returns the parameters the state was built with.
func (s *State) Config() config.FlapConfig {
	return s.cfg
}
