package flap

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/flap/internal/config"
)

// Spawner creates entities of one kind with randomized size, column and speed.
type Spawner struct {
	cfg config.SpawnConfig
}

// NewSpawner creates a spawner for the given parameters.
func NewSpawner(cfg config.SpawnConfig) Spawner {
	return Spawner{cfg: cfg}
}

// Ready reports whether the cooldown since last has expired at now.
func (sp Spawner) Ready(last Cooldown, now time.Time) bool {
	return last.Ready(now, sp.cfg.Cooldown())
}

// Spawn creates an entity on the side given by direction (+1 above, -1 below),
// moving toward the playfield center. Its horizontal extent stays inside the
// playfield.
func (sp Spawner) Spawn(rng *rand.Rand, direction float64) PhysObj {
	size := randRange(rng, sp.cfg.MinSize, sp.cfg.MaxSize)

	x := rng.Float64() * (PlayfieldBound - size)
	if rng.Intn(2) == 0 {
		x = -x
	}

	obj := NewPhysObj(x, sp.cfg.SpawnDistance*direction, size)
	obj.VY = -direction * randRange(rng, sp.cfg.MinVelocity, sp.cfg.MaxVelocity)
	return obj
}

// spawnRocks adds a rock when its cooldown allows, alternating the side
// rocks come from on every spawn.
func spawnRocks(s *State, now time.Time) {
	if !s.rocks.Ready(s.LastRockSpawn, now) {
		return
	}
	s.LastRockSpawn.Record(now)
	s.Rocks = append(s.Rocks, s.rocks.Spawn(s.rng, s.RockFallDirection))
	s.RockFallDirection = -s.RockFallDirection
}

// spawnCoins adds a coin when its cooldown allows. Coins pick their side at
// random, independently of the rock alternation.
func spawnCoins(s *State, now time.Time) {
	if !s.coins.Ready(s.LastCoinSpawn, now) {
		return
	}
	s.LastCoinSpawn.Record(now)

	direction := 1.0
	if s.rng.Intn(2) == 0 {
		direction = -1.0
	}
	s.Coins = append(s.Coins, s.coins.Spawn(s.rng, direction))
}

// randRange returns a uniform value in [lo, hi).
func randRange(rng *rand.Rand, lo, hi float64) float64 {
	return rng.Float64()*(hi-lo) + lo
}
