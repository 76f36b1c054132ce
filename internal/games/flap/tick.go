package flap

import "time"

// Outcome tells the driver whether the round is still running after a tick.
type Outcome int

const (
	// Continue means the frame was fully processed and the flyer is alive.
	Continue Outcome = iota
	// Stopped means the flyer is dead; nothing after the rock check ran.
	Stopped
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Tick advances the state by one frame. now is the frame's clock reading and
// elapsed the seconds since the previous frame (never negative).
//
// Order: held keys set velocities, every entity moves, drag and gravity
// update the flyer velocity for the next frame, spawners fire, far entities
// are removed, the flyer is kept inside the walls, rocks are checked, then
// coins. A rock hit ends the frame before coins are looked at.
//
// Calling Tick on a dead state changes nothing and returns Stopped.
func Tick(s *State, now time.Time, elapsed float64) Outcome {
	if s.Dead {
		return Stopped
	}

	applyInput(s, now)
	integrateAll(s, elapsed)
	applyDrag(s, elapsed)

	spawnRocks(s, now)
	spawnCoins(s, now)

	s.Rocks = despawn(s.Rocks, s.cfg.Playfield.DespawnDistance)
	s.Coins = despawn(s.Coins, s.cfg.Playfield.DespawnDistance)

	resolveBounds(&s.Flyer, s.cfg.Playfield.BounceCoefficient)

	if collideRocks(s) {
		return Stopped
	}
	collectCoins(s)

	return Continue
}
