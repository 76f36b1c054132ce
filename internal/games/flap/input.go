package flap

import (
	"time"

	"github.com/vovakirdan/flap/internal/core"
)

// applyInput turns the held keys into flyer velocity changes.
// Keys are visited in press order, so with left and right both held the
// later press wins.
func applyInput(s *State, now time.Time) {
	phys := s.cfg.Physics

	for _, key := range s.Keys {
		switch key {
		case core.ActionJump:
			if s.LastJump.Ready(now, phys.JumpCooldown()) {
				s.LastJump.Record(now)
				s.Flyer.VY = phys.JumpVelocity
			}
		case core.ActionLeft:
			s.Flyer.VX = -phys.MoveVelocity
		case core.ActionRight:
			s.Flyer.VX = phys.MoveVelocity
		}
	}
}

// applyDrag decays horizontal velocity toward zero and pulls the flyer down.
// The result moves the flyer on the next frame.
func applyDrag(s *State, elapsed float64) {
	phys := s.cfg.Physics
	decay := phys.Deceleration * elapsed

	switch {
	case s.Flyer.VX > 0:
		s.Flyer.VX = max(s.Flyer.VX-decay, 0)
	case s.Flyer.VX < 0:
		s.Flyer.VX = min(s.Flyer.VX+decay, 0)
	}

	s.Flyer.VY = max(s.Flyer.VY+phys.Gravity*elapsed, phys.TerminalVelocity)
}
