package flap

// Integrate advances the position by velocity over elapsed seconds.
func (o *PhysObj) Integrate(elapsed float64) {
	o.X += o.VX * elapsed
	o.Y += o.VY * elapsed
}

// integrateAll moves the flyer and every spawned entity.
func integrateAll(s *State, elapsed float64) {
	s.Flyer.Integrate(elapsed)
	for i := range s.Rocks {
		s.Rocks[i].Integrate(elapsed)
	}
	for i := range s.Coins {
		s.Coins[i].Integrate(elapsed)
	}
}
