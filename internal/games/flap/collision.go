package flap

// collideRocks marks the flyer dead on the first rock it touches.
func collideRocks(s *State) bool {
	for _, rock := range s.Rocks {
		if s.Flyer.Overlaps(rock) {
			s.Dead = true
			return true
		}
	}
	return false
}

// collectCoins consumes every coin touching the flyer, one point each,
// and returns how many were collected.
func collectCoins(s *State) int {
	collected := 0
	kept := s.Coins[:0]
	for _, coin := range s.Coins {
		if s.Flyer.Overlaps(coin) {
			collected++
			continue
		}
		kept = append(kept, coin)
	}
	s.Coins = kept
	s.Score += collected
	return collected
}
