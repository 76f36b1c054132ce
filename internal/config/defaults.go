package config

import (
	_ "embed"
)

//go:embed defaults/flap.yaml
var defaultFlapYAML []byte

// DefaultFlapConfig returns the default flap configuration.
func DefaultFlapConfig() FlapConfig {
	return FlapConfig{
		Physics: FlapPhysics{
			JumpVelocity:     0.6,
			MoveVelocity:     0.4,
			Gravity:          -0.9,
			Deceleration:     0.6,
			TerminalVelocity: -0.6,
			JumpCooldownMS:   250,
		},
		Flyer: FlyerConfig{
			Size: 0.05,
		},
		Rocks: SpawnConfig{
			CooldownMS:    1000,
			MinVelocity:   0.25,
			MaxVelocity:   0.5,
			MinSize:       0.05,
			MaxSize:       0.15,
			SpawnDistance: 1.5,
		},
		Coins: SpawnConfig{
			CooldownMS:    3000,
			MinVelocity:   0.75,
			MaxVelocity:   1.0,
			MinSize:       0.05,
			MaxSize:       0.1,
			SpawnDistance: 1.5,
		},
		Playfield: Playfield{
			BounceCoefficient: -0.75,
			DespawnDistance:   2.0,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flap":
		return defaultFlapYAML
	default:
		return nil
	}
}
