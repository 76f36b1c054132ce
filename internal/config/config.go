// Package config provides YAML-based game configuration loading for flap.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlapConfig contains all configuration for the flap game.
type FlapConfig struct {
	Physics   FlapPhysics `yaml:"physics"`
	Flyer     FlyerConfig `yaml:"flyer"`
	Rocks     SpawnConfig `yaml:"rocks"`
	Coins     SpawnConfig `yaml:"coins"`
	Playfield Playfield   `yaml:"playfield"`
	Input     InputConfig `yaml:"input"`
}

// FlapPhysics defines the flyer's motion parameters.
// Velocities are in playfield units per second, accelerations per second squared.
type FlapPhysics struct {
	JumpVelocity     float64 `yaml:"jump_velocity"`     // Vertical velocity set by a jump
	MoveVelocity     float64 `yaml:"move_velocity"`     // Horizontal velocity set by left/right
	Gravity          float64 `yaml:"gravity"`           // Negative: pulls down
	Deceleration     float64 `yaml:"deceleration"`      // Horizontal decay rate toward zero
	TerminalVelocity float64 `yaml:"terminal_velocity"` // Most negative vertical velocity
	JumpCooldownMS   int     `yaml:"jump_cooldown_ms"`
}

// JumpCooldown returns the jump cooldown as a duration.
func (p FlapPhysics) JumpCooldown() time.Duration {
	return time.Duration(p.JumpCooldownMS) * time.Millisecond
}

// FlyerConfig defines the player-controlled entity.
type FlyerConfig struct {
	Size float64 `yaml:"size"` // Half extent of the square hitbox
}

// SpawnConfig defines one cooldown-gated spawner (rocks or coins).
type SpawnConfig struct {
	CooldownMS    int     `yaml:"cooldown_ms"`
	MinVelocity   float64 `yaml:"min_velocity"`
	MaxVelocity   float64 `yaml:"max_velocity"`
	MinSize       float64 `yaml:"min_size"`
	MaxSize       float64 `yaml:"max_size"`
	SpawnDistance float64 `yaml:"spawn_distance"` // Distance from center at spawn time
}

// Cooldown returns the spawn cooldown as a duration.
func (s SpawnConfig) Cooldown() time.Duration {
	return time.Duration(s.CooldownMS) * time.Millisecond
}

// Playfield defines boundary behavior.
type Playfield struct {
	BounceCoefficient float64 `yaml:"bounce_coefficient"` // Applied to vertical velocity at the floor
	DespawnDistance   float64 `yaml:"despawn_distance"`   // Entities beyond this |y| are removed
}

// InputConfig defines how terminal key presses become held keys.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key counts as held after its last press
}

// HoldDuration returns the key hold window as a duration.
func (i InputConfig) HoldDuration() time.Duration {
	return time.Duration(i.HoldMS) * time.Millisecond
}

// Validate checks the configuration and returns every violated constraint.
func (c FlapConfig) Validate() error {
	var errs []error

	if c.Flyer.Size < 0 || c.Flyer.Size >= 1 {
		errs = append(errs, fmt.Errorf("flyer.size must be in [0, 1), got %g", c.Flyer.Size))
	}
	if c.Physics.JumpCooldownMS < 0 {
		errs = append(errs, fmt.Errorf("physics.jump_cooldown_ms must not be negative, got %d", c.Physics.JumpCooldownMS))
	}
	if c.Physics.Deceleration < 0 {
		errs = append(errs, fmt.Errorf("physics.deceleration must not be negative, got %g", c.Physics.Deceleration))
	}
	if c.Physics.TerminalVelocity > 0 {
		errs = append(errs, fmt.Errorf("physics.terminal_velocity must not be positive, got %g", c.Physics.TerminalVelocity))
	}
	if c.Playfield.BounceCoefficient > 0 || c.Playfield.BounceCoefficient <= -1 {
		errs = append(errs, fmt.Errorf("playfield.bounce_coefficient must be in (-1, 0], got %g", c.Playfield.BounceCoefficient))
	}
	if c.Input.HoldMS < 0 {
		errs = append(errs, fmt.Errorf("input.hold_ms must not be negative, got %d", c.Input.HoldMS))
	}

	errs = append(errs, c.Rocks.validate("rocks", c.Playfield.DespawnDistance)...)
	errs = append(errs, c.Coins.validate("coins", c.Playfield.DespawnDistance)...)

	return errors.Join(errs...)
}

func (s SpawnConfig) validate(name string, despawnDistance float64) []error {
	var errs []error

	if s.CooldownMS < 0 {
		errs = append(errs, fmt.Errorf("%s.cooldown_ms must not be negative, got %d", name, s.CooldownMS))
	}
	if s.MinSize < 0 || s.MinSize > s.MaxSize {
		errs = append(errs, fmt.Errorf("%s: need 0 <= min_size <= max_size, got [%g, %g]", name, s.MinSize, s.MaxSize))
	}
	if s.MaxSize >= 1 {
		errs = append(errs, fmt.Errorf("%s.max_size must be below 1, got %g", name, s.MaxSize))
	}
	if s.MinVelocity < 0 || s.MinVelocity > s.MaxVelocity {
		errs = append(errs, fmt.Errorf("%s: need 0 <= min_velocity <= max_velocity, got [%g, %g]", name, s.MinVelocity, s.MaxVelocity))
	}
	if despawnDistance <= s.SpawnDistance {
		errs = append(errs, fmt.Errorf("%s.spawn_distance %g must be below playfield.despawn_distance %g", name, s.SpawnDistance, despawnDistance))
	}

	return errs
}
