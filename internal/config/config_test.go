package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultFlapConfigIsValid(t *testing.T) {
	if err := DefaultFlapConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := ParseFlap(GetDefaultYAML("flap"))
	if err != nil {
		t.Fatalf("ParseFlap(embedded) failed: %v", err)
	}
	if cfg != DefaultFlapConfig() {
		t.Errorf("embedded YAML diverges from DefaultFlapConfig:\n got %+v\nwant %+v", cfg, DefaultFlapConfig())
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestDurations(t *testing.T) {
	cfg := DefaultFlapConfig()

	if cfg.Physics.JumpCooldown() != 250*time.Millisecond {
		t.Errorf("JumpCooldown() = %v, expected 250ms", cfg.Physics.JumpCooldown())
	}
	if cfg.Rocks.Cooldown() != time.Second {
		t.Errorf("Rocks.Cooldown() = %v, expected 1s", cfg.Rocks.Cooldown())
	}
	if cfg.Coins.Cooldown() != 3*time.Second {
		t.Errorf("Coins.Cooldown() = %v, expected 3s", cfg.Coins.Cooldown())
	}
	if cfg.Input.HoldDuration() != 150*time.Millisecond {
		t.Errorf("HoldDuration() = %v, expected 150ms", cfg.Input.HoldDuration())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*FlapConfig)
		wantErr string
	}{
		{
			name:    "negative flyer size",
			mutate:  func(c *FlapConfig) { c.Flyer.Size = -0.1 },
			wantErr: "flyer.size",
		},
		{
			name:    "despawn inside spawn distance",
			mutate:  func(c *FlapConfig) { c.Playfield.DespawnDistance = 1.5 },
			wantErr: "rocks.spawn_distance",
		},
		{
			name:    "inverted size range",
			mutate:  func(c *FlapConfig) { c.Coins.MinSize, c.Coins.MaxSize = 0.2, 0.1 },
			wantErr: "coins: need 0 <= min_size <= max_size",
		},
		{
			name:    "inverted velocity range",
			mutate:  func(c *FlapConfig) { c.Rocks.MinVelocity, c.Rocks.MaxVelocity = 1, 0.5 },
			wantErr: "rocks: need 0 <= min_velocity",
		},
		{
			name:    "bounce amplifies",
			mutate:  func(c *FlapConfig) { c.Playfield.BounceCoefficient = -1.5 },
			wantErr: "bounce_coefficient",
		},
		{
			name:    "positive terminal velocity",
			mutate:  func(c *FlapConfig) { c.Physics.TerminalVelocity = 0.5 },
			wantErr: "terminal_velocity",
		},
		{
			name:    "oversized rocks",
			mutate:  func(c *FlapConfig) { c.Rocks.MaxSize = 1.0 },
			wantErr: "rocks.max_size",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFlapConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected it to mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryViolation(t *testing.T) {
	cfg := DefaultFlapConfig()
	cfg.Flyer.Size = -1
	cfg.Input.HoldMS = -5

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() should fail")
	}
	if !strings.Contains(err.Error(), "flyer.size") || !strings.Contains(err.Error(), "input.hold_ms") {
		t.Errorf("Validate() should report both violations, got %q", err)
	}
}

func TestLoadFlapCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flap.yaml")

	yml := "physics:\n  gravity: -2.0\nrocks:\n  cooldown_ms: 500\n"
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFlap(path)
	if err != nil {
		t.Fatalf("LoadFlap() failed: %v", err)
	}

	if cfg.Physics.Gravity != -2.0 {
		t.Errorf("Gravity = %g, expected -2.0", cfg.Physics.Gravity)
	}
	if cfg.Rocks.CooldownMS != 500 {
		t.Errorf("Rocks.CooldownMS = %d, expected 500", cfg.Rocks.CooldownMS)
	}
	// Unset keys keep defaults
	if cfg.Physics.JumpVelocity != 0.6 {
		t.Errorf("JumpVelocity = %g, expected default 0.6", cfg.Physics.JumpVelocity)
	}
}

func TestLoadFlapErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFlap(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadFlap() should fail for a missing custom file")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlap(bad); err == nil {
		t.Error("LoadFlap() should fail for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("playfield:\n  despawn_distance: 1.0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFlap(invalid); err == nil {
		t.Error("LoadFlap() should reject an invalid configuration")
	}
}
