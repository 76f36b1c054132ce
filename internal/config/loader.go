package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFlap loads flap configuration.
// Search order: customPath -> ~/.flap/configs/flap.yaml -> ./configs/flap.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadFlap(customPath string) (FlapConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFlapConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseFlap(data)
		if err != nil {
			return DefaultFlapConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("flap.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			cfg, err := ParseFlap(data)
			if err != nil {
				return DefaultFlapConfig(), fmt.Errorf("config %s: %w", userCfgPath, err)
			}
			return cfg, nil
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "flap.yaml")); err == nil {
		cfg, err := ParseFlap(data)
		if err != nil {
			return DefaultFlapConfig(), fmt.Errorf("config configs/flap.yaml: %w", err)
		}
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := ParseFlap(defaultFlapYAML)
	if err != nil {
		return DefaultFlapConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseFlap decodes YAML on top of the defaults and validates the result.
func ParseFlap(data []byte) (FlapConfig, error) {
	cfg := DefaultFlapConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid: %w", err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".flap", "configs", filename)
}
