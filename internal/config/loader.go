package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadLinkup loads the game configuration.
// Search order: customPath -> ~/.linkup/configs/linkup.yaml -> ./configs/linkup.yaml -> embedded default
func LoadLinkup(customPath string) (LinkupConfig, error) {
	var cfg LinkupConfig

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("linkup.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/linkup.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(GetDefaultYAML("linkup"), &cfg); err != nil {
		return DefaultLinkupConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".linkup", "configs", filename)
}

// ApplyLinkupPreset modifies the config based on a difficulty preset.
// Easy narrows tile variety and stretches the clock; hard does the
// opposite. Fixed keeps the board as configured but disables the timer.
func ApplyLinkupPreset(cfg *LinkupConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Types = 3
		cfg.Scoring.TimeLimitSeconds = 300
	case DifficultyNormal:
		cfg.Board.Types = 5
		cfg.Scoring.TimeLimitSeconds = 180
	case DifficultyHard:
		cfg.Board.Types = 5
		cfg.Scoring.TimeLimitSeconds = 90
	case DifficultyFixed:
		cfg.Scoring.TimeLimitSeconds = 0
	}
}
