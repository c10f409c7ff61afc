// Package config provides YAML-based game configuration loading and
// difficulty presets for the platform.
package config

import "fmt"

// LinkupConfig contains all configuration for the tile matching game.
type LinkupConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Rules   RulesConfig   `yaml:"rules"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines board dimensions and tile variety.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Types int `yaml:"types"` // Number of distinct tile types in play (1-5)
}

// RulesConfig defines path matching rules.
type RulesConfig struct {
	MaxBends    int  `yaml:"max_bends"`    // Maximum turns a connecting path may take
	OuterBorder bool `yaml:"outer_border"` // Whether paths may route around the board edge
}

// ScoringConfig defines scoring and the timed-mode countdown.
type ScoringConfig struct {
	PairPoints       int `yaml:"pair_points"`        // Points per eliminated pair
	ClearBonus       int `yaml:"clear_bonus"`        // Bonus for clearing the whole board
	TimeLimitSeconds int `yaml:"time_limit_seconds"` // Countdown for timed mode; 0 disables
}

// MaxTileTypes is the number of distinct tile kinds the game can draw.
const MaxTileTypes = 5

// Validate checks the configuration for values the game cannot run with.
func (c LinkupConfig) Validate() error {
	if c.Board.Rows < 2 || c.Board.Cols < 2 {
		return fmt.Errorf("config: board must be at least 2x2, got %dx%d", c.Board.Rows, c.Board.Cols)
	}
	if c.Board.Types < 1 || c.Board.Types > MaxTileTypes {
		return fmt.Errorf("config: tile types must be 1-%d, got %d", MaxTileTypes, c.Board.Types)
	}
	if c.Rules.MaxBends < 0 {
		return fmt.Errorf("config: max_bends must not be negative, got %d", c.Rules.MaxBends)
	}
	if c.Scoring.PairPoints < 0 || c.Scoring.ClearBonus < 0 {
		return fmt.Errorf("config: scoring values must not be negative")
	}
	if c.Scoring.TimeLimitSeconds < 0 {
		return fmt.Errorf("config: time_limit_seconds must not be negative, got %d", c.Scoring.TimeLimitSeconds)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset reports whether the preset name is recognized.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	default:
		return false
	}
}
