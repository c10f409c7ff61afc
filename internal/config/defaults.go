package config

import (
	_ "embed"
)

//go:embed defaults/linkup.yaml
var defaultLinkupYAML []byte

// DefaultLinkupConfig returns the default game configuration:
// the reference 7x9 board with all five tile types.
func DefaultLinkupConfig() LinkupConfig {
	return LinkupConfig{
		Board: BoardConfig{
			Rows:  7,
			Cols:  9,
			Types: 5,
		},
		Rules: RulesConfig{
			MaxBends:    2,
			OuterBorder: true,
		},
		Scoring: ScoringConfig{
			PairPoints:       10,
			ClearBonus:       100,
			TimeLimitSeconds: 180,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "linkup", "linkup_timed":
		return defaultLinkupYAML
	default:
		return nil
	}
}
