package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultLinkupConfigIsValid(t *testing.T) {
	cfg := DefaultLinkupConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Board.Rows != 7 || cfg.Board.Cols != 9 {
		t.Errorf("default board should be 7x9, got %dx%d", cfg.Board.Rows, cfg.Board.Cols)
	}
	if cfg.Rules.MaxBends != 2 || !cfg.Rules.OuterBorder {
		t.Errorf("default rules should be 2 bends with outer border, got %+v", cfg.Rules)
	}
}

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg LinkupConfig
	if err := yaml.Unmarshal(defaultLinkupYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML should parse: %v", err)
	}
	if cfg != DefaultLinkupConfig() {
		t.Errorf("embedded default = %+v, hardcoded default = %+v", cfg, DefaultLinkupConfig())
	}
}

func TestGetDefaultYAML(t *testing.T) {
	for _, id := range []string{"linkup", "linkup_timed"} {
		var cfg LinkupConfig
		if err := yaml.Unmarshal(GetDefaultYAML(id), &cfg); err != nil {
			t.Errorf("default YAML for %q should parse: %v", id, err)
			continue
		}
		if cfg != DefaultLinkupConfig() {
			t.Errorf("default YAML for %q = %+v, expected %+v", id, cfg, DefaultLinkupConfig())
		}
	}
	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game ID should have no default YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LinkupConfig)
		ok     bool
	}{
		{"default", func(*LinkupConfig) {}, true},
		{"one row", func(c *LinkupConfig) { c.Board.Rows = 1 }, false},
		{"one col", func(c *LinkupConfig) { c.Board.Cols = 1 }, false},
		{"zero types", func(c *LinkupConfig) { c.Board.Types = 0 }, false},
		{"too many types", func(c *LinkupConfig) { c.Board.Types = MaxTileTypes + 1 }, false},
		{"negative bends", func(c *LinkupConfig) { c.Rules.MaxBends = -1 }, false},
		{"zero bends", func(c *LinkupConfig) { c.Rules.MaxBends = 0 }, true},
		{"negative pair points", func(c *LinkupConfig) { c.Scoring.PairPoints = -1 }, false},
		{"negative time limit", func(c *LinkupConfig) { c.Scoring.TimeLimitSeconds = -5 }, false},
		{"no time limit", func(c *LinkupConfig) { c.Scoring.TimeLimitSeconds = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultLinkupConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() = nil, expected error")
			}
		})
	}
}

func TestLoadLinkupCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := []byte("board:\n  rows: 4\n  cols: 6\n  types: 2\nrules:\n  max_bends: 1\n  outer_border: false\nscoring:\n  pair_points: 5\n  clear_bonus: 50\n  time_limit_seconds: 60\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := LoadLinkup(path)
	if err != nil {
		t.Fatalf("LoadLinkup() failed: %v", err)
	}
	if cfg.Board.Rows != 4 || cfg.Board.Cols != 6 || cfg.Board.Types != 2 {
		t.Errorf("board = %+v, expected 4x6 with 2 types", cfg.Board)
	}
	if cfg.Rules.MaxBends != 1 || cfg.Rules.OuterBorder {
		t.Errorf("rules = %+v, expected 1 bend without outer border", cfg.Rules)
	}
}

func TestLoadLinkupMissingCustomPath(t *testing.T) {
	if _, err := LoadLinkup(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}

func TestLoadLinkupInvalidCustomConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("board:\n  rows: 0\n  cols: 0\n  types: 0\n"), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	if _, err := LoadLinkup(path); err == nil {
		t.Error("expected validation error for unusable custom config")
	}
}

func TestApplyLinkupPreset(t *testing.T) {
	tests := []struct {
		preset    DifficultyPreset
		types     int
		timeLimit int
	}{
		{DifficultyEasy, 3, 300},
		{DifficultyNormal, 5, 180},
		{DifficultyHard, 5, 90},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultLinkupConfig()
			ApplyLinkupPreset(&cfg, tc.preset)
			if cfg.Board.Types != tc.types {
				t.Errorf("types = %d, expected %d", cfg.Board.Types, tc.types)
			}
			if cfg.Scoring.TimeLimitSeconds != tc.timeLimit {
				t.Errorf("time limit = %d, expected %d", cfg.Scoring.TimeLimitSeconds, tc.timeLimit)
			}
		})
	}

	t.Run("fixed", func(t *testing.T) {
		cfg := DefaultLinkupConfig()
		ApplyLinkupPreset(&cfg, DifficultyFixed)
		if cfg.Scoring.TimeLimitSeconds != 0 {
			t.Error("fixed preset should disable the timer")
		}
		if cfg.Board.Types != 5 {
			t.Error("fixed preset should not change tile variety")
		}
	})
}

func TestValidPreset(t *testing.T) {
	for _, p := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed} {
		if !ValidPreset(p) {
			t.Errorf("%q should be a valid preset", p)
		}
	}
	if ValidPreset("impossible") {
		t.Error("unknown preset should not validate")
	}
}
