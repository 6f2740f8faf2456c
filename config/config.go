// Package config loads and saves the screensaver settings as a JSON file in
// the per-user config directory. Missing files, unknown keys and malformed
// values all degrade to defaults rather than failing.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config holds every user-tunable setting. Field names mirror the keys in
// config.json.
type Config struct {
	NumSnakes         int  `json:"num_snakes"`
	NumFood           int  `json:"num_food"`
	Speed             int  `json:"speed"`        // simulation ticks per second
	DodgeChance       int  `json:"dodge_chance"` // percent, 0-100
	MinStartingLength int  `json:"min_starting_length"`
	MaxStartingLength int  `json:"max_starting_length"`
	ShowLeaderboard   bool `json:"show_leaderboard"`
	CellSize          int  `json:"cell_size"` // pixels per grid cell
}

// Default returns the out-of-the-box settings.
func Default() Config {
	return Config{
		NumSnakes:         30,
		NumFood:           50,
		Speed:             12,
		DodgeChance:       100,
		MinStartingLength: 4,
		MaxStartingLength: 4,
		ShowLeaderboard:   true,
		CellSize:          20,
	}
}

// Normalize corrects malformed values in place instead of rejecting them:
// inverted length bounds are swapped, everything else is clamped to a sane
// range.
func (c *Config) Normalize() {
	if c.MinStartingLength > c.MaxStartingLength {
		c.MinStartingLength, c.MaxStartingLength = c.MaxStartingLength, c.MinStartingLength
	}
	if c.MinStartingLength < 1 {
		c.MinStartingLength = 1
	}
	if c.MaxStartingLength < 1 {
		c.MaxStartingLength = 1
	}
	if c.DodgeChance < 0 {
		c.DodgeChance = 0
	}
	if c.DodgeChance > 100 {
		c.DodgeChance = 100
	}
	if c.NumSnakes < 1 {
		c.NumSnakes = 1
	}
	if c.NumFood < 0 {
		c.NumFood = 0
	}
	if c.Speed < 1 {
		c.Speed = 1
	}
	if c.CellSize < 4 {
		c.CellSize = 4
	}
}

// DodgeProbability converts the stored percentage to the 0..1 probability
// the simulation works with.
func (c Config) DodgeProbability() float64 {
	return float64(c.DodgeChance) / 100
}

// Dir returns the directory holding the config and stats files, creating it
// if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, "RetroSnakeScreensaver")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}

// Path returns the config file location.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config file, falling back to defaults for anything missing
// or unreadable. The result is always normalized.
func Load() Config {
	cfg := Default()
	path, err := Path()
	if err == nil {
		if data, err := os.ReadFile(path); err == nil {
			// Decoding on top of the defaults keeps unset keys at their
			// default values.
			_ = json.Unmarshal(data, &cfg)
		}
	}
	cfg.Normalize()
	return cfg
}

// Save writes the config as indented JSON.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
