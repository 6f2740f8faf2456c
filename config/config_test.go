package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNormalizeSwapsInvertedLengths(t *testing.T) {
	cfg := Default()
	cfg.MinStartingLength = 10
	cfg.MaxStartingLength = 4

	cfg.Normalize()
	if cfg.MinStartingLength != 4 || cfg.MaxStartingLength != 10 {
		t.Fatalf("lengths = [%d,%d], want swapped [4,10]", cfg.MinStartingLength, cfg.MaxStartingLength)
	}
}

func TestNormalizeClamps(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		check  func(Config) bool
	}{
		{"negative dodge", func(c *Config) { c.DodgeChance = -5 }, func(c Config) bool { return c.DodgeChance == 0 }},
		{"dodge over 100", func(c *Config) { c.DodgeChance = 150 }, func(c Config) bool { return c.DodgeChance == 100 }},
		{"zero speed", func(c *Config) { c.Speed = 0 }, func(c Config) bool { return c.Speed == 1 }},
		{"zero snakes", func(c *Config) { c.NumSnakes = 0 }, func(c Config) bool { return c.NumSnakes == 1 }},
		{"tiny cells", func(c *Config) { c.CellSize = 1 }, func(c Config) bool { return c.CellSize == 4 }},
		{"zero min length", func(c *Config) { c.MinStartingLength = 0 }, func(c Config) bool { return c.MinStartingLength == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			cfg.Normalize()
			if !tt.check(cfg) {
				t.Errorf("normalize left %+v", cfg)
			}
		})
	}
}

func TestDodgeProbability(t *testing.T) {
	cfg := Default()
	cfg.DodgeChance = 25
	if got := cfg.DodgeProbability(); got != 0.25 {
		t.Fatalf("DodgeProbability() = %v, want 0.25", got)
	}
	cfg.DodgeChance = 100
	if got := cfg.DodgeProbability(); got != 1.0 {
		t.Fatalf("DodgeProbability() = %v, want 1.0", got)
	}
}

func TestLoadWithoutFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Default()
	want.Normalize()
	if got := Load(); got != want {
		t.Fatalf("Load() = %+v, want defaults %+v", got, want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.NumSnakes = 12
	cfg.DodgeChance = 75
	cfg.ShowLeaderboard = false
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if got := Load(); got != cfg {
		t.Fatalf("round trip: got %+v, want %+v", got, cfg)
	}
}

func TestLoadIgnoresMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "RetroSnakeScreensaver", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Normalize()
	if got := Load(); got != want {
		t.Fatalf("Load() with garbage file = %+v, want defaults", got)
	}
}

func TestPartialFileKeepsDefaultsForMissingKeys(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "RetroSnakeScreensaver", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"num_snakes": 5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got := Load()
	if got.NumSnakes != 5 {
		t.Fatalf("NumSnakes = %d, want 5", got.NumSnakes)
	}
	if got.NumFood != Default().NumFood {
		t.Fatalf("NumFood = %d, want default %d", got.NumFood, Default().NumFood)
	}
}
