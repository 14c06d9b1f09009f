package config

import (
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv(mapLookup(nil))
	if cfg != Default() {
		t.Errorf("FromEnv(empty) = %+v, want %+v", cfg, Default())
	}
	if cfg.HighScoreFile != "highscore.json" || cfg.CellSize != 30 {
		t.Errorf("defaults = %+v", cfg)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	cfg := FromEnv(mapLookup(map[string]string{
		EnvHighScoreFile: "scores/best.json",
		EnvStatsFile:     "",
		EnvCellSize:      "24",
		EnvLogFile:       "logs/snake.log",
		EnvSeed:          "1234",
	}))

	want := Config{
		HighScoreFile: "scores/best.json",
		StatsFile:     "",
		CellSize:      24,
		LogFile:       "logs/snake.log",
		Seed:          1234,
	}
	if cfg != want {
		t.Errorf("FromEnv = %+v, want %+v", cfg, want)
	}
}

func TestFromEnvInvalidNumbers(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"cell size not a number", map[string]string{EnvCellSize: "big"}},
		{"cell size zero", map[string]string{EnvCellSize: "0"}},
		{"cell size negative", map[string]string{EnvCellSize: "-4"}},
		{"seed negative", map[string]string{EnvSeed: "-1"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := FromEnv(mapLookup(tc.env))
			if cfg.CellSize != DefaultCellSize || cfg.Seed != 0 {
				t.Errorf("cfg = %+v, want defaults", cfg)
			}
		})
	}
}

func TestLoadReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.env")
	if err := os.WriteFile(path, []byte("SNAKE_CELL_SIZE=18\nSNAKE_HIGHSCORE_FILE=from-file.json\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// Register cleanup for the variable godotenv is about to set
	t.Setenv(EnvCellSize, "")
	os.Unsetenv(EnvCellSize)
	t.Setenv(EnvHighScoreFile, "from-env.json")

	cfg := Load(path)

	// Variables already set in the environment win over the file
	if cfg.HighScoreFile != "from-env.json" {
		t.Errorf("HighScoreFile = %q, want from-env.json", cfg.HighScoreFile)
	}
	if cfg.CellSize != 18 {
		t.Errorf("CellSize = %d, want 18", cfg.CellSize)
	}
}

func TestLoadMissingEnvFile(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "missing.env"))
	if cfg.CellSize <= 0 || cfg.HighScoreFile == "" {
		t.Errorf("Load with missing file = %+v", cfg)
	}
}
