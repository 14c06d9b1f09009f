// Package config reads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultHighScoreFile = "highscore.json"
	DefaultStatsFile     = "data/stats.json"
	DefaultCellSize      = 30
)

// Environment variable names
const (
	EnvHighScoreFile = "SNAKE_HIGHSCORE_FILE"
	EnvStatsFile     = "SNAKE_STATS_FILE"
	EnvCellSize      = "SNAKE_CELL_SIZE"
	EnvLogFile       = "SNAKE_LOG_FILE"
	EnvSeed          = "SNAKE_SEED"
)

type Config struct {
	HighScoreFile string
	StatsFile     string // empty disables the game history file
	CellSize      int
	LogFile       string // empty logs to stderr
	Seed          uint64 // 0 picks a time based seed
}

func Default() Config {
	return Config{
		HighScoreFile: DefaultHighScoreFile,
		StatsFile:     DefaultStatsFile,
		CellSize:      DefaultCellSize,
	}
}

// Load reads .env files (missing files are fine) and then the environment.
// Invalid values fall back to their defaults.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: could not load env file: %v", err)
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a lookup function such as os.LookupEnv
func FromEnv(lookup func(string) (string, bool)) Config {
	cfg := Default()

	if v, ok := lookup(EnvHighScoreFile); ok && v != "" {
		cfg.HighScoreFile = v
	}
	if v, ok := lookup(EnvStatsFile); ok {
		cfg.StatsFile = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}

	if v, ok := lookup(EnvCellSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size <= 0 {
			log.Printf("Warning: invalid %s %q, using %d", EnvCellSize, v, DefaultCellSize)
		} else {
			cfg.CellSize = size
		}
	}

	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			log.Printf("Warning: invalid %s %q, using a random seed", EnvSeed, v)
		} else {
			cfg.Seed = seed
		}
	}

	return cfg
}
