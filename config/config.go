package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"rpsb/meta"
)

// Config is read from the environment (and an optional .env file) at startup.
// Command line flags in main override it.
type Config struct {
	LogLevel   string `env:"RPSB_LOG_LEVEL"   envDefault:"warn"`
	Player     string `env:"RPSB_PLAYER"`
	Difficulty string `env:"RPSB_DIFFICULTY"`
	Seed       uint64 `env:"RPSB_SEED"` // 0 draws a fresh seed
	Matches    int    `env:"RPSB_MATCHES"     envDefault:"30"`
	ResultsDir string `env:"RPSB_RESULTS_DIR" envDefault:"experiments"`
}

// Load reads the .env file if present, then parses the environment.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Matches <= 0 {
		cfg.Matches = meta.NUM_MATCHES
	}
	return cfg, nil
}

// Level returns the zerolog level, warn when unset or unknown.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil || c.LogLevel == "" {
		return zerolog.WarnLevel
	}
	return lvl
}
