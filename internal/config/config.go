package config

import (
	"fmt"

	"appraisal/internal/logger"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Env  string `env:"ENV" envDefault:"development"`
	Port string `env:"PORT" envDefault:"8080"`

	// Valuation
	AssumptionsFile  string `env:"ASSUMPTIONS_FILE"`
	BatchConcurrency int    `env:"BATCH_CONCURRENCY" envDefault:"4"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	LoadDotEnv()

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.BatchConcurrency < 1 {
		return nil, fmt.Errorf("BATCH_CONCURRENCY must be at least 1, got %d", cfg.BatchConcurrency)
	}

	return cfg, nil
}

// LoadDotEnv loads a .env file into the environment when one exists.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		logger.Get().Debug(".env file not found, using process environment")
	}
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
