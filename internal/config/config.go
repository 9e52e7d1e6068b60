// Package config loads server settings from THRYFT_* environment variables
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "THRYFT_"

type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	DBPath   string `env:"DB" envDefault:"thryft.db"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// BaseURL is the public address used in share links. Empty means the
	// detected LAN address.
	BaseURL      string `env:"BASE_URL"`
	RoundSeconds int    `env:"ROUND_SECONDS" envDefault:"30"`
	TotalRounds  int    `env:"TOTAL_ROUNDS" envDefault:"5"`
	NoKeyboard   bool   `env:"NO_KEYBOARD"`
}

// Load reads the process environment
func Load() (*Config, error) {
	return parse(env.Options{Prefix: envPrefix})
}

// LoadFrom reads settings from environ instead of the process environment
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: envPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges that the environment parser cannot
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if c.RoundSeconds < 1 {
		return fmt.Errorf("round seconds must be positive, got %d", c.RoundSeconds)
	}
	if c.TotalRounds < 1 {
		return fmt.Errorf("total rounds must be positive, got %d", c.TotalRounds)
	}
	return nil
}

// Addr is the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
