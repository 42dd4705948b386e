// Package config centralises configuration parsing for the signup service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration values for the signup service.
type Config struct {
	HTTPAddress  string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"web/static"`
	SeedPath     string        `env:"SEED_PATH"` // Optional JSON file overriding the built-in seed catalog.
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`
}

// Load reads environment variables into Config, applying sensible
// defaults for local dev.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
