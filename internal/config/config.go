// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the explicit configuration passed into the store, renderer
// and server at construction. Precedence: environment variables override
// the defaults below; an optional .env file (loaded by the CLI before
// parsing) overrides nothing already set in the environment.
type Config struct {
	// Server
	Port int `env:"PORT" envDefault:"8080"`

	// Storage
	DataDir string `env:"DATA_DIR" envDefault:"data"`

	// Rendering
	AssetsDir string `env:"ASSETS_DIR" envDefault:"assets"`
	FontDir   string `env:"FONT_DIR"`

	// Rendered-image cache
	RenderCacheTTL time.Duration `env:"RENDER_CACHE_TTL" envDefault:"1h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT value: %d", cfg.Port)
	}
	return cfg, nil
}

// Addr is the listen address derived from Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
