package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken    string `env:"BOT_TOKEN,required"`
	DatabaseURL string `env:"DATABASE_URL,required"`

	// Admin
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Server
	Port int `env:"PORT" envDefault:"3000"`

	// Session staleness. Tunables, not correctness-critical: a stale game is
	// simply forgotten and the chat freed for a new one.
	StaleSessionAge   time.Duration `env:"STALE_SESSION_AGE" envDefault:"10m"`
	StaleSessionSweep time.Duration `env:"STALE_SESSION_SWEEP" envDefault:"1m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsAdmin(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
