// Copyright (c) 2026 Manara. All rights reserved.

// Package config maps environment variables onto the one immutable Config
// struct the rest of the server receives by injection. Parsing happens once
// at startup via caarlos0/env, so a missing required variable stops the
// process before any connection is opened, and no package ever reads the
// environment directly.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration for the Manara API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8000"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// JWTSecret signs and verifies HS256 access tokens.
	JWTSecret string `env:"JWT_SECRET,required"`

	// ResetPIN is the shared PIN required by the password-reset endpoint.
	ResetPIN string `env:"RESET_PIN,required"`

	// MaxUploadBytes caps the size of a single uploaded image file.
	// Zero means the compiled-in default applies.
	MaxUploadBytes int64 `env:"MAX_UPLOAD_BYTES" envDefault:"0"`

	// ExtraOrigins is a comma-separated allowlist added to the production
	// CORS origins.
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// Load parses the environment into a [Config], failing on any missing
// required variable.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
