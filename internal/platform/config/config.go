// Copyright (c) 2026 Our Philly. All rights reserved.

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis) via constructors.
  - Zero Hidden State: No global variables are used to store config.

This ensures the application is Twelve-Factor compliant by storing config in the env.
*/
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/ourphilly/ourphilly/pkg/query"
)

// # Configuration Schema

// Config holds all runtime configuration for the Our Philly API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Timezone is the IANA zone all day/weekend/month windows are computed in.
	Timezone string `env:"TIMEZONE" envDefault:"America/New_York"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis)
	RedisURL string `env:"REDIS_URL,required"`

	// Cryptographic keys for session and identity signing
	JWTPrivKeyPath string `env:"JWT_PRIVATE_KEY_PATH,required"`
	JWTPubKeyPath  string `env:"JWT_PUBLIC_KEY_PATH,required"`

	// Object Storage (Supabase-compatible public buckets)
	StorageBaseURL string `env:"STORAGE_BASE_URL,required"`
	StorageBucket  string `env:"STORAGE_BUCKET" envDefault:"big-board"`

	// Sports schedule API (read-only, keyed by client id)
	SportsAPIBaseURL  string `env:"SPORTS_API_BASE_URL" envDefault:"https://api.seatgeek.com/2"`
	SportsAPIClientID string `env:"SPORTS_API_CLIENT_ID"`

	// Transactional email dispatch
	EmailAPIBaseURL string `env:"EMAIL_API_BASE_URL"`
	EmailAPIKey     string `env:"EMAIL_API_KEY"`
	EmailFrom       string `env:"EMAIL_FROM" envDefault:"digest@ourphilly.org"`

	// DigestSchedule is a cron expression for the weekly tag digest run.
	DigestSchedule string `env:"DIGEST_SCHEDULE" envDefault:"0 8 * * 3"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	return cfg, nil
}

// Location resolves the configured IANA timezone.
//
// Every date window in the aggregation path is computed in this zone, never
// in server-local time, so a UTC host still produces Philadelphia days.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// AllowedExtraOrigins returns EXTRA_ORIGINS parsed as a comma-separated list.
//
// These are honored by the CORS middleware in addition to ourphilly.org
// subdomains, for preview deployments on other hosts.
func (c *Config) AllowedExtraOrigins() []string {
	return query.StringSlice(c.ExtraOrigins)
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
