// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package config provides layered configuration loading for CityGuide.
//
// Configuration is resolved in three layers with clear precedence:
//
//  1. Defaults: built-in sensible defaults
//  2. Config file: optional YAML file (if one exists)
//  3. Environment variables: override any setting
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the CityGuide service.
type Config struct {
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Guide    GuideConfig    `koanf:"guide"`
	Logging  LoggingConfig  `koanf:"logging"`
	Import   ImportConfig   `koanf:"import"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// Rate limiting applied to the API route group.
	RateLimitRequests int           `koanf:"rate_limit_requests"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`

	// CORS origins. Empty by default: requires explicit configuration.
	CORSOrigins []string `koanf:"cors_origins"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the database file path, or ":memory:" for tests.
	Path string `koanf:"path"`

	// MaxMemory is DuckDB's memory limit (e.g. "1GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// GuideConfig holds the recommendation core's tunables.
type GuideConfig struct {
	// DefaultCity is the session city assigned to users who have not
	// picked one.
	DefaultCity string `koanf:"default_city"`

	// DefaultRadiusKm is the radius-scan default.
	DefaultRadiusKm float64 `koanf:"default_radius_km"`

	// SearchLimit caps text-search, category-browse, and radius-scan
	// results.
	SearchLimit int `koanf:"search_limit"`

	// InlineSearchLimit caps the inline-query search variant.
	InlineSearchLimit int `koanf:"inline_search_limit"`

	// PrefsCacheTTL bounds staleness of the in-process preference
	// cache. 0 disables caching.
	PrefsCacheTTL time.Duration `koanf:"prefs_cache_ttl"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// ImportConfig holds CSV bulk-import settings.
type ImportConfig struct {
	// MaxRows caps a single import run. 0 = unlimited.
	MaxRows int `koanf:"max_rows"`

	// MaxUploadBytes caps the accepted CSV upload size.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// defaultConfig returns a Config struct with all default values. These are
// applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:              "0.0.0.0",
			Port:              8080,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   10 * time.Second,
			RateLimitRequests: 100,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{},
		},
		Database: DatabaseConfig{
			Path:      "/data/cityguide.duckdb",
			MaxMemory: "1GB",
			Threads:   0,
		},
		Guide: GuideConfig{
			DefaultCity:       "Batumi",
			DefaultRadiusKm:   3.0,
			SearchLimit:       10,
			InlineSearchLimit: 20,
			PrefsCacheTTL:     30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Import: ImportConfig{
			MaxRows:        0,
			MaxUploadBytes: 8 << 20, // 8MB
		},
	}
}

// Validate checks the configuration for invalid combinations.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range [1,65535]", c.Server.Port)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Guide.DefaultCity == "" {
		return fmt.Errorf("guide.default_city must not be empty")
	}
	if c.Guide.DefaultRadiusKm <= 0 {
		return fmt.Errorf("guide.default_radius_km must be positive, got %f", c.Guide.DefaultRadiusKm)
	}
	if c.Guide.SearchLimit < 1 {
		return fmt.Errorf("guide.search_limit must be at least 1, got %d", c.Guide.SearchLimit)
	}
	if c.Guide.InlineSearchLimit < 1 {
		return fmt.Errorf("guide.inline_search_limit must be at least 1, got %d", c.Guide.InlineSearchLimit)
	}
	if c.Guide.PrefsCacheTTL < 0 {
		return fmt.Errorf("guide.prefs_cache_ttl must not be negative, got %s", c.Guide.PrefsCacheTTL)
	}
	if c.Server.RateLimitRequests < 1 {
		return fmt.Errorf("server.rate_limit_requests must be at least 1, got %d", c.Server.RateLimitRequests)
	}
	return nil
}
