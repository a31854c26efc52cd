// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package config

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/tomtom215/wishwise/internal/logging"
	"github.com/tomtom215/wishwise/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file, environment variables and command line overrides.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//  4. Overrides: Values set explicitly by the caller (CLI flags)
//
// Config is immutable after LoadWithKoanf returns and is safe for concurrent
// read access.
type Config struct {
	Input     InputConfig     `koanf:"input"`
	Recommend RecommendConfig `koanf:"recommend"`
	Output    OutputConfig    `koanf:"output"`
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// Input source kinds.
const (
	SourceCSV    = "csv"
	SourceDuckDB = "duckdb"
)

// InputConfig selects where the ratings matrix is read from.
type InputConfig struct {
	// Source is the matrix source: csv or duckdb.
	// Default: csv
	Source string `koanf:"source" validate:"oneof=csv duckdb"`

	// Path is the CSV file or DuckDB database file.
	// Default: ratings.csv
	Path string `koanf:"path" validate:"required"`

	// Delimiter separates CSV fields. Only used by the csv source.
	// Default: ","
	Delimiter string `koanf:"delimiter" validate:"csvdelim"`

	// Table holds long-format ratings. Only used by the duckdb source.
	// Default: ratings
	Table string `koanf:"table" validate:"sqlident"`

	// MaxCells bounds users*items for the duckdb source, whose dimensions
	// come from the largest indices in the table.
	// Default: 10000000
	MaxCells int `koanf:"max_cells" validate:"gte=1,lte=1000000000"`
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c InputConfig) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// PerUserN is the number of top recommendations shown per user.
	PerUserN int `koanf:"per_user_n" validate:"gte=0"`

	// OverallN is the number of items in the overall ranking.
	OverallN int `koanf:"overall_n" validate:"gte=0"`

	// MaxN caps n for API requests.
	MaxN int `koanf:"max_n" validate:"gte=1,lte=10000"`

	// Workers is the number of users predicted concurrently. 1 is sequential.
	Workers int `koanf:"workers" validate:"gte=1,lte=1024"`

	// RunTimeout bounds a full run. Zero disables it.
	RunTimeout time.Duration `koanf:"run_timeout"`
}

// Output formats for report mode.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// OutputConfig controls report mode output.
type OutputConfig struct {
	// Format is text (console report) or json.
	Format string `koanf:"format" validate:"oneof=text json"`

	// Path is the report destination. Empty writes to stdout.
	Path string `koanf:"path"`
}

// ServerConfig holds HTTP server settings for serve mode.
type ServerConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"gte=1,lte=65535"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"gte=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	// PredictionCacheSize is how many users' predictions the API memoizes.
	// Zero disables the cache.
	PredictionCacheSize int `koanf:"prediction_cache_size" validate:"gte=0"`
}

// Addr returns the listen address.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level" validate:"oneof=trace debug info warn error"`

	// Format is the output format: json or console.
	// Default: console
	Format string `koanf:"format" validate:"oneof=json console"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// ToLoggingConfig converts to the logging package configuration.
func (c LoggingConfig) ToLoggingConfig() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = c.Level
	cfg.Format = c.Format
	cfg.Caller = c.Caller
	return cfg
}

// ToRecommendConfig converts to the engine configuration.
func (c *Config) ToRecommendConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()
	cfg.Limits.PerUserN = c.Recommend.PerUserN
	cfg.Limits.OverallN = c.Recommend.OverallN
	cfg.Limits.MaxN = c.Recommend.MaxN
	cfg.Limits.RunTimeout = c.Recommend.RunTimeout
	cfg.Parallel.Workers = c.Recommend.Workers
	return cfg
}
