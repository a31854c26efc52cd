// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package recommend

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Limits contains ranking limits and timeouts.
	Limits LimitsConfig `json:"limits"`

	// Parallel controls how PredictAll distributes users.
	Parallel ParallelConfig `json:"parallel"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// PerUserN is the number of top recommendations kept per user.
	// Default: 3.
	PerUserN int `json:"per_user_n"`

	// OverallN is the number of items in the overall ranking.
	// Default: 5.
	OverallN int `json:"overall_n"`

	// MaxN is the largest N accepted from callers such as the HTTP API.
	// Default: 100.
	MaxN int `json:"max_n"`

	// RunTimeout bounds a full run over every user. Zero disables it.
	// Default: 0.
	RunTimeout time.Duration `json:"run_timeout"`
}

// ParallelConfig controls the worker pool used by PredictAll.
type ParallelConfig struct {
	// Workers is the number of users predicted concurrently.
	// 1 runs sequentially. Default: 1.
	Workers int `json:"workers"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Limits: LimitsConfig{
			PerUserN:   3,
			OverallN:   5,
			MaxN:       100,
			RunTimeout: 0,
		},
		Parallel: ParallelConfig{
			Workers: 1,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Limits.PerUserN < 0 {
		return fmt.Errorf("limits.per_user_n must be non-negative, got %d", c.Limits.PerUserN)
	}
	if c.Limits.OverallN < 0 {
		return fmt.Errorf("limits.overall_n must be non-negative, got %d", c.Limits.OverallN)
	}
	if c.Limits.MaxN < 1 {
		return fmt.Errorf("limits.max_n must be positive, got %d", c.Limits.MaxN)
	}
	if c.Limits.PerUserN > c.Limits.MaxN {
		return fmt.Errorf("limits.per_user_n (%d) must not exceed limits.max_n (%d)", c.Limits.PerUserN, c.Limits.MaxN)
	}
	if c.Limits.OverallN > c.Limits.MaxN {
		return fmt.Errorf("limits.overall_n (%d) must not exceed limits.max_n (%d)", c.Limits.OverallN, c.Limits.MaxN)
	}
	if c.Limits.RunTimeout < 0 {
		return fmt.Errorf("limits.run_timeout must be non-negative, got %v", c.Limits.RunTimeout)
	}
	if c.Parallel.Workers < 1 {
		return fmt.Errorf("parallel.workers must be positive, got %d", c.Parallel.Workers)
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - nested structs contain only value types
	return &Config{
		Limits:   c.Limits,
		Parallel: c.Parallel,
	}
}

// MarshalJSON implements custom JSON marshaling for duration fields.
func (c *Config) MarshalJSON() ([]byte, error) {
	type Alias Config
	return json.Marshal(&struct {
		*Alias
		Limits struct {
			PerUserN   int    `json:"per_user_n"`
			OverallN   int    `json:"overall_n"`
			MaxN       int    `json:"max_n"`
			RunTimeout string `json:"run_timeout"`
		} `json:"limits"`
	}{
		Alias: (*Alias)(c),
		Limits: struct {
			PerUserN   int    `json:"per_user_n"`
			OverallN   int    `json:"overall_n"`
			MaxN       int    `json:"max_n"`
			RunTimeout string `json:"run_timeout"`
		}{
			PerUserN:   c.Limits.PerUserN,
			OverallN:   c.Limits.OverallN,
			MaxN:       c.Limits.MaxN,
			RunTimeout: c.Limits.RunTimeout.String(),
		},
	})
}
