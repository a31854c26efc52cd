// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/wishwise/internal/validation"
)

// Rate limit constants
const (
	MinRateLimitWindow = time.Second
	MaxRateLimitWindow = time.Hour
)

// Validate checks struct tags first, then the cross-field rules tags cannot
// express.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateServer()
}

// validateRecommend validates limits that depend on each other
func (c *Config) validateRecommend() error {
	if c.Recommend.PerUserN > c.Recommend.MaxN {
		return fmt.Errorf("PER_USER_N (%d) must not exceed MAX_N (%d)", c.Recommend.PerUserN, c.Recommend.MaxN)
	}
	if c.Recommend.OverallN > c.Recommend.MaxN {
		return fmt.Errorf("OVERALL_N (%d) must not exceed MAX_N (%d)", c.Recommend.OverallN, c.Recommend.MaxN)
	}
	if c.Recommend.RunTimeout < 0 {
		return fmt.Errorf("RUN_TIMEOUT must be non-negative")
	}
	return nil
}

// validateServer validates server timeouts and rate limiting bounds
func (c *Config) validateServer() error {
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.RateLimitDisabled {
		return nil
	}
	if c.Server.RateLimitWindow < MinRateLimitWindow || c.Server.RateLimitWindow > MaxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", MinRateLimitWindow, MaxRateLimitWindow)
	}
	return nil
}

// HasWildcardCORS reports whether any CORS origin is "*".
func (c *Config) HasWildcardCORS() bool {
	for _, origin := range c.Server.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}
