// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package logging provides centralized zerolog-based structured logging for WishWise.
//
// Logs are diagnostics and go to stderr by default, so they never mix with
// the recommendation report written to stdout.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "console",
//	})
//
//	logging.Info().Int("users", m.Users()).Msg("ratings loaded")
//	logging.Error().Err(err).Msg("run failed")
//
//	// Context-aware logging in HTTP handlers
//	logging.Ctx(r.Context()).Info().Msg("predictions served")
//
// # Configuration
//
// The level and format are set from the application configuration
// (logging.level, logging.format) and may be overridden with LOG_LEVEL and
// LOG_FORMAT.
//
// # Suture Integration
//
// The supervisor tree logs through log/slog. NewSlogLogger returns an
// slog.Logger backed by the global zerolog logger:
//
//	handler := &sutureslog.Handler{Logger: logging.NewSlogLogger()}
package logging
