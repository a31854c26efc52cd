// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package main is the wishwise command.
//
// WishWise reads a user x item ratings matrix, predicts a score for every
// unrated cell from cosine-similar users, and reports each user's top picks
// plus an overall ranking.
//
// # Modes
//
//	wishwise [report] [flags]   print the report and exit (default)
//	wishwise serve [flags]      serve the HTTP API until SIGINT/SIGTERM
//
// # Configuration
//
// Settings are layered, highest priority last:
//   - Built-in defaults
//   - Config file (-config, CONFIG_PATH, or ./config.yaml)
//   - Environment variables (WISHWISE_INPUT, PER_USER_N, LOG_LEVEL, ...)
//   - Command-line flags
//
// # Example Usage
//
//	wishwise -input ratings.csv
//	wishwise -input ratings.csv -format json -output report.json
//	WISHWISE_SOURCE=duckdb WISHWISE_INPUT=ratings.duckdb wishwise serve -port 8080
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/wishwise/internal/config"
	"github.com/tomtom215/wishwise/internal/logging"
	"github.com/tomtom215/wishwise/internal/metrics"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if opts.showVersion {
		fmt.Println("wishwise", version)
		return
	}

	if opts.configPath != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, opts.configPath); err != nil {
			logging.Fatal().Err(err).Msg("Failed to set config path")
		}
	}

	cfg, err := config.LoadWithKoanf(opts.overrides)
	if err != nil {
		// Config not yet available, so the default logger reports this.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging.ToLoggingConfig())
	metrics.SetAppInfo(version)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().
		Str("mode", opts.mode).
		Str("source", cfg.Input.Source).
		Str("input", cfg.Input.Path).
		Msg("Starting WishWise")

	switch opts.mode {
	case modeServe:
		err = runServe(ctx, cfg)
	default:
		err = runReport(ctx, cfg, os.Stdout)
	}
	if err != nil {
		stop()
		logging.Fatal().Err(err).Str("mode", opts.mode).Msg("WishWise failed")
	}
}
