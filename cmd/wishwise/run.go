// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/tomtom215/wishwise/internal/api"
	"github.com/tomtom215/wishwise/internal/config"
	"github.com/tomtom215/wishwise/internal/logging"
	"github.com/tomtom215/wishwise/internal/metrics"
	"github.com/tomtom215/wishwise/internal/ratings"
	"github.com/tomtom215/wishwise/internal/recommend"
	"github.com/tomtom215/wishwise/internal/report"
	"github.com/tomtom215/wishwise/internal/supervisor"
	"github.com/tomtom215/wishwise/internal/supervisor/services"
)

// newSource picks the matrix source named by the input config.
func newSource(cfg config.InputConfig) ratings.Source {
	if cfg.Source == config.SourceDuckDB {
		return ratings.NewDuckDBSource(cfg.Path, cfg.Table, cfg.MaxCells)
	}
	return ratings.NewCSVSource(cfg.Path, cfg.DelimiterRune())
}

// classifyLoadError maps ratings errors onto metric labels.
func classifyLoadError(err error) string {
	var parseErr *ratings.ParseError
	var structErr *ratings.StructuralError
	switch {
	case errors.As(err, &parseErr):
		return metrics.ErrorTypeParse
	case errors.As(err, &structErr):
		return metrics.ErrorTypeStructural
	default:
		return metrics.ErrorTypeIO
	}
}

// loadMatrix reads the ratings matrix and records the load metrics.
func loadMatrix(ctx context.Context, src ratings.Source) (*ratings.Matrix, error) {
	start := time.Now()
	m, err := src.Load(ctx)

	var users, items int
	var density float64
	if err == nil {
		users, items, density = m.Users(), m.Items(), m.Density()
	}
	metrics.RecordMatrixLoad(src.Name(), users, items, density, time.Since(start), err, classifyLoadError)
	if err != nil {
		return nil, fmt.Errorf("load %s matrix: %w", src.Name(), err)
	}

	logging.Info().
		Str("source", src.Name()).
		Int("users", users).
		Int("items", items).
		Float64("density", density).
		Dur("duration", time.Since(start)).
		Msg("Ratings matrix loaded")
	return m, nil
}

// newEngine loads the matrix and builds an engine wired to the metrics.
func newEngine(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	m, err := loadMatrix(ctx, newSource(cfg.Input))
	if err != nil {
		return nil, err
	}

	engine, err := recommend.NewEngine(m, cfg.ToRecommendConfig(), logging.WithComponent("recommend"))
	if err != nil {
		return nil, fmt.Errorf("create engine: %w", err)
	}
	engine.SetObserver(metrics.NewRecommendObserver())
	return engine, nil
}

// runReport computes every recommendation and renders the report to the
// configured output, or to stdout when no path is set.
func runReport(ctx context.Context, cfg *config.Config, stdout io.Writer) (err error) {
	engine, err := newEngine(ctx, cfg)
	if err != nil {
		return err
	}

	result, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	w := stdout
	if cfg.Output.Path != "" {
		f, createErr := os.Create(cfg.Output.Path)
		if createErr != nil {
			return fmt.Errorf("create report file: %w", createErr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close report file: %w", cerr)
			}
		}()
		w = f
	}

	render := report.Text
	if cfg.Output.Format == config.FormatJSON {
		render = report.JSON
	}
	if err := render(w, engine.Matrix(), result); err != nil {
		return fmt.Errorf("write %s report: %w", cfg.Output.Format, err)
	}

	if cfg.Output.Path != "" {
		logging.Info().Str("path", cfg.Output.Path).Str("format", cfg.Output.Format).Msg("Report written")
	}
	return nil
}

// chiConfig maps the server settings onto the API middleware config.
func chiConfig(cfg config.ServerConfig) *api.ChiMiddlewareConfig {
	c := api.DefaultChiMiddlewareConfig()
	c.CORSAllowedOrigins = cfg.CORSOrigins
	c.RateLimitRequests = cfg.RateLimitReqs
	c.RateLimitWindow = cfg.RateLimitWindow
	c.RateLimitDisabled = cfg.RateLimitDisabled
	return c
}

// newHTTPServer builds the API server. The initial run completes here so
// the first request never waits on it.
func newHTTPServer(ctx context.Context, cfg *config.Config) (*http.Server, error) {
	engine, err := newEngine(ctx, cfg)
	if err != nil {
		return nil, err
	}

	handler, err := api.NewHandler(ctx, engine,
		api.WithVersion(version),
		api.WithRequestTimeout(cfg.Server.Timeout),
		api.WithPredictionCache(cfg.Server.PredictionCacheSize),
	)
	if err != nil {
		return nil, fmt.Errorf("create API handler: %w", err)
	}

	if cfg.HasWildcardCORS() {
		logging.Warn().Msg("CORS allows any origin (CORS_ORIGINS=*)")
	}
	if cfg.Server.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is disabled (DISABLE_RATE_LIMIT=true)")
	}

	router := api.NewRouter(handler, chiConfig(cfg.Server))
	return &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// runServe runs the HTTP API under the supervisor tree until ctx ends.
func runServe(ctx context.Context, cfg *config.Config) error {
	server, err := newHTTPServer(ctx, cfg)
	if err != nil {
		return err
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	start := time.Now()
	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()
		for {
			metrics.UpdateUptime(start)
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor: %w", err)
	}

	unstopped, _ := tree.UnstoppedServiceReport() //nolint:errcheck // report is best effort after shutdown
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("WishWise stopped gracefully")
	return nil
}
