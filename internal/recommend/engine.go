// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package recommend

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/wishwise/internal/ratings"
)

// Engine predicts ratings for unrated items using user-based collaborative
// filtering. It is safe for concurrent use.
type Engine struct {
	// Configuration
	config *Config
	logger zerolog.Logger

	// Read-only inputs
	matrix  *ratings.Matrix
	vectors [][]float64

	// Observation hooks (metrics)
	observer Observer

	// Counters
	runCount         atomic.Int64
	predictionCount  atomic.Int64
	similarityCount  atomic.Int64
	errorCount       atomic.Int64
	lastResultMu     sync.RWMutex
	lastResult       *Result
	lastRunCompleted time.Time
}

// Observer receives notifications about engine activity.
// This is typically implemented by the metrics layer.
type Observer interface {
	// ObservePrediction is called after a user's predictions are computed.
	ObservePrediction(user, predictions int, duration time.Duration)

	// ObserveSimilarities is called with the number of user-pair
	// similarities computed while predicting one user.
	ObserveSimilarities(count int)

	// ObserveRun is called when a full run finishes, successfully or not.
	ObserveRun(stats RunStats, err error)
}

type noopObserver struct{}

func (noopObserver) ObservePrediction(int, int, time.Duration) {}
func (noopObserver) ObserveSimilarities(int)                  {}
func (noopObserver) ObserveRun(RunStats, error)               {}

// Metrics is a point-in-time snapshot of engine counters.
type Metrics struct {
	Runs                   int64     `json:"runs"`
	Predictions            int64     `json:"predictions"`
	SimilarityComputations int64     `json:"similarity_computations"`
	Errors                 int64     `json:"errors"`
	LastRunAt              time.Time `json:"last_run_at,omitempty"`
}

// NewEngine creates a new recommendation engine over a ratings matrix.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(matrix *ratings.Matrix, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if matrix == nil {
		return nil, errors.New("ratings matrix is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	rows := matrix.Vectors()
	vectors := make([][]float64, len(rows))
	for u, row := range rows {
		vectors[u] = toFloats(row)
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		matrix:   matrix,
		vectors:  vectors,
		observer: noopObserver{},
	}

	e.logger.Debug().
		Int("users", matrix.Users()).
		Int("items", matrix.Items()).
		Float64("density", matrix.Density()).
		Int("workers", cfg.Parallel.Workers).
		Msg("recommendation engine created")

	return e, nil
}

// SetObserver installs an observer for engine activity. It must be called
// before the engine is shared between goroutines. A nil observer disables
// observation.
func (e *Engine) SetObserver(o Observer) {
	if o == nil {
		o = noopObserver{}
	}
	e.observer = o
}

// Matrix returns the ratings matrix the engine predicts over.
func (e *Engine) Matrix() *ratings.Matrix {
	return e.matrix
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Predict computes a predicted score for every item the user has not rated.
//
// Items are emitted in ranked order: descending score, ties by ascending item
// index. Rated items never appear. An item that no neighbor rated, or whose
// neighbors all have zero similarity, is emitted with score 0.
func (e *Engine) Predict(ctx context.Context, user int) (RankedList, error) {
	if !e.matrix.ValidUser(user) {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: %d (users: %d)", ErrUserOutOfRange, user, e.matrix.Users())
	}

	start := time.Now()
	users := e.matrix.Users()
	items := e.matrix.Items()

	// Similarities are computed on first use and reused across items.
	sims := make([]float64, users)
	known := make([]bool, users)
	computed := 0
	similarity := func(v int) float64 {
		if !known[v] {
			sims[v] = cosine(e.vectors[user], e.vectors[v])
			known[v] = true
			computed++
		}
		return sims[v]
	}

	predictions := make(RankedList, 0, items-e.matrix.RatedCount(user))
	for item := 0; item < items; item++ {
		if e.matrix.IsRated(user, item) {
			continue
		}
		if err := ctx.Err(); err != nil {
			e.errorCount.Add(1)
			return nil, fmt.Errorf("predict user %d: %w", user, err)
		}

		var weighted, norm float64
		for v := 0; v < users; v++ {
			if v == user {
				continue
			}
			r := e.matrix.At(v, item)
			if r == ratings.Unrated {
				continue
			}
			s := similarity(v)
			weighted += s * float64(r)
			norm += math.Abs(s)
		}

		score := 0.0
		if norm != 0 {
			score = weighted / norm
		}
		predictions = append(predictions, Prediction{Item: item, Score: score})
	}

	sortRanked(predictions)

	e.predictionCount.Add(int64(len(predictions)))
	e.similarityCount.Add(int64(computed))
	e.observer.ObserveSimilarities(computed)
	e.observer.ObservePrediction(user, len(predictions), time.Since(start))

	e.logger.Trace().
		Int("user", user).
		Int("predictions", len(predictions)).
		Int("similarities", computed).
		Msg("user predicted")

	return predictions, nil
}

// PredictAll computes the ranked predictions of every user, in user order.
//
// When Parallel.Workers is greater than one, users are predicted on a bounded
// worker pool. Each user's list is written to its own slot, so the output
// matches the sequential run exactly.
func (e *Engine) PredictAll(ctx context.Context) ([]RankedList, error) {
	users := e.matrix.Users()
	lists := make([]RankedList, users)

	workers := e.config.Parallel.Workers
	if workers <= 1 {
		for u := 0; u < users; u++ {
			list, err := e.Predict(ctx, u)
			if err != nil {
				return nil, err
			}
			lists[u] = list
		}
		return lists, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for u := 0; u < users; u++ {
		g.Go(func() error {
			list, err := e.Predict(gctx, u)
			if err != nil {
				return err
			}
			lists[u] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return lists, nil
}

// Run predicts every user, keeps each user's top PerUserN, and ranks items
// overall by their mean predicted score.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	e.runCount.Add(1)

	if timeout := e.config.Limits.RunTimeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	simBefore := e.similarityCount.Load()

	stats := RunStats{
		Users:    e.matrix.Users(),
		Items:    e.matrix.Items(),
		PerUserN: e.config.Limits.PerUserN,
		OverallN: e.config.Limits.OverallN,
		Workers:  e.config.Parallel.Workers,
	}

	lists, err := e.PredictAll(ctx)
	if err != nil {
		stats.DurationMS = time.Since(start).Milliseconds()
		stats.Timestamp = time.Now()
		e.observer.ObserveRun(stats, err)
		e.logger.Error().Err(err).Msg("recommendation run failed")
		return nil, fmt.Errorf("run: %w", err)
	}

	result := &Result{
		Users: make([]UserResult, len(lists)),
	}
	for u, list := range lists {
		result.Users[u] = UserResult{
			User:        u,
			Predictions: list,
			Top:         TopN(list, e.config.Limits.PerUserN),
		}
		stats.Predictions += len(list)
	}
	result.Overall = AggregateTopN(lists, e.config.Limits.OverallN)

	stats.SimilarityComputations = e.similarityCount.Load() - simBefore
	stats.DurationMS = time.Since(start).Milliseconds()
	stats.Timestamp = time.Now()
	result.Stats = stats

	e.lastResultMu.Lock()
	e.lastResult = result
	e.lastRunCompleted = stats.Timestamp
	e.lastResultMu.Unlock()

	e.observer.ObserveRun(stats, nil)

	e.logger.Info().
		Int("users", stats.Users).
		Int("items", stats.Items).
		Int("predictions", stats.Predictions).
		Int64("similarities", stats.SimilarityComputations).
		Int64("duration_ms", stats.DurationMS).
		Ints("overall", result.Overall.Items()).
		Msg("recommendation run completed")

	return result, nil
}

// LastResult returns the result of the most recent successful run, or nil if
// no run has completed.
func (e *Engine) LastResult() *Result {
	e.lastResultMu.RLock()
	defer e.lastResultMu.RUnlock()
	return e.lastResult
}

// GetMetrics returns a snapshot of engine counters.
func (e *Engine) GetMetrics() Metrics {
	e.lastResultMu.RLock()
	lastRun := e.lastRunCompleted
	e.lastResultMu.RUnlock()

	return Metrics{
		Runs:                   e.runCount.Load(),
		Predictions:            e.predictionCount.Load(),
		SimilarityComputations: e.similarityCount.Load(),
		Errors:                 e.errorCount.Load(),
		LastRunAt:              lastRun,
	}
}
