// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/wishwise/internal/cache"
	"github.com/tomtom215/wishwise/internal/recommend"
)

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and parameter helpers
//   - handlers_health.go: health endpoint
//   - handlers_recommend.go: matrix and recommendation endpoints
type Handler struct {
	engine    *recommend.Engine
	result    *recommend.Result
	overall   recommend.RankedList // every item ranked by mean score
	version   string
	startTime time.Time

	// requestTimeout bounds a single prediction request
	requestTimeout time.Duration

	// predictions memoizes per-user predictions; nil disables caching
	predictions *cache.LRU[int, recommend.RankedList]
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by the health endpoint.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) { h.version = version }
}

// WithRequestTimeout bounds each prediction request. Zero disables it.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) { h.requestTimeout = d }
}

// WithPredictionCache sets how many users' predictions are memoized.
// Zero disables the cache.
func WithPredictionCache(size int) HandlerOption {
	return func(h *Handler) {
		if size <= 0 {
			h.predictions = nil
			return
		}
		h.predictions = cache.NewLRU[int, recommend.RankedList](size)
	}
}

// NewHandler creates the API handler. The full run, and with it the overall
// ranking, is computed once here; later requests only read the immutable
// matrix.
func NewHandler(ctx context.Context, engine *recommend.Engine, opts ...HandlerOption) (*Handler, error) {
	if engine == nil {
		return nil, errors.New("recommendation engine is required")
	}

	h := &Handler{
		engine:         engine,
		version:        "dev",
		startTime:      time.Now(),
		requestTimeout: 10 * time.Second,
		predictions:    cache.NewLRU[int, recommend.RankedList](cache.DefaultCapacity),
	}
	for _, opt := range opts {
		opt(h)
	}

	result := engine.LastResult()
	if result == nil {
		var err error
		if result, err = engine.Run(ctx); err != nil {
			return nil, fmt.Errorf("initial run: %w", err)
		}
	}
	h.result = result
	h.overall = recommend.AggregateTopN(result.Lists(), engine.Matrix().Items())

	return h, nil
}
