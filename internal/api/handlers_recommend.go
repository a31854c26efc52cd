// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/wishwise/internal/metrics"
	"github.com/tomtom215/wishwise/internal/models"
	"github.com/tomtom215/wishwise/internal/recommend"
	"github.com/tomtom215/wishwise/internal/validation"
)

// Matrix handles GET /api/v1/matrix
// Returns the dimensions and density of the loaded ratings matrix.
func (h *Handler) Matrix(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	m := h.engine.Matrix()

	respondSuccess(w, r, models.MatrixInfo{
		Users:   m.Users(),
		Items:   m.Items(),
		Density: m.Density(),
		Rated:   m.Rated(),
	}, start)
}

// UserPredictions handles GET /api/v1/users/{user}/predictions?n=
// Returns every predicted item for a user plus the top n. The user is
// 1-based; n defaults to the configured per-user count.
func (h *Handler) UserPredictions(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	user, verr := intParam("user", chi.URLParam(r, "user"), 0)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	n, verr := intParam("n", r.URL.Query().Get("n"), h.result.Stats.PerUserN)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	req := UserPredictionsRequest{User: user, N: n}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	predictions, err := h.predict(r.Context(), req.User-1)
	if err != nil {
		if errors.Is(err, recommend.ErrUserOutOfRange) {
			respondError(w, r, http.StatusNotFound, ErrCodeUserNotFound,
				fmt.Sprintf("User %d does not exist (users: %d)", req.User, h.engine.Matrix().Users()), nil)
			return
		}
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeRecommendation, "Failed to compute predictions", err)
		return
	}

	n = h.capN(req.N)
	respondSuccess(w, r, models.UserPredictions{
		User:        req.User,
		N:           n,
		Predictions: models.NewRankedItems(predictions),
		Top:         models.NewRankedItems(recommend.TopN(predictions, n)),
	}, start)
}

// OverallRecommendations handles GET /api/v1/recommendations/overall?n=
// Returns the top n items by mean predicted score across users. n defaults
// to the configured overall count.
func (h *Handler) OverallRecommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	n, verr := intParam("n", r.URL.Query().Get("n"), h.result.Stats.OverallN)
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	req := OverallRequest{N: n}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	n = h.capN(req.N)
	respondSuccess(w, r, models.OverallRanking{
		N:     n,
		Items: models.NewRankedItems(recommend.TopN(h.overall, n)),
	}, start)
}

// capN limits n to the engine's configured maximum.
func (h *Handler) capN(n int) int {
	if limit := h.engine.GetConfig().Limits.MaxN; n > limit {
		return limit
	}
	return n
}

// predict returns a user's predictions, consulting the cache first. Only
// successful results are cached; the matrix never changes, so they stay valid.
func (h *Handler) predict(ctx context.Context, user int) (recommend.RankedList, error) {
	if h.predictions != nil {
		if list, ok := h.predictions.Get(user); ok {
			metrics.RecordPredictionCache(true)
			return list, nil
		}
		metrics.RecordPredictionCache(false)
	}

	if h.requestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.requestTimeout)
		defer cancel()
	}

	list, err := h.engine.Predict(ctx, user)
	if err != nil {
		return nil, err
	}
	if h.predictions != nil {
		h.predictions.Add(user, list)
	}
	return list, nil
}
