// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/wishwise/internal/models"
)

// Health handles GET /api/v1/health
// The service is ready as soon as the handler exists, because the matrix is
// loaded and the initial run has completed before routes are served.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	m := h.engine.Matrix()

	status := models.HealthStatus{
		Status:    "ok",
		Version:   h.version,
		Users:     m.Users(),
		Items:     m.Items(),
		LastRunAt: h.result.Stats.Timestamp,
		Uptime:    time.Since(h.startTime).Seconds(),
		Engine:    h.engine.GetMetrics(),
	}
	if h.predictions != nil {
		stats := h.predictions.Stats()
		status.PredictionCache = &stats
	}

	respondSuccess(w, r, status, start)
}
