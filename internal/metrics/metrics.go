// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package metrics

import (
	"context"
	"errors"
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Ratings Matrix Metrics
	MatrixLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wishwise_matrix_load_duration_seconds",
			Help:    "Duration of ratings matrix loads in seconds",
			Buckets: prometheus.DefBuckets, // 0.005s, 0.01s, 0.025s, 0.05s, 0.1s, 0.25s, 0.5s, 1s, 2.5s, 5s, 10s
		},
		[]string{"source"},
	)

	MatrixLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishwise_matrix_load_errors_total",
			Help: "Total number of failed ratings matrix loads",
		},
		[]string{"source", "error_type"},
	)

	MatrixUsers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wishwise_matrix_users",
			Help: "Number of users (rows) in the loaded ratings matrix",
		},
	)

	MatrixItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wishwise_matrix_items",
			Help: "Number of items (columns) in the loaded ratings matrix",
		},
	)

	MatrixDensity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wishwise_matrix_density_ratio",
			Help: "Fraction of rated cells in the loaded ratings matrix",
		},
	)

	// Prediction Metrics
	PredictionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wishwise_predictions_total",
			Help: "Total number of item predictions emitted",
		},
	)

	PredictionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wishwise_prediction_duration_seconds",
			Help:    "Duration of predicting all unrated items for one user",
			Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
		},
	)

	SimilarityComputations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wishwise_similarity_computations_total",
			Help: "Total number of user-pair cosine similarities computed",
		},
	)

	// Run Metrics
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wishwise_runs_total",
			Help: "Total number of full recommendation runs",
		},
		[]string{"status"}, // "success", "error"
	)

	RunDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "wishwise_run_duration_seconds",
			Help:    "Duration of full recommendation runs in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	RunLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "wishwise_run_last_success_timestamp",
			Help: "Unix timestamp of the last successful recommendation run",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	PredictionCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_prediction_cache_lookups_total",
			Help: "Per-user prediction cache lookups by result (hit or miss)",
		},
		[]string{"result"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Error types used as the error_type label of MatrixLoadErrors.
const (
	ErrorTypeParse      = "parse"
	ErrorTypeStructural = "structural"
	ErrorTypeIO         = "io"
	ErrorTypeCanceled   = "canceled"
)

// ErrorClassifier maps a load error to a bounded error_type label.
// The ratings package errors are classified by the caller so this package
// stays free of internal imports.
type ErrorClassifier func(err error) string

// RecordMatrixLoad records a ratings matrix load. On success the matrix
// gauges are updated; on failure the error is counted under the label that
// classify returns (or ErrorTypeIO if classify is nil).
func RecordMatrixLoad(source string, users, items int, density float64, duration time.Duration, err error, classify ErrorClassifier) {
	MatrixLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		errorType := ErrorTypeIO
		switch {
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			errorType = ErrorTypeCanceled
		case classify != nil:
			errorType = classify(err)
		}
		MatrixLoadErrors.WithLabelValues(source, errorType).Inc()
		return
	}

	MatrixUsers.Set(float64(users))
	MatrixItems.Set(float64(items))
	MatrixDensity.Set(density)
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordPredictionCache records a per-user prediction cache lookup.
func RecordPredictionCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	PredictionCacheLookups.WithLabelValues(result).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// SetAppInfo publishes the application version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge relative to start.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
