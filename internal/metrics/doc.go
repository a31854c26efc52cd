// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
are exposed at /metrics when the server mode is enabled:

	curl http://localhost:8080/metrics

# Available Metrics

Ratings Matrix Metrics:
  - wishwise_matrix_load_duration_seconds: Load latency (histogram)
    Labels: source (csv, duckdb)
  - wishwise_matrix_load_errors_total: Failed loads (counter)
    Labels: source, error_type (parse, structural, io, canceled)
  - wishwise_matrix_users, wishwise_matrix_items: Matrix dimensions (gauge)
  - wishwise_matrix_density_ratio: Fraction of rated cells (gauge)

Prediction Metrics:
  - wishwise_predictions_total: Item predictions emitted (counter)
  - wishwise_prediction_duration_seconds: Per-user prediction time (histogram)
  - wishwise_similarity_computations_total: Cosine similarities computed (counter)

Run Metrics:
  - wishwise_runs_total: Full runs (counter)
    Labels: status (success, error)
  - wishwise_run_duration_seconds: Run latency (histogram)
  - wishwise_run_last_success_timestamp: Unix time of last success (gauge)

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limiter rejections (counter)
    Labels: endpoint

# Engine Integration

The recommendation engine reports through the recommend.Observer interface:

	engine.SetObserver(metrics.NewRecommendObserver())

# Cardinality Management

Endpoint labels use the chi route pattern (for example
/api/v1/users/{user}/predictions) rather than the request path, so user
indices never become label values.

# Thread Safety

All metric recording functions are safe for concurrent use. The Prometheus
client library handles synchronization internally.
*/
package metrics
