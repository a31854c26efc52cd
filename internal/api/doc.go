// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package api provides the read-only HTTP API served in serve mode.

Routes:

	GET /api/v1/health                        service status
	GET /api/v1/matrix                        matrix dimensions and density
	GET /api/v1/users/{user}/predictions?n=   full predictions plus top n
	GET /api/v1/recommendations/overall?n=    aggregate top n
	GET /metrics                              Prometheus exposition

Users and movies are 1-based in paths and in the "movie" response field,
matching the text report; the "item" field keeps the zero-based index.

Every JSON response uses models.APIResponse. Errors carry a machine-readable
code: VALIDATION_ERROR (400), USER_NOT_FOUND (404), RATE_LIMIT_EXCEEDED (429).
A user below 1 is a validation error; a user beyond the matrix is not found.

The health endpoint reports the engine counters and, when enabled, the
prediction cache's hits, misses and size.

The overall ranking is computed once by NewHandler. Per-user predictions are
computed on demand against the immutable matrix and memoized in an LRU
(WithPredictionCache); hits and misses are counted in
api_prediction_cache_lookups_total.

Middleware (outermost first): request ID, RealIP, access log, Recoverer,
CORS, then per route group rate limiting, security headers, Prometheus
request metrics and gzip compression.
*/
package api
