// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package middleware provides HTTP middleware components for the recommendation API.

Key Components:

  - RequestID: UUID-based request tracking, propagated into the logging context
  - AccessLog: one structured log line per request
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip for clients that accept it

The middleware here uses the http.HandlerFunc form; the api package adapts
it to chi's func(http.Handler) http.Handler with a small wrapper:

	r.Use(chiMiddleware(middleware.PrometheusMetrics))

Metrics are labeled with the chi route pattern when one is available, so a
path such as /api/v1/users/3/predictions is recorded as
/api/v1/users/{user}/predictions.
*/
package middleware
