// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package services adapts blocking components to suture.Service.

HTTPServerService turns http.Server's ListenAndServe/Shutdown pair into a
context-aware Serve: cancellation triggers Shutdown with a bounded timeout,
and http.ErrServerClosed is treated as a clean stop.
*/
package services
