// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide; it caches struct
// metadata and is safe for concurrent use. Field names in error messages come
// from the koanf tag, then the query tag, then the Go field name, so messages
// refer to the names users actually type:
//
//	type predictionsQuery struct {
//	    N int `query:"n" validate:"gte=0,lte=100"`
//	}
//
//	if err := validation.ValidateStruct(&q); err != nil {
//	    apiErr := err.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, err)
//	}
//
// # Custom Tags
//
//   - csvdelim: a single character usable as a CSV field delimiter
//   - sqlident: a plain SQL identifier (letters, digits, underscore)
package validation
