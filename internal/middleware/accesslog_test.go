// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/wishwise/internal/logging"
)

func TestAccessLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{name: "success logs at debug", status: http.StatusOK, wantLevel: `"level":"debug"`},
		{name: "server error logs at warn", status: http.StatusInternalServerError, wantLevel: `"level":"warn"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

			handler := RequestID(AccessLog(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/matrix", nil)
			req = req.WithContext(logging.ContextWithLogger(req.Context(), logger))

			saved := logging.GetLevel()
			logging.SetLevel(zerolog.DebugLevel)
			defer logging.SetLevel(saved)

			handler(httptest.NewRecorder(), req)

			out := buf.String()
			for _, want := range []string{tt.wantLevel, `"path":"/api/v1/matrix"`, `"request_id":`, "request completed"} {
				if !strings.Contains(out, want) {
					t.Errorf("output = %q, want %q", out, want)
				}
			}
		})
	}
}
