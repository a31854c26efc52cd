// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/wishwise/internal/config"
	"github.com/tomtom215/wishwise/internal/metrics"
	"github.com/tomtom215/wishwise/internal/ratings"
	"github.com/tomtom215/wishwise/internal/report"
)

const referenceCSV = "5,3,0,1\n4,0,0,1\n1,1,0,5\n1,0,0,4\n0,1,5,4\n"

func writeRatings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ratings.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write ratings: %v", err)
	}
	return path
}

func testConfig(t *testing.T, input string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Input.Path = input
	return cfg
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name          string
		args          []string
		wantMode      string
		wantOverrides map[string]any
		wantConfig    string
		wantVersion   bool
	}{
		{
			name:          "no arguments",
			args:          nil,
			wantMode:      modeReport,
			wantOverrides: map[string]any{},
		},
		{
			name:     "report flags",
			args:     []string{"-input", "data.csv", "-per-user-n", "2", "-format", "json"},
			wantMode: modeReport,
			wantOverrides: map[string]any{
				"input.path":           "data.csv",
				"recommend.per_user_n": 2,
				"output.format":        "json",
			},
		},
		{
			name:     "serve mode with flags after mode",
			args:     []string{"serve", "-port", "9090", "-host", "127.0.0.1"},
			wantMode: modeServe,
			wantOverrides: map[string]any{
				"server.port": 9090,
				"server.host": "127.0.0.1",
			},
		},
		{
			name:          "explicit zero is an override",
			args:          []string{"report", "-overall-n", "0"},
			wantMode:      modeReport,
			wantOverrides: map[string]any{"recommend.overall_n": 0},
		},
		{
			name:          "config and version are not overrides",
			args:          []string{"-config", "/tmp/wishwise.yaml", "-version"},
			wantMode:      modeReport,
			wantOverrides: map[string]any{},
			wantConfig:    "/tmp/wishwise.yaml",
			wantVersion:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts, err := parseArgs(tt.args, io.Discard)
			if err != nil {
				t.Fatalf("parseArgs() error = %v", err)
			}
			if opts.mode != tt.wantMode {
				t.Errorf("mode = %q, want %q", opts.mode, tt.wantMode)
			}
			if !reflect.DeepEqual(opts.overrides, tt.wantOverrides) {
				t.Errorf("overrides = %v, want %v", opts.overrides, tt.wantOverrides)
			}
			if opts.configPath != tt.wantConfig {
				t.Errorf("configPath = %q, want %q", opts.configPath, tt.wantConfig)
			}
			if opts.showVersion != tt.wantVersion {
				t.Errorf("showVersion = %v, want %v", opts.showVersion, tt.wantVersion)
			}
		})
	}
}

func TestParseArgs_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown mode", []string{"train"}},
		{"unknown flag", []string{"-bogus"}},
		{"non-numeric int flag", []string{"-per-user-n", "three"}},
		{"trailing argument", []string{"report", "-input", "a.csv", "extra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseArgs(tt.args, io.Discard); err == nil {
				t.Errorf("parseArgs(%v) error = nil, want error", tt.args)
			}
		})
	}
}

func TestParseArgs_Help(t *testing.T) {
	var buf bytes.Buffer
	_, err := parseArgs([]string{"-h"}, &buf)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("parseArgs(-h) error = %v, want flag.ErrHelp", err)
	}
	for _, want := range []string{"Usage: wishwise", "-max-cells", "WISHWISE_MAX_CELLS", "PREDICTION_CACHE_SIZE"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("usage output missing %q:\n%s", want, buf.String())
		}
	}
}

func TestNewSource(t *testing.T) {
	cfg := config.Default()

	if src := newSource(cfg.Input); src.Name() != "csv" {
		t.Errorf("default source = %q, want csv", src.Name())
	}

	cfg.Input.Source = config.SourceDuckDB
	if src := newSource(cfg.Input); src.Name() != "duckdb" {
		t.Errorf("duckdb source = %q, want duckdb", src.Name())
	}
}

func TestClassifyLoadError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"parse", &ratings.ParseError{Line: 1, Column: 2, Field: "x"}, metrics.ErrorTypeParse},
		{"structural", &ratings.StructuralError{Row: -1, Reason: "empty"}, metrics.ErrorTypeStructural},
		{"wrapped parse", errors.Join(errors.New("load"), &ratings.ParseError{}), metrics.ErrorTypeParse},
		{"io", os.ErrNotExist, metrics.ErrorTypeIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classifyLoadError(tt.err); got != tt.want {
				t.Errorf("classifyLoadError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunReport_Text(t *testing.T) {
	cfg := testConfig(t, writeRatings(t, referenceCSV))

	var buf bytes.Buffer
	if err := runReport(context.Background(), cfg, &buf); err != nil {
		t.Fatalf("runReport() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Ratings Matrix:\n5 3 0 1 \n",
		"Top 3 Recommended Movies for User 2:\n  Movie 3 with predicted rating: 5.00\n  Movie 2 with predicted rating: 2.20\n",
		"Top 5 Movies Overall:\n  Movie 3 with average predicted rating: 5.00\n  Movie 2 with average predicted rating: 1.79\n  Movie 1 with average predicted rating: 1.76\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRunReport_JSONFile(t *testing.T) {
	cfg := testConfig(t, writeRatings(t, referenceCSV))
	cfg.Output.Format = config.FormatJSON
	cfg.Output.Path = filepath.Join(t.TempDir(), "report.json")

	var stdout bytes.Buffer
	if err := runReport(context.Background(), cfg, &stdout); err != nil {
		t.Fatalf("runReport() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty when writing to a file", stdout.String())
	}

	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	var doc report.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal report: %v", err)
	}
	if doc.Matrix.Users != 5 || doc.Matrix.Items != 4 {
		t.Errorf("matrix = %dx%d, want 5x4", doc.Matrix.Users, doc.Matrix.Items)
	}
	if len(doc.Overall) != 3 || doc.Overall[0].Item != 2 {
		t.Errorf("overall = %+v, want item 2 first of 3", doc.Overall)
	}
}

func TestRunReport_LoadErrors(t *testing.T) {
	tests := []struct {
		name      string
		input     func(t *testing.T) string
		wantType  string
		wantParse bool
	}{
		{
			name:      "bad token",
			input:     func(t *testing.T) string { return writeRatings(t, "5,3\n4,x\n") },
			wantType:  metrics.ErrorTypeParse,
			wantParse: true,
		},
		{
			name:     "ragged rows",
			input:    func(t *testing.T) string { return writeRatings(t, "5,3\n4\n") },
			wantType: metrics.ErrorTypeStructural,
		},
		{
			name:     "missing file",
			input:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "missing.csv") },
			wantType: metrics.ErrorTypeIO,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := metrics.MatrixLoadErrors.WithLabelValues("csv", tt.wantType)
			before := testutil.ToFloat64(counter)

			err := runReport(context.Background(), testConfig(t, tt.input(t)), io.Discard)
			if err == nil {
				t.Fatal("runReport() error = nil, want error")
			}

			var parseErr *ratings.ParseError
			if got := errors.As(err, &parseErr); got != tt.wantParse {
				t.Errorf("errors.As(ParseError) = %v, want %v (err: %v)", got, tt.wantParse, err)
			}
			if after := testutil.ToFloat64(counter); after != before+1 {
				t.Errorf("load errors{%s} = %v, want %v", tt.wantType, after, before+1)
			}
		})
	}
}

func TestRunReport_CanceledContext(t *testing.T) {
	cfg := testConfig(t, writeRatings(t, referenceCSV))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runReport(ctx, cfg, io.Discard); !errors.Is(err, context.Canceled) {
		t.Errorf("runReport() error = %v, want context.Canceled", err)
	}
}

func TestChiConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Server.CORSOrigins = []string{"https://example.com"}
	cfg.Server.RateLimitReqs = 7
	cfg.Server.RateLimitWindow = 30 * time.Second
	cfg.Server.RateLimitDisabled = true

	got := chiConfig(cfg.Server)
	if !reflect.DeepEqual(got.CORSAllowedOrigins, []string{"https://example.com"}) {
		t.Errorf("CORSAllowedOrigins = %v", got.CORSAllowedOrigins)
	}
	if got.RateLimitRequests != 7 || got.RateLimitWindow != 30*time.Second || !got.RateLimitDisabled {
		t.Errorf("rate limit = %d/%v disabled=%v", got.RateLimitRequests, got.RateLimitWindow, got.RateLimitDisabled)
	}
}

func TestNewHTTPServer(t *testing.T) {
	cfg := testConfig(t, writeRatings(t, referenceCSV))
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 18080

	srv, err := newHTTPServer(context.Background(), cfg)
	if err != nil {
		t.Fatalf("newHTTPServer() error = %v", err)
	}
	if srv.Addr != "127.0.0.1:18080" {
		t.Errorf("Addr = %q, want 127.0.0.1:18080", srv.Addr)
	}
	if srv.WriteTimeout != cfg.Server.Timeout {
		t.Errorf("WriteTimeout = %v, want %v", srv.WriteTimeout, cfg.Server.Timeout)
	}
	if srv.Handler == nil {
		t.Error("Handler is nil")
	}
}
