// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/tomtom215/wishwise/internal/config"
)

const (
	modeReport = "report"
	modeServe  = "serve"
)

// cliOptions is the parsed command line.
type cliOptions struct {
	mode        string
	configPath  string
	showVersion bool

	// overrides holds koanf keys for the flags that were actually set.
	overrides map[string]any
}

// flagKeys maps each override flag to its koanf key.
var flagKeys = map[string]string{
	"input":      "input.path",
	"source":     "input.source",
	"delimiter":  "input.delimiter",
	"table":      "input.table",
	"max-cells":  "input.max_cells",
	"per-user-n": "recommend.per_user_n",
	"overall-n":  "recommend.overall_n",
	"workers":    "recommend.workers",
	"format":     "output.format",
	"output":     "output.path",
	"host":       "server.host",
	"port":       "server.port",
	"log-level":  "logging.level",
	"log-format": "logging.format",
}

// parseArgs reads an optional leading mode word followed by flags.
func parseArgs(args []string, stderr io.Writer) (*cliOptions, error) {
	opts := &cliOptions{mode: modeReport, overrides: map[string]any{}}

	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		opts.mode = args[0]
		args = args[1:]
	}
	if opts.mode != modeReport && opts.mode != modeServe {
		return nil, fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, modeReport, modeServe)
	}

	fs := flag.NewFlagSet("wishwise", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: wishwise [report|serve] [flags]")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nEnvironment: %s\n", strings.Join(config.EnvVars(), ", "))
	}

	fs.StringVar(&opts.configPath, "config", "", "config file path (overrides CONFIG_PATH)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")

	fs.String("input", "", "ratings file (CSV) or database (DuckDB)")
	fs.String("source", "", "input source: csv or duckdb")
	fs.String("delimiter", "", "CSV field delimiter")
	fs.String("table", "", "DuckDB ratings table")
	fs.Int("max-cells", 0, "DuckDB limit on users x items")
	fs.Int("per-user-n", 0, "recommendations kept per user")
	fs.Int("overall-n", 0, "items in the overall ranking")
	fs.Int("workers", 0, "users predicted concurrently")
	fs.String("format", "", "report format: text or json")
	fs.String("output", "", "report file (default stdout)")
	fs.String("host", "", "HTTP listen host (serve mode)")
	fs.Int("port", 0, "HTTP listen port (serve mode)")
	fs.String("log-level", "", "log level: trace, debug, info, warn, error")
	fs.String("log-format", "", "log format: json or console")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	// Only explicitly set flags override lower layers.
	fs.Visit(func(f *flag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if getter, ok := f.Value.(flag.Getter); ok {
			opts.overrides[key] = getter.Get()
		}
	})

	return opts, nil
}
