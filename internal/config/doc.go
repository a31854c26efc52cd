// WishWise - User-Based Collaborative Filtering Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishwise

/*
Package config provides centralized configuration management for WishWise.

Configuration is layered with Koanf v2. Later layers win:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/wishwise/config.yaml, /etc/wishwise/config.yml
 3. Environment variables (see below)
 4. Overrides passed to LoadWithKoanf, normally from command line flags

# Environment Variables

Input (InputConfig):
  - WISHWISE_INPUT: ratings file path (default: ratings.csv)
  - WISHWISE_SOURCE: csv or duckdb (default: csv)
  - WISHWISE_DELIMITER: CSV field delimiter (default: ",")
  - WISHWISE_TABLE: DuckDB ratings table (default: ratings)
  - WISHWISE_MAX_CELLS: DuckDB users x items limit (default: 10000000)

Recommendation (RecommendConfig):
  - PER_USER_N: recommendations per user (default: 3)
  - OVERALL_N: items in the overall ranking (default: 5)
  - MAX_N: largest n accepted by the API (default: 100)
  - WORKERS: users predicted concurrently (default: 1)
  - RUN_TIMEOUT: bound on a full run, 0 disables (default: 0)

Output (OutputConfig):
  - OUTPUT_FORMAT: text or json (default: text)
  - OUTPUT_PATH: report file, empty for stdout

HTTP Server (ServerConfig):
  - HTTP_HOST, HTTP_PORT (default: 0.0.0.0:8080)
  - HTTP_TIMEOUT (default: 30s), HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - CORS_ORIGINS: comma-separated list (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW (default: 100 per 1m)
  - DISABLE_RATE_LIMIT

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: console)
  - LOG_CALLER: include caller file:line

# Validation

Struct tags are checked with go-playground/validator through the validation
package, followed by cross-field checks such as PER_USER_N <= MAX_N.

# Thread Safety

The Config struct is immutable after LoadWithKoanf returns.
*/
package config
