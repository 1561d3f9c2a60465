// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package config provides centralized configuration management for Vidtrends.

Configuration is layered with Koanf v2: built-in defaults, then an optional
YAML file, then environment variables. The result is validated once by
Config.Validate and is read-only afterwards.

# Configuration Structure

  - DatabaseConfig: metric store driver (duckdb or postgres), pool, breaker
  - ServerConfig: HTTP server settings (host, port, timeouts)
  - APIConfig: page sizes, ranking limits, comparison and trend caps
  - SecurityConfig: CORS origins and rate limiting
  - LoggingConfig: level, format, caller

# Environment Variables

Database:
  - DB_DRIVER: duckdb (default) or postgres
  - DUCKDB_PATH: DuckDB file path (default: /data/vidtrends.duckdb)
  - DUCKDB_MAX_MEMORY: DuckDB memory limit (default: 1GB)
  - DB_CONNECTION_STRING / DATABASE_URL: PostgreSQL connection string
  - DB_USER, DB_PASSWORD: credentials merged into the PostgreSQL DSN
  - DB_POOL_MAX, DB_POOL_IDLE: connection pool bounds
  - DB_QUERY_TIMEOUT: default per-query deadline (default: 30s)
  - SEED_MOCK_DATA: seed demo samples into an empty store (default: false)
  - DB_BREAKER_ENABLED, DB_BREAKER_MIN_REQS, DB_BREAKER_RATIO, DB_BREAKER_TIMEOUT

Server:
  - HTTP_HOST (default: 0.0.0.0), HTTP_PORT (default: 3000)
  - HTTP_TIMEOUT (default: 30s), HTTP_SHUTDOWN_TIMEOUT (default: 10s)
  - ENVIRONMENT: development, staging, production

API:
  - API_DEFAULT_PAGE_SIZE (10), API_MAX_PAGE_SIZE (100)
  - API_DEFAULT_LIMIT (10), API_MAX_LIMIT (100)
  - API_MAX_COMPARE_VIDEOS (10), API_MAX_TREND_ROWS (100)

Security:
  - CORS_ORIGINS: comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS (1000), RATE_LIMIT_WINDOW (1m), DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

A config file is looked up via CONFIG_PATH, then config.yaml / config.yml in the
working directory, then /etc/vidtrends/.
*/
package config
