// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package main is the entry point for the Vidtrends server.

Vidtrends serves trend, ranking and comparison queries over a table of periodic
video performance samples (views, likes, dislikes, comments). It never writes
samples itself, apart from the optional development seed.

Startup order:

 1. Configuration: koanf v2 (defaults, optional YAML file, environment)
 2. Logging: zerolog, JSON or console
 3. Metric store: DuckDB (default) or PostgreSQL through sqlx, behind a circuit breaker
 4. Mock data seeding when database.seed_mock_data is set and the store is empty
 5. Analytics service, handlers and the chi router
 6. Supervisor tree: store health probe and HTTP server

Configuration examples:

	# embedded DuckDB file with demo data
	DUCKDB_PATH=/data/vidtrends.duckdb SEED_MOCK_DATA=true ./vidtrends

	# existing PostgreSQL deployment
	DB_DRIVER=postgres \
	DB_CONNECTION_STRING=postgres://db:5432/youtube_trends?sslmode=disable \
	DB_USER=trends DB_PASSWORD=secret ./vidtrends

SIGINT and SIGTERM cancel the supervisor tree. The HTTP server drains
in-flight requests for up to server.shutdown_timeout, then the store pool is
closed.
*/
package main
