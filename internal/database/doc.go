// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

// Package database provides read access to the video metric store and the
// aggregation and ranking queries that run over it.
//
// # Overview
//
// The store is a single append-only table, video_metrics, written by an
// external ingestion process. This package owns the connection pool and the
// idempotent schema bootstrap, never the data.
//
// Files:
//   - database.go: connection lifecycle for DuckDB and PostgreSQL
//   - database_connection.go: pool configuration and failure classification
//   - database_schema.go: table and index creation
//   - database_utils.go: query timeouts and the runQuery wrapper
//   - circuit_breaker.go: gobreaker guard around store calls
//   - trends.go: time-bucketed averages (aggregation engine)
//   - rankings.go: top-by-metric, growth and engagement rankings
//   - compare.go: raw samples for a list of videos
//   - seed.go: deterministic demo data for development
//
// # Drivers
//
// DuckDB (github.com/duckdb/duckdb-go/v2) is the default embedded store.
// PostgreSQL (github.com/lib/pq) serves deployments where the ingestion process
// writes to a shared server. Queries are written once with ? placeholders and
// passed through sqlx Rebind, and use only SQL both engines support
// (DATE_TRUNC, window functions, CAST AS DOUBLE PRECISION).
//
// # Usage
//
//	db, err := database.New(&cfg.Database)
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	rows, err := db.QueryTrends(ctx, database.TrendQuery{
//	    Granularity: models.GranularityWeekly,
//	    VideoID:     "abc123",
//	})
//
// # Errors
//
// Queries are never retried. Failures that mean the store is unreachable
// (connection loss, deadline, open breaker) wrap ErrStoreUnavailable:
//
//	if errors.Is(err, database.ErrStoreUnavailable) {
//	    // 503
//	}
//
// Every other error is a query fault. Error text may contain SQL and must not
// reach API clients.
//
// # Resource Handling
//
// All reads go through sqlx SelectContext, which closes its rows on every path.
// Each call acquires a pooled connection for one query and releases it before
// returning; no connection outlives a request.
package database
