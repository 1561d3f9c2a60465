// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
database_schema.go - Database Schema Management

Tables:
  - video_metrics: append-only per-video counter samples, one row per
    (video_id, recorded_at). recorded_at holds UTC wall time.

The DDL sticks to types and syntax shared by DuckDB and PostgreSQL, so the same
statements bootstrap either driver. Both statements are idempotent; an existing
table owned by the ingestion process is left untouched.

Index Strategy:
  - The primary key covers video_id lookups and the per-video ordering used by
    the latest-sample window.
  - idx_video_metrics_recorded_at serves date-window trend queries.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the metric table
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range getTableCreationQueries() {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}
	return nil
}

// getTableCreationQueries returns the table creation SQL statements
func getTableCreationQueries() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS video_metrics (
			video_id    VARCHAR   NOT NULL,
			recorded_at TIMESTAMP NOT NULL,
			views       BIGINT    NOT NULL DEFAULT 0 CHECK (views >= 0),
			likes       BIGINT    NOT NULL DEFAULT 0 CHECK (likes >= 0),
			dislikes    BIGINT    NOT NULL DEFAULT 0 CHECK (dislikes >= 0),
			comments    BIGINT    NOT NULL DEFAULT 0 CHECK (comments >= 0),
			PRIMARY KEY (video_id, recorded_at)
		)`,
	}
}

// createIndexes creates secondary indexes for the analytics queries
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_video_metrics_recorded_at ON video_metrics(recorded_at)`,
	}

	for _, idx := range indexes {
		if _, err := db.conn.ExecContext(ctx, idx); err != nil {
			return fmt.Errorf("failed to create index: %s: %w", idx, err)
		}
	}
	return nil
}
