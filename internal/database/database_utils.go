// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/tomtom215/vidtrends/internal/metrics"
)

// defaultQueryTimeout applies when neither the caller nor the config sets a deadline.
const defaultQueryTimeout = 30 * time.Second

// ensureContext applies the configured query timeout if the context has no deadline
func (db *DB) ensureContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := defaultQueryTimeout
	if db != nil && db.cfg != nil && db.cfg.QueryTimeout > 0 {
		timeout = db.cfg.QueryTimeout
	}

	if ctx == nil {
		return context.WithTimeout(context.Background(), timeout)
	}
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		return context.WithTimeout(ctx, timeout)
	}
	return ctx, func() {}
}

// runQuery executes one read query under the timeout, the circuit breaker and
// query metrics. The returned error is classified with classifyError.
//
//	rows, err := runQuery(ctx, db, "trends", func(ctx context.Context) ([]models.AggregateRow, error) {
//	    var out []models.AggregateRow
//	    return out, db.conn.SelectContext(ctx, &out, query, args...)
//	})
func runQuery[T any](ctx context.Context, db *DB, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if db == nil || db.conn == nil {
		return zero, fmt.Errorf("%s: %w: store not configured", operation, ErrStoreUnavailable)
	}

	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	start := time.Now()
	var (
		result T
		err    error
	)
	if db.breaker != nil {
		result, err = executeWithBreaker(db.breaker, func() (T, error) { return fn(ctx) })
	} else {
		result, err = fn(ctx)
	}
	metrics.RecordDBQuery(operation, metricsTable, time.Since(start), err)

	if err != nil {
		return zero, fmt.Errorf("%s: %w", operation, classifyError(err))
	}
	return result, nil
}

// rebind converts ? placeholders to the driver's bind style ($n for postgres).
func (db *DB) rebind(query string) string {
	if db == nil || db.conn == nil {
		return query
	}
	return db.conn.Rebind(query)
}

// nonNil returns an empty slice instead of nil so results encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// HasSamples reports whether the metric table holds at least one row.
func (db *DB) HasSamples(ctx context.Context) (bool, error) {
	return runQuery(ctx, db, "has_samples", func(ctx context.Context) (bool, error) {
		var exists bool
		err := db.conn.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM video_metrics)`)
		return exists, err
	})
}
