// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
database_connection.go - Connection Pool Configuration and Failure Classification

Connection Pool Configuration:
  - MaxOpenConns: DB_POOL_MAX, or NumCPU for DuckDB and 10 for PostgreSQL
  - MaxIdleConns: DB_POOL_IDLE (default 2)
  - ConnMaxLifetime: DB_CONN_MAX_LIFETIME (default 1 hour)
  - ConnMaxIdleTime: 5 minutes for idle connection cleanup

Failure Classification:
Queries are never retried. Errors that mean the store itself is unreachable are
wrapped with ErrStoreUnavailable so the analytics layer can answer 503; every
other error (bad SQL, scan mismatch) stays an internal fault.
*/

//nolint:staticcheck // File documentation, not package doc
package database

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/vidtrends/internal/config"
)

// postgresDefaultMaxOpen is the PostgreSQL pool size when DB_POOL_MAX is unset.
const postgresDefaultMaxOpen = 10

// configureConnectionPool sets connection pool parameters
func (db *DB) configureConnectionPool() error {
	maxOpen := db.cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = runtime.NumCPU()
		if db.driver == config.DriverPostgres {
			maxOpen = postgresDefaultMaxOpen
		}
	}

	maxIdle := db.cfg.MaxIdleConns
	if maxIdle <= 0 {
		maxIdle = 2
	}
	if maxIdle > maxOpen {
		maxIdle = maxOpen
	}

	lifetime := db.cfg.ConnMaxLifetime
	if lifetime <= 0 {
		lifetime = time.Hour
	}

	db.conn.SetMaxOpenConns(maxOpen)
	db.conn.SetMaxIdleConns(maxIdle)
	db.conn.SetConnMaxLifetime(lifetime)
	db.conn.SetConnMaxIdleTime(5 * time.Minute)

	return nil
}

// isConnectionError checks if an error indicates database connection loss
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errMsg := strings.ToLower(err.Error())
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "broken pipe") ||
		strings.Contains(errMsg, "bad connection") ||
		strings.Contains(errMsg, "database is closed") ||
		strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "i/o timeout") ||
		strings.Contains(errMsg, "the database system is starting up") ||
		strings.Contains(errMsg, "the database system is shutting down") ||
		strings.Contains(errMsg, "too many clients")
}

// isStoreFailure reports whether err means the store could not serve the query,
// as opposed to the query itself being wrong.
func isStoreFailure(err error) bool {
	return errors.Is(err, ErrStoreUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, gobreaker.ErrOpenState) ||
		errors.Is(err, gobreaker.ErrTooManyRequests) ||
		isConnectionError(err)
}

// classifyError wraps store failures with ErrStoreUnavailable and leaves other errors as-is.
func classifyError(err error) error {
	if err == nil || errors.Is(err, ErrStoreUnavailable) {
		return err
	}
	if isStoreFailure(err) {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return err
}
