// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tomtom215/vidtrends/internal/config"
	"github.com/tomtom215/vidtrends/internal/logging"
)

// metricsTable is the relation every analytics query reads from.
const metricsTable = "video_metrics"

// ErrStoreUnavailable marks errors caused by the metric store being unreachable:
// connection loss, an open circuit breaker, a query deadline, or a store that was
// never configured. Callers test for it with errors.Is.
var ErrStoreUnavailable = errors.New("metric store unavailable")

//nolint:gochecknoinits // duckdb uses ? placeholders; register it so Rebind is explicit
func init() {
	sqlx.BindDriver("duckdb", sqlx.QUESTION)
}

// DB wraps the metric store connection pool and provides the analytics queries.
// A DB is safe for concurrent use; it holds no per-request state.
type DB struct {
	conn    *sqlx.DB
	cfg     *config.DatabaseConfig
	driver  string
	breaker *storeBreaker // nil when the breaker is disabled
}

// New opens the metric store, configures the pool and bootstraps the schema.
func New(cfg *config.DatabaseConfig) (*DB, error) {
	driver := cfg.Driver
	if driver == "" {
		driver = config.DriverDuckDB
	}

	var (
		conn *sql.DB
		err  error
	)
	switch driver {
	case config.DriverDuckDB:
		conn, err = openDuckDB(cfg)
	case config.DriverPostgres:
		conn, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, err
	}

	db := &DB{
		conn:   sqlx.NewDb(conn, driver),
		cfg:    cfg,
		driver: driver,
	}
	if cfg.Breaker.Enabled {
		db.breaker = newStoreBreaker("metric-store", cfg.Breaker)
	}

	if err := db.configureConnectionPool(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	if err := db.initialize(); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	logging.Info().
		Str("driver", driver).
		Bool("circuit_breaker", db.breaker != nil).
		Msg("Metric store ready")

	return db, nil
}

// openDuckDB opens an embedded DuckDB database file (or :memory:).
func openDuckDB(cfg *config.DatabaseConfig) (*sql.DB, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	if !isMemoryPath(cfg.Path) {
		// Use 0750 permissions (owner: rwx, group: rx, other: none) per gosec G301
		dbDir := filepath.Dir(cfg.Path)
		if dbDir != "" && dbDir != "." {
			if err := os.MkdirAll(dbDir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dbDir, err)
			}
		}
	}

	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "1GB"
	}

	// Extensions are never auto-installed; the analytics queries only use core SQL.
	connStr := fmt.Sprintf("%s?threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, numThreads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return conn, nil
}

// openPostgres opens a PostgreSQL pool through lib/pq and verifies it is reachable.
func openPostgres(cfg *config.DatabaseConfig) (*sql.DB, error) {
	dsn, err := cfg.PostgresDSN()
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := conn.PingContext(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("%w: ping postgres: %w", ErrStoreUnavailable, err)
	}
	return conn, nil
}

func isMemoryPath(path string) bool {
	return path == "" || path == ":memory:" || strings.HasPrefix(path, ":memory:")
}

// Driver returns the configured driver name (duckdb or postgres).
func (db *DB) Driver() string {
	return db.driver
}

// Conn returns the underlying sqlx handle.
func (db *DB) Conn() *sqlx.DB {
	return db.conn
}

// Close closes the connection pool. DuckDB files are checkpointed first so the
// WAL does not need replaying on the next start.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}

	if db.driver == config.DriverDuckDB && !isMemoryPath(db.cfg.Path) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if _, err := db.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
			logging.Warn().Err(err).Msg("Failed to checkpoint database before close")
		}
		cancel()
	}

	return db.conn.Close()
}

// Ping checks if the metric store is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.conn == nil {
		return fmt.Errorf("%w: database connection is nil", ErrStoreUnavailable)
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	if err := db.conn.PingContext(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}

// initialize creates the metric table and its indexes.
func (db *DB) initialize() error {
	if err := db.createTables(); err != nil {
		return err
	}
	if db.cfg.SkipIndexes {
		return nil
	}
	return db.createIndexes()
}
