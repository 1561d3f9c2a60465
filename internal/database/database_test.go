// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/vidtrends/internal/config"
	"github.com/tomtom215/vidtrends/internal/models"
)

// testDBSemaphore serializes DuckDB usage across tests.
// Concurrent CGO calls from many parallel tests can hang under CI resource pressure,
// so the semaphore is held for the entire test lifecycle and released by t.Cleanup.
var testDBSemaphore = make(chan struct{}, 1)

// testDBConfig returns an in-memory DuckDB config with the breaker disabled.
func testDBConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Driver:       config.DriverDuckDB,
		Path:         ":memory:",
		MaxMemory:    "512MB",
		Threads:      2,
		QueryTimeout: 30 * time.Second,
	}
}

// setupTestDB creates a new in-memory test database.
// Creation runs in a goroutine with a 120-second timeout to fail fast if DuckDB hangs.
func setupTestDB(t *testing.T) *DB {
	t.Helper()
	return setupTestDBWithConfig(t, testDBConfig())
}

func setupTestDBWithConfig(t *testing.T, cfg *config.DatabaseConfig) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	type result struct {
		db  *DB
		err error
	}

	resultCh := make(chan result, 1)
	go func() {
		db, err := New(cfg)
		resultCh <- result{db: db, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil {
			t.Fatalf("Failed to create test database: %v", res.err)
		}
		t.Cleanup(func() {
			if err := res.db.Close(); err != nil {
				t.Logf("Failed to close test database: %v", err)
			}
		})
		return res.db
	case <-time.After(120 * time.Second):
		t.Fatalf("Timeout: database creation took longer than 120s")
		return nil
	}
}

// insertTestSamples writes samples and fails the test on error.
func insertTestSamples(t *testing.T, db *DB, samples ...models.MetricSample) {
	t.Helper()
	if err := db.InsertSamples(context.Background(), samples); err != nil {
		t.Fatalf("Failed to insert samples: %v", err)
	}
}

// sample builds a MetricSample at the given UTC time.
func sample(videoID string, at time.Time, views, likes, dislikes, comments int64) models.MetricSample {
	return models.MetricSample{
		VideoID:    videoID,
		RecordedAt: at,
		Views:      views,
		Likes:      likes,
		Dislikes:   dislikes,
		Comments:   comments,
	}
}

// day returns midnight UTC of the given date plus an hour offset.
func day(year int, month time.Month, d, hour int) time.Time {
	return time.Date(year, month, d, hour, 0, 0, 0, time.UTC)
}

func TestNew_UnsupportedDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "oracle", Path: ":memory:"})
	if err == nil {
		t.Fatal("New() expected error for unsupported driver")
	}
}

func TestNew_DefaultsToDuckDB(t *testing.T) {
	cfg := testDBConfig()
	cfg.Driver = ""
	db := setupTestDBWithConfig(t, cfg)

	if db.Driver() != config.DriverDuckDB {
		t.Errorf("Driver() = %q, want %q", db.Driver(), config.DriverDuckDB)
	}
	if db.Conn() == nil {
		t.Error("Conn() returned nil")
	}
}

func TestNew_SchemaIsIdempotent(t *testing.T) {
	db := setupTestDB(t)

	if err := db.initialize(); err != nil {
		t.Errorf("second initialize() failed: %v", err)
	}
}

func TestPing(t *testing.T) {
	db := setupTestDB(t)

	if err := db.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error: %v", err)
	}

	var nilDB *DB
	if err := nilDB.Ping(context.Background()); !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("nil Ping() error = %v, want ErrStoreUnavailable", err)
	}
}

func TestHasSamples(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	has, err := db.HasSamples(ctx)
	if err != nil {
		t.Fatalf("HasSamples() error: %v", err)
	}
	if has {
		t.Error("HasSamples() = true on empty store")
	}

	insertTestSamples(t, db, sample("v1", day(2024, 1, 1, 0), 1, 0, 0, 0))

	has, err = db.HasSamples(ctx)
	if err != nil {
		t.Fatalf("HasSamples() error: %v", err)
	}
	if !has {
		t.Error("HasSamples() = false after insert")
	}
}

func TestInsertSamples_RejectsDuplicateTimestamp(t *testing.T) {
	db := setupTestDB(t)
	at := day(2024, 1, 1, 12)

	insertTestSamples(t, db, sample("v1", at, 1, 0, 0, 0))

	err := db.InsertSamples(context.Background(), []models.MetricSample{sample("v1", at, 2, 0, 0, 0)})
	if err == nil {
		t.Error("expected primary key violation for duplicate (video_id, recorded_at)")
	}

	// Same instant for a different video is a distinct sample.
	insertTestSamples(t, db, sample("v2", at, 1, 0, 0, 0))
}

func TestNilStoreIsUnavailable(t *testing.T) {
	var db *DB

	_, err := db.TopGrowth(context.Background(), 10)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("TopGrowth() on nil store error = %v, want ErrStoreUnavailable", err)
	}
}

func TestClosedStoreIsUnavailable(t *testing.T) {
	db := setupTestDB(t)
	if err := db.conn.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	_, err := db.TopEngagement(context.Background(), 10)
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Errorf("TopEngagement() on closed store error = %v, want ErrStoreUnavailable", err)
	}
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		wantUnavailable bool
	}{
		{"nil", nil, false},
		{"deadline", fmt.Errorf("query: %w", context.DeadlineExceeded), true},
		{"connection refused", errors.New("dial tcp: connection refused"), true},
		{"closed pool", errors.New("sql: database is closed"), true},
		{"breaker open", gobreaker.ErrOpenState, true},
		{"already wrapped", fmt.Errorf("%w: boom", ErrStoreUnavailable), true},
		{"binder error", errors.New(`Binder Error: Referenced column "viewz" not found`), false},
		{"canceled by caller", context.Canceled, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyError(tt.err)
			if tt.err == nil {
				if got != nil {
					t.Errorf("classifyError(nil) = %v", got)
				}
				return
			}
			if errors.Is(got, ErrStoreUnavailable) != tt.wantUnavailable {
				t.Errorf("classifyError(%v) unavailable = %v, want %v", tt.err, !tt.wantUnavailable, tt.wantUnavailable)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("classifyError(%v) lost the original error", tt.err)
			}
		})
	}
}

func TestEnsureContext(t *testing.T) {
	db := &DB{cfg: &config.DatabaseConfig{QueryTimeout: 5 * time.Second}}

	ctx, cancel := db.ensureContext(context.Background())
	defer cancel()
	deadline, ok := ctx.Deadline()
	if !ok {
		t.Fatal("ensureContext() did not set a deadline")
	}
	if remaining := time.Until(deadline); remaining > 5*time.Second || remaining < 4*time.Second {
		t.Errorf("deadline in %v, want about 5s", remaining)
	}

	parent, parentCancel := context.WithTimeout(context.Background(), time.Minute)
	defer parentCancel()
	kept, keptCancel := db.ensureContext(parent)
	defer keptCancel()
	if kept != parent {
		t.Error("ensureContext() replaced a context that already had a deadline")
	}
}

func TestConfigureConnectionPool_Defaults(t *testing.T) {
	db := setupTestDB(t)

	stats := db.conn.Stats()
	if stats.MaxOpenConnections <= 0 {
		t.Errorf("MaxOpenConnections = %d, want > 0", stats.MaxOpenConnections)
	}
}
