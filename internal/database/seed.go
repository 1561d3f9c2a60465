// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/tomtom215/vidtrends/internal/logging"
	"github.com/tomtom215/vidtrends/internal/models"
)

// mockVideo describes the end state of one demo video after the seeded history.
type mockVideo struct {
	id       string
	views    int64
	likes    int64
	dislikes int64
	comments int64
}

// mockVideos are the demo videos the dashboard shipped with before it had a backend.
var mockVideos = []mockVideo{
	{"abc123", 1_000_000, 100_000, 2_000, 15_000},
	{"def456", 800_000, 80_000, 1_500, 12_000},
	{"ghi789", 600_000, 60_000, 1_000, 9_000},
	{"jkl012", 400_000, 40_000, 500, 6_000},
	{"mno345", 300_000, 30_000, 300, 4_500},
}

const (
	mockDaysOfHistory = 60
	mockSamplesPerDay = 2
	mockSeedStream    = 0x5eed
)

// mockStart is the first seeded day.
var mockStart = time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)

// GenerateMockSamples builds the deterministic demo history: two samples a day per
// video for 60 days, with counters growing towards each video's end state.
// The same call always returns the same samples.
func GenerateMockSamples() []models.MetricSample {
	rng := rand.New(rand.NewPCG(mockSeedStream, uint64(len(mockVideos))))

	samples := make([]models.MetricSample, 0, len(mockVideos)*mockDaysOfHistory*mockSamplesPerDay)
	for _, v := range mockVideos {
		var prev models.MetricSample
		total := mockDaysOfHistory * mockSamplesPerDay
		for i := 0; i < total; i++ {
			day := i / mockSamplesPerDay
			hour := 6 + (i%mockSamplesPerDay)*12
			minute := rng.IntN(60)

			// Linear growth towards the end state plus up to 2% jitter, never decreasing.
			frac := float64(i+1) / float64(total)
			jitter := 1 + (rng.Float64()-0.5)*0.04
			s := models.MetricSample{
				VideoID:    v.id,
				RecordedAt: mockStart.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute),
				Views:      max(prev.Views, int64(float64(v.views)*frac*jitter)),
				Likes:      max(prev.Likes, int64(float64(v.likes)*frac*jitter)),
				Dislikes:   max(prev.Dislikes, int64(float64(v.dislikes)*frac*jitter)),
				Comments:   max(prev.Comments, int64(float64(v.comments)*frac*jitter)),
			}
			samples = append(samples, s)
			prev = s
		}
	}
	return samples
}

// InsertSamples writes samples in a single transaction.
// It exists for the development seeder and tests; the HTTP surface never writes.
func (db *DB) InsertSamples(ctx context.Context, samples []models.MetricSample) error {
	if len(samples) == 0 {
		return nil
	}
	ctx, cancel := db.ensureContext(ctx)
	defer cancel()

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx, db.rebind(`
	INSERT INTO video_metrics (video_id, recorded_at, views, likes, dislikes, comments)
	VALUES (?, ?, ?, ?, ?, ?)`))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}

	for _, s := range samples {
		if _, err := stmt.ExecContext(ctx, s.VideoID, s.RecordedAt.UTC(), s.Views, s.Likes, s.Dislikes, s.Comments); err != nil {
			closeWithLog(stmt, "prepared statement")
			_ = tx.Rollback()
			return fmt.Errorf("failed to insert sample %s@%s: %w", s.VideoID, s.RecordedAt.Format(time.RFC3339), err)
		}
	}
	closeWithLog(stmt, "prepared statement")

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit samples: %w", err)
	}
	return nil
}

// SeedMockData inserts the demo history when the metric table is empty.
// Returns the number of samples written (0 when data already exists).
func (db *DB) SeedMockData(ctx context.Context) (int, error) {
	hasData, err := db.HasSamples(ctx)
	if err != nil {
		return 0, err
	}
	if hasData {
		logging.Info().Msg("Metric store already has samples, skipping mock data")
		return 0, nil
	}

	samples := GenerateMockSamples()
	logging.Info().Int("videos", len(mockVideos)).Int("samples", len(samples)).Msg("Seeding metric store with mock data...")

	if err := db.InsertSamples(ctx, samples); err != nil {
		return 0, fmt.Errorf("failed to seed mock data: %w", err)
	}

	logging.Info().Int("samples", len(samples)).Msg("Mock data seeded")
	return len(samples), nil
}
