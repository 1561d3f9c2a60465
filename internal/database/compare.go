// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/vidtrends/internal/metrics"
	"github.com/tomtom215/vidtrends/internal/models"
)

// SamplesForVideos returns the raw samples of the listed videos, ordered by
// recorded_at then video_id. Ids not present in the store contribute no rows.
//
// Every id is bound as its own placeholder; sqlx.In expands IN (?) to IN (?, ?, ...).
func (db *DB) SamplesForVideos(ctx context.Context, videoIDs []string) ([]models.MetricSample, error) {
	if len(videoIDs) == 0 {
		return nil, errors.New("samples for videos: empty id list")
	}

	query, args, err := sqlx.In(`
	SELECT video_id, recorded_at, views, likes, dislikes, comments
	FROM video_metrics
	WHERE video_id IN (?)
	ORDER BY recorded_at ASC, video_id ASC`, videoIDs)
	if err != nil {
		return nil, fmt.Errorf("samples for videos: build query: %w", err)
	}
	query = db.rebind(query)

	rows, err := runQuery(ctx, db, "compare", func(ctx context.Context) ([]models.MetricSample, error) {
		var out []models.MetricSample
		if err := db.conn.SelectContext(ctx, &out, query, args...); err != nil {
			return nil, fmt.Errorf("failed to query samples: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].RecordedAt = rows[i].RecordedAt.UTC()
	}
	metrics.RecordRows("compare", len(rows))

	return nonNil(rows), nil
}
