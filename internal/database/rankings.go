// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"fmt"

	"github.com/tomtom215/vidtrends/internal/metrics"
	"github.com/tomtom215/vidtrends/internal/models"
)

// This file contains the ranking engine. Every ranking breaks ties on video_id
// ascending, so repeated calls against an unchanged store return identical pages.
//
// Counters are cumulative at the source. A video's summary is therefore its
// latest sample; summing historical snapshots would double count.

// TopByMetric ranks videos by the chosen counter of their latest sample.
// offset and limit select the page; an offset past the end returns an empty slice.
func (db *DB) TopByMetric(ctx context.Context, metric models.Metric, offset, limit int) ([]models.VideoSummary, error) {
	column, ok := metric.Column()
	if !ok {
		return nil, fmt.Errorf("top by metric: unsupported metric %q", metric)
	}
	if offset < 0 || limit <= 0 {
		return nil, fmt.Errorf("top by metric: invalid page offset=%d limit=%d", offset, limit)
	}

	// column comes from the closed Metric enum, never from caller text.
	query := db.rebind(fmt.Sprintf(`
	WITH latest AS (
		SELECT
			video_id, recorded_at, views, likes, dislikes, comments,
			ROW_NUMBER() OVER (PARTITION BY video_id ORDER BY recorded_at DESC) AS rn
		FROM video_metrics
	)
	SELECT video_id, recorded_at, views, likes, dislikes, comments
	FROM latest
	WHERE rn = 1
	ORDER BY %s DESC, video_id ASC
	LIMIT ? OFFSET ?`, column))

	rows, err := runQuery(ctx, db, "top_by_metric", func(ctx context.Context) ([]models.VideoSummary, error) {
		var out []models.VideoSummary
		if err := db.conn.SelectContext(ctx, &out, query, limit, offset); err != nil {
			return nil, fmt.Errorf("failed to query top videos by %s: %w", column, err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Rank = offset + i + 1
		rows[i].RecordedAt = rows[i].RecordedAt.UTC()
	}
	metrics.RecordRows("top_by_metric", len(rows))

	return nonNil(rows), nil
}

// TopGrowth ranks videos by MAX(views) - MIN(views) over their full history.
// A video with a single sample has growth 0.
func (db *DB) TopGrowth(ctx context.Context, limit int) ([]models.GrowthRow, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("top growth: invalid limit %d", limit)
	}

	query := db.rebind(`
	SELECT
		video_id,
		MAX(views) - MIN(views) AS growth,
		MIN(views) AS min_views,
		MAX(views) AS max_views,
		COUNT(*) AS sample_count
	FROM video_metrics
	GROUP BY video_id
	ORDER BY growth DESC, video_id ASC
	LIMIT ?`)

	rows, err := runQuery(ctx, db, "top_growth", func(ctx context.Context) ([]models.GrowthRow, error) {
		var out []models.GrowthRow
		if err := db.conn.SelectContext(ctx, &out, query, limit); err != nil {
			return nil, fmt.Errorf("failed to query top growth: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Rank = i + 1
	}
	metrics.RecordRows("top_growth", len(rows))

	return nonNil(rows), nil
}

// TopEngagement ranks videos by MAX(likes) + MAX(comments).
// The two maxima may come from different samples.
func (db *DB) TopEngagement(ctx context.Context, limit int) ([]models.EngagementRow, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("top engagement: invalid limit %d", limit)
	}

	query := db.rebind(`
	SELECT
		video_id,
		MAX(likes) + MAX(comments) AS engagement,
		MAX(likes) AS max_likes,
		MAX(comments) AS max_comments
	FROM video_metrics
	GROUP BY video_id
	ORDER BY engagement DESC, video_id ASC
	LIMIT ?`)

	rows, err := runQuery(ctx, db, "top_engagement", func(ctx context.Context) ([]models.EngagementRow, error) {
		var out []models.EngagementRow
		if err := db.conn.SelectContext(ctx, &out, query, limit); err != nil {
			return nil, fmt.Errorf("failed to query top engagement: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].Rank = i + 1
	}
	metrics.RecordRows("top_engagement", len(rows))

	return nonNil(rows), nil
}
