// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package database

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/vidtrends/internal/metrics"
	"github.com/tomtom215/vidtrends/internal/models"
)

// This file contains the aggregation engine: time-bucketed averages over the
// metric store.
//
// Bucketing is DATE_TRUNC over the UTC recorded_at column:
//   - daily: calendar day
//   - weekly: ISO-8601 week, Monday start
//   - monthly: calendar month
//
// Only non-empty buckets are returned (GROUP BY never emits an empty group), in
// ascending bucket order. When more buckets exist than the limit, the earliest
// ones are kept.

// MaxTrendRows is the default and upper bound on buckets returned by QueryTrends.
const MaxTrendRows = 100

// TrendQuery describes one trend aggregation.
// Zero values mean "no filter"; StartDate and EndDate are inclusive.
type TrendQuery struct {
	Granularity models.Granularity
	VideoID     string
	StartDate   *time.Time
	EndDate     *time.Time
	Limit       int
}

// buildTrendsWhereClause constructs the WHERE conditions and arguments for a trend query.
// Returns the conditions (each prefixed with " AND ") and the argument slice.
func buildTrendsWhereClause(q TrendQuery) (string, []interface{}) {
	var (
		where strings.Builder
		args  []interface{}
	)

	if q.VideoID != "" {
		where.WriteString(" AND video_id = ?")
		args = append(args, q.VideoID)
	}
	if q.StartDate != nil {
		where.WriteString(" AND recorded_at >= ?")
		args = append(args, q.StartDate.UTC())
	}
	if q.EndDate != nil {
		where.WriteString(" AND recorded_at <= ?")
		args = append(args, q.EndDate.UTC())
	}

	return where.String(), args
}

// QueryTrends returns the average counters per time bucket.
//
// An unknown VideoID yields an empty slice. A granularity outside the closed set
// is a programming error here; request validation rejects it earlier.
func (db *DB) QueryTrends(ctx context.Context, q TrendQuery) ([]models.AggregateRow, error) {
	unit, ok := q.Granularity.TruncUnit()
	if !ok {
		return nil, fmt.Errorf("query trends: unsupported granularity %q", q.Granularity)
	}

	limit := q.Limit
	if limit <= 0 || limit > MaxTrendRows {
		limit = MaxTrendRows
	}

	whereClause, args := buildTrendsWhereClause(q)
	args = append(args, limit)

	// unit comes from the closed Granularity enum, never from caller text.
	bucketExpr := fmt.Sprintf("DATE_TRUNC('%s', recorded_at)", unit)
	query := db.rebind(fmt.Sprintf(`
	SELECT
		%[1]s AS bucket_start,
		AVG(CAST(views AS DOUBLE PRECISION)) AS avg_views,
		AVG(CAST(likes AS DOUBLE PRECISION)) AS avg_likes,
		AVG(CAST(dislikes AS DOUBLE PRECISION)) AS avg_dislikes,
		AVG(CAST(comments AS DOUBLE PRECISION)) AS avg_comments,
		COUNT(*) AS sample_count
	FROM video_metrics
	WHERE 1=1%[2]s
	GROUP BY %[1]s
	ORDER BY bucket_start ASC
	LIMIT ?`, bucketExpr, whereClause))

	rows, err := runQuery(ctx, db, "trends", func(ctx context.Context) ([]models.AggregateRow, error) {
		var out []models.AggregateRow
		if err := db.conn.SelectContext(ctx, &out, query, args...); err != nil {
			return nil, fmt.Errorf("failed to query trends: %w", err)
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}

	for i := range rows {
		rows[i].PeriodStart = q.Granularity.BucketStart(rows[i].PeriodStart)
		rows[i].Period = q.Granularity.Label(rows[i].PeriodStart)
	}
	metrics.RecordRows("trends", len(rows))

	return nonNil(rows), nil
}
