// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package models

import (
	"fmt"
	"strings"
	"time"
)

// Granularity is the calendar unit used to bucket samples for trend averages.
type Granularity string

const (
	// GranularityDaily buckets by UTC calendar day.
	GranularityDaily Granularity = "daily"
	// GranularityWeekly buckets by ISO-8601 week (Monday start, week 1 contains Jan 4).
	GranularityWeekly Granularity = "weekly"
	// GranularityMonthly buckets by UTC calendar month.
	GranularityMonthly Granularity = "monthly"
)

// ParseGranularity converts caller text into a Granularity.
// Matching ignores case and surrounding whitespace; anything else is rejected.
func ParseGranularity(s string) (Granularity, bool) {
	switch g := Granularity(strings.ToLower(strings.TrimSpace(s))); g {
	case GranularityDaily, GranularityWeekly, GranularityMonthly:
		return g, true
	default:
		return "", false
	}
}

// TruncUnit returns the DATE_TRUNC unit for the granularity.
// The second return value is false for values outside the closed set.
func (g Granularity) TruncUnit() (string, bool) {
	switch g {
	case GranularityDaily:
		return "day", true
	case GranularityWeekly:
		return "week", true
	case GranularityMonthly:
		return "month", true
	default:
		return "", false
	}
}

// BucketStart returns the start instant of the bucket containing t, in UTC.
// It matches DATE_TRUNC on a UTC TIMESTAMP column.
func (g Granularity) BucketStart(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	switch g {
	case GranularityWeekly:
		// Weekday() is 0 for Sunday; shift so Monday is 0.
		offset := (int(day.Weekday()) + 6) % 7
		return day.AddDate(0, 0, -offset)
	case GranularityMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	default:
		return day
	}
}

// Label returns the canonical, sortable period label for a bucket start.
//
//	daily   2024-01-15
//	weekly  2024-W03
//	monthly 2024-01
func (g Granularity) Label(start time.Time) string {
	start = start.UTC()
	switch g {
	case GranularityWeekly:
		year, week := start.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case GranularityMonthly:
		return start.Format("2006-01")
	default:
		return start.Format("2006-01-02")
	}
}

// Metric names a counter column of the video_metrics table.
type Metric string

const (
	MetricViews    Metric = "views"
	MetricLikes    Metric = "likes"
	MetricDislikes Metric = "dislikes"
	MetricComments Metric = "comments"
)

// ParseMetric converts caller text into a Metric. An empty string is not a metric;
// callers apply the views default before parsing.
func ParseMetric(s string) (Metric, bool) {
	switch m := Metric(strings.ToLower(strings.TrimSpace(s))); m {
	case MetricViews, MetricLikes, MetricDislikes, MetricComments:
		return m, true
	default:
		return "", false
	}
}

// Column returns the SQL column for the metric. Only values from the closed
// set map to a column, so the result is safe to inline in a query.
func (m Metric) Column() (string, bool) {
	switch m {
	case MetricViews, MetricLikes, MetricDislikes, MetricComments:
		return string(m), true
	default:
		return "", false
	}
}

// MetricSample is one row of the video_metrics table.
// RecordedAt is always UTC.
type MetricSample struct {
	VideoID    string    `json:"video_id" db:"video_id"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	Views      int64     `json:"views" db:"views"`
	Likes      int64     `json:"likes" db:"likes"`
	Dislikes   int64     `json:"dislikes" db:"dislikes"`
	Comments   int64     `json:"comments" db:"comments"`
}

// AggregateRow holds the averages for one non-empty time bucket.
// Period is derived from PeriodStart after the query; both sort identically.
type AggregateRow struct {
	Period      string    `json:"period" db:"-"`
	PeriodStart time.Time `json:"period_start" db:"bucket_start"`
	AvgViews    float64   `json:"avg_views" db:"avg_views"`
	AvgLikes    float64   `json:"avg_likes" db:"avg_likes"`
	AvgDislikes float64   `json:"avg_dislikes" db:"avg_dislikes"`
	AvgComments float64   `json:"avg_comments" db:"avg_comments"`
	SampleCount int64     `json:"sample_count" db:"sample_count"`
}

// VideoSummary carries a video's latest observed counters.
// Counters are cumulative at the source, so the latest sample is the summary; samples are never summed.
type VideoSummary struct {
	Rank       int       `json:"rank" db:"-"`
	VideoID    string    `json:"video_id" db:"video_id"`
	Views      int64     `json:"views" db:"views"`
	Likes      int64     `json:"likes" db:"likes"`
	Dislikes   int64     `json:"dislikes" db:"dislikes"`
	Comments   int64     `json:"comments" db:"comments"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
}

// GrowthRow is a video's view growth over its full sample history.
// Growth = MaxViews - MinViews, so a single sample yields 0.
type GrowthRow struct {
	Rank        int    `json:"rank" db:"-"`
	VideoID     string `json:"video_id" db:"video_id"`
	Growth      int64  `json:"growth" db:"growth"`
	MinViews    int64  `json:"min_views" db:"min_views"`
	MaxViews    int64  `json:"max_views" db:"max_views"`
	SampleCount int64  `json:"sample_count" db:"sample_count"`
}

// EngagementRow is a video's engagement score, MaxLikes + MaxComments.
type EngagementRow struct {
	Rank        int    `json:"rank" db:"-"`
	VideoID     string `json:"video_id" db:"video_id"`
	Engagement  int64  `json:"engagement" db:"engagement"`
	MaxLikes    int64  `json:"max_likes" db:"max_likes"`
	MaxComments int64  `json:"max_comments" db:"max_comments"`
}
