// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package analytics

import (
	"strings"
	"time"
)

// TrendsRequest is the input of GetTrends.
// StartDate and EndDate accept RFC 3339 or YYYY-MM-DD; a bare EndDate covers the whole day.
type TrendsRequest struct {
	Granularity string `query:"granularity" validate:"required,granularity"`
	VideoID     string `query:"video_id" validate:"omitempty,videoid"`
	StartDate   string `query:"start_date"`
	EndDate     string `query:"end_date"`
}

// TopVideosRequest is the input of GetTopVideos. Nil fields take the configured defaults.
type TopVideosRequest struct {
	Metric   string `query:"metric" validate:"omitempty,metric"`
	Page     *int   `query:"page" validate:"omitempty,gte=1,lte=1000000"`
	PageSize *int   `query:"page_size" validate:"omitempty,gte=1"`
}

// LimitRequest is the input of GetTopGrowth and GetMostEngaging.
type LimitRequest struct {
	Limit *int `query:"limit" validate:"omitempty,gte=1"`
}

// CompareRequest is the input of CompareVideos. VideoIDs is a comma-separated list.
type CompareRequest struct {
	VideoIDs string `query:"ids" validate:"required"`
}

// dateOnlyLayout is the short form accepted for trend windows.
const dateOnlyLayout = "2006-01-02"

// parseDateBound parses a window bound. A date-only end bound is moved to the
// last instant of that day so the window stays inclusive.
func parseDateBound(value string, end bool) (*time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, true
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		t = t.UTC()
		return &t, true
	}

	t, err := time.Parse(dateOnlyLayout, value)
	if err != nil {
		return nil, false
	}
	if end {
		t = t.AddDate(0, 0, 1).Add(-time.Microsecond)
	}
	return &t, true
}

// splitVideoIDs trims each comma-separated token, drops empty ones and removes
// duplicates, keeping first-seen order.
func splitVideoIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		id := strings.TrimSpace(p)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
