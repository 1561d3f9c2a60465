// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

package models

import (
	"time"
)

// APIResponse represents the standardized wrapper returned by every HTTP endpoint.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": [{"period": "2024-W03", "avg_views": 1520.5, ...}],
//	  "metadata": {
//	    "timestamp": "2026-01-15T12:00:00Z",
//	    "query_time_ms": 12
//	  }
//	}
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "VALIDATION_ERROR",
//	    "message": "granularity must be one of: daily, weekly, monthly",
//	    "details": {"field": "granularity"}
//	  },
//	  "metadata": {"timestamp": "2026-01-15T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
//
// QueryTimeMS is the wall time spent in the analytics service for the request.
// Cached is always false today; the field is kept so clients written against a
// caching deployment keep decoding the envelope.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
}

// APIError represents an error response with structured error details.
//
// Error codes:
//   - VALIDATION_ERROR: Invalid input parameters (400)
//   - NOT_FOUND: No data to aggregate (404)
//   - RATE_LIMIT_EXCEEDED: Too many requests (429)
//   - SERVICE_UNAVAILABLE: Metric store unreachable (503)
//   - INTERNAL_ERROR: Anything else (500), never carries SQL text
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PaginationInfo contains page-based pagination metadata.
//
// HasMore is computed by fetching one row beyond the page, so it never needs a
// COUNT(*) over the store.
//
//	{"page": 2, "page_size": 10, "has_more": true}
type PaginationInfo struct {
	Page     int  `json:"page"`
	PageSize int  `json:"page_size"`
	HasMore  bool `json:"has_more"`
}

// TopVideosResponse wraps one page of the top-by-metric ranking.
type TopVideosResponse struct {
	Metric     Metric         `json:"metric"`
	Videos     []VideoSummary `json:"videos"`
	Pagination PaginationInfo `json:"pagination"`
}

// TrendsResponse wraps the buckets returned for a trend query.
type TrendsResponse struct {
	Granularity Granularity    `json:"granularity"`
	VideoID     string         `json:"video_id,omitempty"`
	Trends      []AggregateRow `json:"trends"`
}

// CompareResponse wraps the raw samples for a comparison request.
// VideoIDs echoes the normalized id list (trimmed, de-duplicated) that was queried.
type CompareResponse struct {
	VideoIDs []string       `json:"video_ids"`
	Samples  []MetricSample `json:"samples"`
}

// HealthStatus represents the body of GET /health.
type HealthStatus struct {
	Status            string  `json:"status"`
	Version           string  `json:"version"`
	DatabaseConnected bool    `json:"database_connected"`
	Uptime            float64 `json:"uptime"`
}
