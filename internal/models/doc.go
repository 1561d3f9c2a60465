// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package models defines data structures for the Vidtrends application.

This package contains the row types returned by the analytics queries, the
closed enums that select query behaviour, and the JSON envelope shared by all
HTTP endpoints. It has no dependencies on other internal packages.

Key Components:

  - MetricSample: one row of the video_metrics table
  - AggregateRow: averages for one time bucket
  - VideoSummary, GrowthRow, EngagementRow: ranking results
  - Granularity, Metric: closed enums validated at the request boundary
  - APIResponse, APIError, Metadata, PaginationInfo: response envelope

Bucketing:

Granularity maps to a DATE_TRUNC unit and a canonical label. All bucket starts
are UTC midnights; weekly buckets start on Monday and are labelled with the ISO
year and week, so 2023-12-31 (a Sunday) is 2023-W52 and 2024-01-01 is 2024-W01.

	g, ok := models.ParseGranularity("weekly")
	unit, _ := g.TruncUnit()          // "week"
	label := g.Label(row.PeriodStart) // "2024-W03"

JSON Serialization:

All field names are snake_case and all instants serialize as RFC 3339 in UTC.
Struct fields also carry db tags for sqlx; fields tagged db:"-" (Period, Rank)
are filled in after the query.
*/
package models
