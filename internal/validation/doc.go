// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator that knows the analytics request
// vocabulary and turns failures into field-level messages suitable for the
// VALIDATION_ERROR envelope.
//
// # Quick Start
//
//	type TopVideosRequest struct {
//	    Metric   string `query:"metric" validate:"required,metric"`
//	    Page     int    `query:"page" validate:"min=1"`
//	    PageSize int    `query:"page_size" validate:"min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    return analytics.InvalidArgument("top_videos", verr.Error(), verr.Details())
//	}
//
// Field names in messages come from the `query` struct tag, so a failure on
// PageSize reads "page_size must be at least 1", matching what the caller sent.
//
// # Custom Tags
//
//   - granularity: daily, weekly or monthly
//   - metric: views, likes, dislikes or comments
//   - videoid: 1-64 characters from [A-Za-z0-9_-]
//
// Single values can be checked with ValidateVar:
//
//	if verr := validation.ValidateVar("ids", id, "videoid"); verr != nil { ... }
//
// # Thread Safety
//
// The validator is initialized once via sync.Once and caches struct metadata,
// so concurrent calls from request goroutines are safe.
package validation
