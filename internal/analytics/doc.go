// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

// Package analytics is the query layer between the HTTP handlers and the metric store.
//
// Each Service method takes an explicit request struct, validates it once with
// the shared validator, runs a single store query and shapes the result.
// Failures come back as *Error carrying a Kind:
//
//	KindInvalidArgument      bad input (400)
//	KindNotFound             unfiltered trend query over an empty store (404)
//	KindUpstreamUnavailable  store unreachable, breaker open or deadline hit (503)
//	KindInternal             anything else (500); the message is always generic
//
// Callers branch on KindOf(err) and never parse error text.
package analytics
