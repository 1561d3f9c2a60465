// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

// Package services holds the suture.Service implementations run by the
// supervisor tree: HTTPServerService for the API listener and
// StoreProbeService for the vidtrends_store_up gauge.
//
// Both return ctx.Err() on cancellation and implement fmt.Stringer so suture
// can name them in its event log.
package services
