// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package middleware provides HTTP middleware for the analytics API.

Every component has the chi signature func(http.Handler) http.Handler:

  - RequestID: request and correlation IDs for structured logging
  - PrometheusMetrics: request count, latency and in-flight gauge, labelled by route pattern
  - Compression: gzip via github.com/klauspost/compress

Middleware Stack:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.Compression)

RequestID must run first so every later log line carries request_id.
PrometheusMetrics reads the chi route pattern after the handler returns, so
it must be mounted on a chi router.

Thread Safety:

All middleware is safe for concurrent use. Compression draws writers from a
sync.Pool; request state lives only in the request context.
*/
package middleware
