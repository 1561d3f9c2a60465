// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package api provides the HTTP REST layer for Vidtrends.

Every endpoint is a read-only GET that calls one analytics.Service method and
wraps the result in the standard envelope:

	{"status": "success", "data": ..., "metadata": {"timestamp": ..., "query_time_ms": 3}}

Routes:

	GET /api/v1/trends             granularity (alias aggregation), video_id, start_date, end_date
	GET /api/v1/videos/top         metric, page, page_size
	GET /api/v1/videos/growth      limit
	GET /api/v1/videos/engagement  limit
	GET /api/v1/videos/compare     ids
	GET /health, /health/live, /health/ready
	GET /metrics                   Prometheus exposition
	GET /swagger/*                 OpenAPI UI

Failures are mapped from analytics.Kind in respondServiceError:

	KindInvalidArgument      400 VALIDATION_ERROR
	KindNotFound             404 NOT_FOUND
	KindUpstreamUnavailable  503 SERVICE_UNAVAILABLE
	KindInternal             500 INTERNAL_ERROR

The /api/v1 group is rate limited per client IP with go-chi/httprate and
answers 429 RATE_LIMIT_EXCEEDED when the budget is spent. CORS origins come
from the security configuration and default to none.

Usage:

	svc := analytics.NewService(db, cfg.API)
	handler := api.NewHandler(svc, db, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(cfg.Security))
	http.ListenAndServe(":8080", api.NewRouter(handler, mw).SetupChi())
*/
package api
