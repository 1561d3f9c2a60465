// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

// @title Vidtrends API
// @version 1.0
// @description Read-only trend and ranking analytics over periodic video performance samples.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api/v1.
// @description Rate limit headers are included in responses: `X-RateLimit-Limit`, `X-RateLimit-Remaining`, `X-RateLimit-Reset`.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "data": null,
// @description   "error": {
// @description     "code": "VALIDATION_ERROR",
// @description     "message": "granularity must be one of: daily, weekly, monthly",
// @description     "details": {"field": "granularity"}
// @description   },
// @description   "metadata": {
// @description     "timestamp": "2026-01-15T12:00:00Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/vidtrends/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8080
// @BasePath /
// @schemes http https
//
// @tag.name Trends
// @tag.description Time-bucketed averages of video counters
//
// @tag.name Videos
// @tag.description Video rankings and comparisons
//
// @tag.name Health
// @tag.description Liveness, readiness and status
package main
