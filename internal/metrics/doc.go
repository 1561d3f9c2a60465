// Vidtrends - Video Performance Trend Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vidtrends

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and are
exposed at /metrics by the API router:

	curl http://localhost:3000/metrics

# Available Metrics

Database Metrics:
  - vidtrends_db_query_duration_seconds: Query execution time (histogram)
    Labels: operation, table
  - vidtrends_db_query_errors_total: Failed queries (counter)
    Labels: operation, table, error_type (timeout, canceled, connection, breaker_open, query)
  - vidtrends_db_rows_returned: Rows returned per analytics query (histogram)
    Labels: operation
  - vidtrends_store_up: Result of the last store health probe (gauge, 0 or 1)

API Metrics:
  - vidtrends_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - vidtrends_api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - vidtrends_api_active_requests: In-flight requests (gauge)
  - vidtrends_api_rate_limit_hits_total: Rate limit rejections (counter)
  - vidtrends_api_errors_total: Analytics failures by taxonomy kind (counter)
    Labels: operation, kind

Circuit Breaker Metrics:
  - vidtrends_circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - vidtrends_circuit_breaker_requests_total: Labels name, result
  - vidtrends_circuit_breaker_transitions_total: Labels name, from, to

# Example PromQL

	# p95 trend query latency
	histogram_quantile(0.95, rate(vidtrends_db_query_duration_seconds_bucket{operation="trends"}[5m]))

	# store outage
	vidtrends_store_up == 0 or vidtrends_circuit_breaker_state > 0

# Cardinality Management

Endpoint labels are chi route patterns, never raw paths, and error types are a
fixed set, so no label carries caller-controlled text.

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
