// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package metrics exposes Prometheus metrics for the scoring service.

	m := metrics.New()
	mux.Handle("GET /metrics", m.Handler())

Collectors:

  - quickly_score_score_submissions_total{outcome}: ok, invalid, closed, failed
  - quickly_score_score_submission_duration_seconds
  - quickly_score_import_rows_total{kind,result}
  - quickly_score_session_events_total{action}: activate, start, stop
  - quickly_score_http_requests_total{method,route,status}
  - quickly_score_http_request_duration_seconds{method,route}

A nil *Metrics is valid and records nothing, so metrics can be disabled
without nil checks at call sites.
*/
package metrics
