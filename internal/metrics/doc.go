// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

/*
Package metrics provides Prometheus metrics collection and export.

The package instruments HTTP request latency and throughput, DuckDB
query performance, recommendation query outcomes, the preference
cache, and CSV import runs. Metrics are exposed at the /metrics
endpoint in Prometheus text format:

	curl http://localhost:8080/metrics

All collectors are registered once at package load via promauto;
callers use the Record* helpers rather than touching collectors
directly.
*/
package metrics
