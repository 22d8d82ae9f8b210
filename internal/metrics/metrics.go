// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "duckdb_query_duration_seconds",
			Help:    "Duration of DuckDB queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "duckdb_query_errors_total",
			Help: "Total number of DuckDB query errors",
		},
		[]string{"operation", "table"},
	)

	// API metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Recommendation metrics
	RecommendationsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_served_total",
			Help: "Total recommendation results served by operation",
		},
		[]string{"operation"}, // "search", "category", "random", "nearby", "favorites"
	)

	RecommendationEmpty = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_empty_total",
			Help: "Total recommendation queries that matched nothing",
		},
		[]string{"operation"},
	)

	// Preference cache metrics
	PrefsCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prefs_cache_hits_total",
			Help: "Total number of preference cache hits",
		},
	)

	PrefsCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prefs_cache_misses_total",
			Help: "Total number of preference cache misses",
		},
	)

	// CSV import metrics
	ImportRowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "import_rows_total",
			Help: "Total CSV import rows by outcome",
		},
		[]string{"outcome"}, // "imported", "coerced", "skipped"
	)

	ImportDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "import_duration_seconds",
			Help:    "Duration of CSV import runs in seconds",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	ImportLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "import_last_success_timestamp",
			Help: "Unix timestamp of last successful CSV import",
		},
	)
)

// RecordDBQuery tracks database query performance and errors.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest tracks API endpoint performance.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRecommendation tracks a served recommendation query.
func RecordRecommendation(operation string, results int) {
	RecommendationsServed.WithLabelValues(operation).Inc()
	if results == 0 {
		RecommendationEmpty.WithLabelValues(operation).Inc()
	}
}

// RecordPrefsCache tracks a preference cache lookup.
func RecordPrefsCache(hit bool) {
	if hit {
		PrefsCacheHits.Inc()
	} else {
		PrefsCacheMisses.Inc()
	}
}

// RecordImportRun tracks a completed CSV import.
func RecordImportRun(duration time.Duration, imported, coerced, skipped int, err error) {
	ImportDuration.Observe(duration.Seconds())
	ImportRowsTotal.WithLabelValues("imported").Add(float64(imported))
	ImportRowsTotal.WithLabelValues("coerced").Add(float64(coerced))
	ImportRowsTotal.WithLabelValues("skipped").Add(float64(skipped))
	if err == nil {
		ImportLastSuccess.SetToCurrentTime()
	}
}

// TrackActiveRequest adjusts the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
