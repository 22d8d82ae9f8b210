// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/mzhvania/cityguide/internal/metrics"
)

func TestQueriesRecordDurationSamples(t *testing.T) {
	db := setupTestDB(t)
	seedBatumi(t, db)
	ctx := context.Background()

	if _, err := db.SearchPlaces(ctx, "", "cafe", noPrefs(), 10); err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if _, err := db.ListFavorites(ctx, 1); err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if _, err := db.GetUserPreferences(ctx, 1); err != nil {
		t.Fatalf("GetUserPreferences: %v", err)
	}

	// Each instrumented operation contributes its own labeled series.
	if got := testutil.CollectAndCount(metrics.DBQueryDuration, "duckdb_query_duration_seconds"); got < 3 {
		t.Errorf("duckdb_query_duration_seconds series = %d, want at least 3", got)
	}
}

func TestFailedQueryIncrementsErrorCounter(t *testing.T) {
	db := setupTestDB(t)
	seedBatumi(t, db)
	ctx := context.Background()

	counter := metrics.DBQueryErrors.WithLabelValues("search_places", "places")
	before := testutil.ToFloat64(counter)

	// Closing the connection makes the next query fail hard.
	if err := db.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if _, err := db.SearchPlaces(ctx, "", "cafe", noPrefs(), 10); err == nil {
		t.Fatal("SearchPlaces on closed database succeeded, want error")
	}

	if after := testutil.ToFloat64(counter); after != before+1 {
		t.Errorf("duckdb_query_errors_total delta = %v, want 1", after-before)
	}
}

func TestPlaceQueriesReusePreparedStatements(t *testing.T) {
	db := setupTestDB(t)
	seedBatumi(t, db)
	ctx := context.Background()

	cached := func() int {
		db.stmtCacheMu.RLock()
		defer db.stmtCacheMu.RUnlock()
		return len(db.stmtCache)
	}

	before := cached()
	if _, err := db.SearchPlaces(ctx, "", "cafe", noPrefs(), 10); err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	afterFirst := cached()
	if afterFirst != before+1 {
		t.Fatalf("statement cache grew by %d after first query, want 1", afterFirst-before)
	}

	// The identical query shape must hit the cached statement.
	if _, err := db.SearchPlaces(ctx, "", "bar", noPrefs(), 10); err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if got := cached(); got != afterFirst {
		t.Errorf("statement cache grew on repeated query shape: %d -> %d", afterFirst, got)
	}

	// A different shape (city-constrained) prepares its own statement.
	if _, err := db.SearchPlaces(ctx, "Batumi", "cafe", noPrefs(), 10); err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if got := cached(); got != afterFirst+1 {
		t.Errorf("statement cache = %d after new query shape, want %d", got, afterFirst+1)
	}
}
