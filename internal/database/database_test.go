// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"testing"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/models"
)

// testDBSemaphore serializes in-memory database lifecycles. Concurrent
// DuckDB CGO calls from parallel tests can hang under CI resource
// pressure, so only one test holds an open connection at a time. The
// semaphore is held for the whole test via t.Cleanup.
var testDBSemaphore = make(chan struct{}, 1)

// setupTestDB creates a new in-memory test database.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	cfg := &config.DatabaseConfig{
		Path:      ":memory:",
		MaxMemory: "1GB",
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return db
}

// seedBatumi populates the canonical test fixture: city Batumi with three
// places (two kid-friendly rated 4.5 and 4.0, one neither kid- nor
// dog-friendly at price tier 2 rated 3.0) plus one place in Kutaisi.
// Returns the Batumi place IDs in insertion order.
func seedBatumi(t *testing.T, db *DB) []int64 {
	t.Helper()
	ctx := context.Background()

	batumiID, err := db.EnsureCity(ctx, "Batumi")
	if err != nil {
		t.Fatalf("EnsureCity(Batumi): %v", err)
	}
	kutaisiID, err := db.EnsureCity(ctx, "Kutaisi")
	if err != nil {
		t.Fatalf("EnsureCity(Kutaisi): %v", err)
	}

	places := []models.Place{
		{
			CityID: batumiID, Name: "Seaside Fun Park", Category: "Парки",
			Description: "Rides and playgrounds on the boulevard",
			Rating:      4.5, Lat: 41.65, Lon: 41.65,
			KidsFriendly: true, DogFriendly: true, PriceLevel: 1,
		},
		{
			CityID: batumiID, Name: "Dolphin House Cafe", Category: "Питание",
			Description: "Family cafe near the dolphinarium",
			Rating:      4.0, Lat: 41.64, Lon: 41.62,
			KidsFriendly: true, PriceLevel: 2,
		},
		{
			CityID: batumiID, Name: "Old Port Wine Bar", Category: "Питание",
			Description: "Adult-only tasting room",
			Rating:      3.0, Lat: 41.65, Lon: 41.64,
			PriceLevel: 2,
		},
		{
			CityID: kutaisiID, Name: "Colchis Fountain Grill", Category: "Питание",
			Description: "Grill house on the central square",
			Rating:      4.8, Lat: 42.27, Lon: 42.70,
			KidsFriendly: true, PriceLevel: 1,
		},
	}

	ids := make([]int64, 0, 3)
	for i := range places {
		id, err := db.InsertPlace(ctx, &places[i])
		if err != nil {
			t.Fatalf("InsertPlace(%s): %v", places[i].Name, err)
		}
		if places[i].CityID == batumiID {
			ids = append(ids, id)
		}
	}
	return ids
}

func TestNewInitializesSchema(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	id, err := db.EnsureCity(ctx, "Batumi")
	if err != nil {
		t.Fatalf("EnsureCity: %v", err)
	}
	if id == 0 {
		t.Error("EnsureCity returned zero id")
	}

	// Ensure is idempotent and stable
	again, err := db.EnsureCity(ctx, "Batumi")
	if err != nil {
		t.Fatalf("EnsureCity (second): %v", err)
	}
	if again != id {
		t.Errorf("EnsureCity returned %d, want %d", again, id)
	}
}

func TestListCitiesOrdered(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	for _, name := range []string{"Tbilisi", "Batumi", "Kutaisi"} {
		if _, err := db.EnsureCity(ctx, name); err != nil {
			t.Fatalf("EnsureCity(%s): %v", name, err)
		}
	}

	cities, err := db.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	if len(cities) != 3 {
		t.Fatalf("ListCities returned %d cities, want 3", len(cities))
	}
	want := []string{"Batumi", "Kutaisi", "Tbilisi"}
	for i, c := range cities {
		if c.Name != want[i] {
			t.Errorf("cities[%d] = %q, want %q", i, c.Name, want[i])
		}
	}
}

func TestCityIDByNameUnknown(t *testing.T) {
	db := setupTestDB(t)

	_, found, err := db.CityIDByName(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("CityIDByName: %v", err)
	}
	if found {
		t.Error("unknown city should not be found")
	}
}
