// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package importer

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/database"
	"github.com/mzhvania/cityguide/internal/logging"
	"github.com/mzhvania/cityguide/internal/models"
)

var testDBSemaphore = make(chan struct{}, 1)

func newTestImporter(t *testing.T, cfg config.ImportConfig) (*Importer, *database.DB) {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() {
		<-testDBSemaphore
	})

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "1GB"})
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	})

	return New(db, cfg, logging.NewTestLogger(io.Discard)), db
}

const sampleCSV = `city,name,category,lat,lon,description,address,hours,rating,url,kids_friendly,dog_friendly,price_level
Batumi,Seaside Fun Park,Парки,41.65,41.65,Rides on the boulevard,Boulevard 1,10:00-22:00,4.5,,1,1,1
Batumi,Old Port Wine Bar,Питание,41.65,41.64,Tasting room,Port St 3,,3.0,,0,0,2
Kutaisi,Colchis Fountain Grill,Питание,42.27,42.70,Grill house,,,4.8,,1,0,1
`

func TestRunImportsRows(t *testing.T) {
	im, db := newTestImporter(t, config.ImportConfig{})
	ctx := context.Background()

	stats, err := im.Run(ctx, strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Imported != 3 || stats.Skipped != 0 || stats.Coerced != 0 {
		t.Errorf("stats = %+v, want 3 imported", stats)
	}
	if stats.RunID == "" {
		t.Error("stats missing run ID")
	}

	cities, err := db.ListCities(ctx)
	if err != nil {
		t.Fatalf("ListCities: %v", err)
	}
	if len(cities) != 2 {
		t.Errorf("imported %d cities, want 2", len(cities))
	}

	places, err := db.SearchPlaces(ctx, "Batumi", "", models.UserPreferences{}, 10)
	if err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if len(places) != 2 {
		t.Fatalf("Batumi has %d places, want 2", len(places))
	}
	for _, p := range places {
		if p.Name == "Seaside Fun Park" && (!p.KidsFriendly || !p.DogFriendly || p.PriceLevel != 1) {
			t.Errorf("fun park flags lost in import: %+v", p)
		}
	}
}

func TestRunSkipsRowsWithoutCity(t *testing.T) {
	im, _ := newTestImporter(t, config.ImportConfig{})

	csv := "city,name,category\n" +
		",Orphan Place,Парки\n" +
		"Batumi,Kept Place,Парки\n"
	stats, err := im.Run(context.Background(), strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Imported != 1 || stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 1 imported and 1 skipped", stats)
	}
}

func TestRunCoercesMalformedNumerics(t *testing.T) {
	im, db := newTestImporter(t, config.ImportConfig{})
	ctx := context.Background()

	csv := "city,name,category,lat,lon,rating,price_level\n" +
		"Batumi,Fuzzy Place,Парки,not-a-number,41.6,n/a,cheap\n"
	stats, err := im.Run(ctx, strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if stats.Imported != 1 || stats.Coerced != 1 {
		t.Errorf("stats = %+v, want 1 imported with coercion", stats)
	}

	places, err := db.SearchPlaces(ctx, "", "Fuzzy", models.UserPreferences{}, 10)
	if err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if len(places) != 1 {
		t.Fatalf("coerced row not inserted")
	}
	p := places[0]
	if p.Lat != 0 || p.Rating != 0 || p.PriceLevel != 0 {
		t.Errorf("malformed cells not zeroed: %+v", p)
	}
	if p.Lon != 41.6 {
		t.Errorf("valid cell lost: lon = %f", p.Lon)
	}
}

func TestRunHonorsRowLimit(t *testing.T) {
	im, db := newTestImporter(t, config.ImportConfig{MaxRows: 2})
	ctx := context.Background()

	stats, err := im.Run(ctx, strings.NewReader(sampleCSV))
	if err == nil {
		t.Fatal("Run over the row limit succeeded, want error")
	}
	if stats.Imported != 2 {
		t.Errorf("imported %d rows, want exactly the limit 2", stats.Imported)
	}

	// Rows before the limit persist.
	places, err := db.SearchPlaces(ctx, "", "", models.UserPreferences{}, 10)
	if err != nil {
		t.Fatalf("SearchPlaces: %v", err)
	}
	if len(places) != 2 {
		t.Errorf("persisted %d rows, want 2", len(places))
	}
}

func TestRunRejectsHeaderWithoutCity(t *testing.T) {
	im, _ := newTestImporter(t, config.ImportConfig{})

	_, err := im.Run(context.Background(), strings.NewReader("name,category\nX,Парки\n"))
	if err == nil || !strings.Contains(err.Error(), "city") {
		t.Errorf("Run without city column = %v, want missing-column error", err)
	}
}
