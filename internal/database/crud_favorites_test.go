// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"testing"
)

func TestAddFavoriteIdempotent(t *testing.T) {
	db := setupTestDB(t)
	ids := seedBatumi(t, db)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := db.AddFavorite(ctx, 1, ids[0]); err != nil {
			t.Fatalf("AddFavorite attempt %d: %v", i+1, err)
		}
	}

	favs, err := db.ListFavorites(ctx, 1)
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 1 {
		t.Errorf("duplicate add produced %d rows, want 1", len(favs))
	}
}

func TestRemoveFavorite(t *testing.T) {
	db := setupTestDB(t)
	ids := seedBatumi(t, db)
	ctx := context.Background()

	if err := db.AddFavorite(ctx, 2, ids[0]); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	if err := db.RemoveFavorite(ctx, 2, ids[0]); err != nil {
		t.Fatalf("RemoveFavorite: %v", err)
	}
	fav, err := db.IsFavorite(ctx, 2, ids[0])
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if fav {
		t.Error("place still favorite after removal")
	}

	// Removing an absent pair is a no-op, not an error.
	if err := db.RemoveFavorite(ctx, 2, ids[0]); err != nil {
		t.Errorf("RemoveFavorite of absent pair: %v", err)
	}
}

func TestIsFavorite(t *testing.T) {
	db := setupTestDB(t)
	ids := seedBatumi(t, db)
	ctx := context.Background()

	fav, err := db.IsFavorite(ctx, 3, ids[1])
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if fav {
		t.Error("IsFavorite true before any add")
	}

	if err := db.AddFavorite(ctx, 3, ids[1]); err != nil {
		t.Fatalf("AddFavorite: %v", err)
	}
	fav, err = db.IsFavorite(ctx, 3, ids[1])
	if err != nil {
		t.Fatalf("IsFavorite: %v", err)
	}
	if !fav {
		t.Error("IsFavorite false after add")
	}
}

func TestListFavoritesOrderedByRating(t *testing.T) {
	db := setupTestDB(t)
	ids := seedBatumi(t, db)
	ctx := context.Background()

	// Add in ascending-rating order, expect descending-rating output.
	for _, id := range []int64{ids[2], ids[1], ids[0]} {
		if err := db.AddFavorite(ctx, 4, id); err != nil {
			t.Fatalf("AddFavorite(%d): %v", id, err)
		}
	}

	favs, err := db.ListFavorites(ctx, 4)
	if err != nil {
		t.Fatalf("ListFavorites: %v", err)
	}
	if len(favs) != 3 {
		t.Fatalf("ListFavorites = %d rows, want 3", len(favs))
	}
	for i := 1; i < len(favs); i++ {
		if favs[i].Rating > favs[i-1].Rating {
			t.Errorf("favorites not ordered by rating: %v", placeNames(favs))
		}
	}
	if favs[0].CityName == "" {
		t.Error("favorite rows missing joined city name")
	}
}
