// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"time"

	"github.com/mzhvania/cityguide/internal/models"
)

// AddFavorite inserts a (user, place) membership record. Idempotent: adding
// an existing favorite is a no-op.
func (db *DB) AddFavorite(ctx context.Context, userID, placeID int64) (err error) {
	defer recordQuery("add_favorite", "favorites", time.Now(), &err)

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO favorites (user_id, place_id) VALUES (?, ?)
		 ON CONFLICT (user_id, place_id) DO NOTHING`,
		userID, placeID)
	if err != nil {
		return storageErr("add favorite", err)
	}
	return nil
}

// RemoveFavorite deletes a membership record. Removing a non-member is a
// no-op, not a failure.
func (db *DB) RemoveFavorite(ctx context.Context, userID, placeID int64) (err error) {
	defer recordQuery("remove_favorite", "favorites", time.Now(), &err)

	_, err = db.conn.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = ? AND place_id = ?`,
		userID, placeID)
	if err != nil {
		return storageErr("remove favorite", err)
	}
	return nil
}

// IsFavorite reports whether the user has bookmarked the place.
func (db *DB) IsFavorite(ctx context.Context, userID, placeID int64) (fav bool, err error) {
	defer recordQuery("is_favorite", "favorites", time.Now(), &err)

	var one int
	err = db.conn.QueryRowContext(ctx,
		`SELECT 1 FROM favorites WHERE user_id = ? AND place_id = ?`,
		userID, placeID).Scan(&one)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, storageErr("is favorite", err)
	}
	return true, nil
}

// ListFavorites returns the user's bookmarked places ordered by rating
// descending.
func (db *DB) ListFavorites(ctx context.Context, userID int64) (places []models.Place, err error) {
	defer recordQuery("list_favorites", "favorites", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM favorites f
		JOIN places p ON p.id = f.place_id
		JOIN cities c ON c.id = p.city_id
		WHERE f.user_id = ?
		ORDER BY p.rating DESC`

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("list favorites", err)
	}
	rows, err := stmt.QueryContext(ctx, userID)
	if err != nil {
		return nil, storageErr("list favorites", err)
	}
	places, err = collectPlaces(rows)
	if err != nil {
		return nil, storageErr("list favorites", err)
	}
	return places, nil
}
