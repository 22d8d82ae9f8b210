// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mzhvania/cityguide/internal/models"
)

// placeColumns is the shared column list for every place query. All query
// paths scan into the one models.Place record type.
const placeColumns = `p.id, p.city_id, c.name, p.name, p.category, p.description,
	p.address, p.hours, p.rating, p.lat, p.lon, p.url,
	p.kids_friendly, p.dog_friendly, p.price_level`

// prefFilterClause is the preference predicate rendered as SQL. It must stay
// behaviorally identical to guide.Qualifies: an ordered comparison for the
// 0/1 flags (requirement 0 matches everything, 1 matches flagged rows only)
// and an exact tier match unless the desired tier is 0.
const prefFilterClause = ` AND p.kids_friendly >= ? AND p.dog_friendly >= ? AND (? = 0 OR p.price_level = ?)`

// prefFilterArgs returns the bind arguments matching prefFilterClause.
func prefFilterArgs(prefs models.UserPreferences) []interface{} {
	return []interface{}{
		boolToInt(prefs.KidsFriendly),
		boolToInt(prefs.DogFriendly),
		prefs.PriceLevel,
		prefs.PriceLevel,
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// scanPlace scans one row of placeColumns into a Place.
func scanPlace(rows interface{ Scan(...interface{}) error }) (models.Place, error) {
	var p models.Place
	var kids, dog int
	err := rows.Scan(
		&p.ID, &p.CityID, &p.CityName, &p.Name, &p.Category, &p.Description,
		&p.Address, &p.Hours, &p.Rating, &p.Lat, &p.Lon, &p.URL,
		&kids, &dog, &p.PriceLevel,
	)
	if err != nil {
		return models.Place{}, err
	}
	p.KidsFriendly = kids != 0
	p.DogFriendly = dog != 0
	return p, nil
}

// collectPlaces drains rows into a slice.
func collectPlaces(rows *sql.Rows) ([]models.Place, error) {
	defer rows.Close() //nolint:errcheck // read-only cursor

	var places []models.Place
	for rows.Next() {
		p, err := scanPlace(rows)
		if err != nil {
			return nil, err
		}
		places = append(places, p)
	}
	return places, rows.Err()
}

// SearchPlaces performs a case-insensitive substring match against place
// name OR description, optionally constrained to a city, filtered by the
// preference predicate, ordered by rating descending and capped at limit.
//
// An empty query matches every row: the caller-facing behavior is an
// unfiltered browse capped at limit.
func (db *DB) SearchPlaces(ctx context.Context, city, query string, prefs models.UserPreferences, limit int) (places []models.Place, err error) {
	defer recordQuery("search_places", "places", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM places p
		JOIN cities c ON c.id = p.city_id
		WHERE (p.name ILIKE ? OR p.description ILIKE ?)`
	pattern := "%" + query + "%"
	args := []interface{}{pattern, pattern}

	if city != "" {
		sqlQuery += ` AND c.name = ?`
		args = append(args, city)
	}

	sqlQuery += prefFilterClause
	args = append(args, prefFilterArgs(prefs)...)

	sqlQuery += ` ORDER BY p.rating DESC LIMIT ?`
	args = append(args, limit)

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("search places", err)
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, storageErr("search places", err)
	}
	places, err = collectPlaces(rows)
	if err != nil {
		return nil, storageErr("search places", err)
	}
	return places, nil
}

// PlacesByCategory returns places matching city and category exactly,
// filtered by the preference predicate, ordered by rating descending and
// capped at limit.
func (db *DB) PlacesByCategory(ctx context.Context, city, category string, prefs models.UserPreferences, limit int) (places []models.Place, err error) {
	defer recordQuery("places_by_category", "places", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM places p
		JOIN cities c ON c.id = p.city_id
		WHERE c.name = ? AND p.category = ?`
	args := []interface{}{city, category}

	sqlQuery += prefFilterClause
	args = append(args, prefFilterArgs(prefs)...)

	sqlQuery += ` ORDER BY p.rating DESC LIMIT ?`
	args = append(args, limit)

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("places by category", err)
	}
	rows, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, storageErr("places by category", err)
	}
	places, err = collectPlaces(rows)
	if err != nil {
		return nil, storageErr("places by category", err)
	}
	return places, nil
}

// RandomPlace returns one uniformly random place from the city satisfying
// the preference predicate, or nil when no candidates qualify.
func (db *DB) RandomPlace(ctx context.Context, city string, prefs models.UserPreferences) (place *models.Place, err error) {
	defer recordQuery("random_place", "places", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM places p
		JOIN cities c ON c.id = p.city_id
		WHERE c.name = ?`
	args := []interface{}{city}

	sqlQuery += prefFilterClause
	args = append(args, prefFilterArgs(prefs)...)

	sqlQuery += ` ORDER BY random() LIMIT 1`

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("random place", err)
	}
	p, err := scanPlace(stmt.QueryRowContext(ctx, args...))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageErr("random place", err)
	}
	return &p, nil
}

// AllPlaces returns every place across all cities in insertion order. The
// radius scan deliberately reads the full table: at the row counts this
// guide targets a scan beats maintaining a spatial index, and ties in the
// distance sort keep insertion order.
func (db *DB) AllPlaces(ctx context.Context) (places []models.Place, err error) {
	defer recordQuery("all_places", "places", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM places p
		JOIN cities c ON c.id = p.city_id
		ORDER BY p.id`

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("all places", err)
	}
	rows, err := stmt.QueryContext(ctx)
	if err != nil {
		return nil, storageErr("all places", err)
	}
	places, err = collectPlaces(rows)
	if err != nil {
		return nil, storageErr("all places", err)
	}
	return places, nil
}

// PlaceByID returns one place by identifier, or nil when absent.
func (db *DB) PlaceByID(ctx context.Context, id int64) (place *models.Place, err error) {
	defer recordQuery("place_by_id", "places", time.Now(), &err)

	sqlQuery := `SELECT ` + placeColumns + `
		FROM places p
		JOIN cities c ON c.id = p.city_id
		WHERE p.id = ?`

	stmt, err := db.getStmt(ctx, sqlQuery)
	if err != nil {
		return nil, storageErr("place by id", err)
	}
	p, err := scanPlace(stmt.QueryRowContext(ctx, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, storageErr("place by id", err)
	}
	return &p, nil
}

// InsertPlace inserts a place row and returns its assigned identifier.
// Only the import path writes places; the core never mutates them.
func (db *DB) InsertPlace(ctx context.Context, p *models.Place) (id int64, err error) {
	defer recordQuery("insert_place", "places", time.Now(), &err)

	sqlQuery := `INSERT INTO places (
		city_id, name, category, description, address, hours,
		rating, lat, lon, url, kids_friendly, dog_friendly, price_level
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	RETURNING id`

	err = db.conn.QueryRowContext(ctx, sqlQuery,
		p.CityID, p.Name, p.Category, p.Description, p.Address, p.Hours,
		p.Rating, p.Lat, p.Lon, p.URL,
		boolToInt(p.KidsFriendly), boolToInt(p.DogFriendly), p.PriceLevel,
	).Scan(&id)
	if err != nil {
		return 0, storageErr("insert place", err)
	}
	return id, nil
}

// ListCities returns all cities ordered by name.
func (db *DB) ListCities(ctx context.Context) (cities []models.City, err error) {
	defer recordQuery("list_cities", "cities", time.Now(), &err)

	rows, err := db.conn.QueryContext(ctx, `SELECT id, name FROM cities ORDER BY name`)
	if err != nil {
		return nil, storageErr("list cities", err)
	}
	defer rows.Close() //nolint:errcheck // read-only cursor

	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, storageErr("list cities", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list cities", err)
	}
	return cities, nil
}

// CityIDByName returns the identifier for a city name, or (0, false) when
// the city is unknown.
func (db *DB) CityIDByName(ctx context.Context, name string) (id int64, ok bool, err error) {
	defer recordQuery("city_by_name", "cities", time.Now(), &err)

	err = db.conn.QueryRowContext(ctx, `SELECT id FROM cities WHERE name = ?`, name).Scan(&id)
	if err != nil {
		if isNoRows(err) {
			return 0, false, nil
		}
		return 0, false, storageErr("city by name", err)
	}
	return id, true, nil
}

// EnsureCity inserts the city if absent and returns its identifier.
func (db *DB) EnsureCity(ctx context.Context, name string) (id int64, err error) {
	defer recordQuery("ensure_city", "cities", time.Now(), &err)

	if name == "" {
		return 0, fmt.Errorf("ensure city: empty name")
	}

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO cities (name) VALUES (?) ON CONFLICT (name) DO NOTHING`, name)
	if err != nil {
		return 0, storageErr("ensure city", err)
	}

	id, ok, err := db.CityIDByName(ctx, name)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, storageErr("ensure city", fmt.Errorf("city %q missing after insert", name))
	}
	return id, nil
}
