// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

/*
schema.go - Database Schema Management

This file manages the DuckDB schema: table creation and index management.

Tables:
  - cities: static reference data (unique name per city)
  - places: imported points of interest, read-only after import
  - user_prefs: lazily materialized per-user settings (one row per user)
  - favorites: (user_id, place_id) membership set

Schema Strategy:
All columns are defined in the initial CREATE TABLE statements; there are no
migrations. kids_friendly and dog_friendly are stored as 0/1 integers so the
preference filter clause can use the same ordered comparison for "off"
(matches everything) and "on" (matches flagged rows only).

Index Strategy:
Indexes cover the frequent filters: places by city, by category, and by
rating (every ranked query orders by rating descending). The radius scan is
a deliberate full-table scan and uses no index.
*/
package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 60*time.Second)
}

// createTables creates the core database tables.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE SEQUENCE IF NOT EXISTS cities_id_seq`,
		`CREATE SEQUENCE IF NOT EXISTS places_id_seq`,

		`CREATE TABLE IF NOT EXISTS cities (
			id BIGINT PRIMARY KEY DEFAULT nextval('cities_id_seq'),
			name TEXT NOT NULL UNIQUE
		)`,

		`CREATE TABLE IF NOT EXISTS places (
			id BIGINT PRIMARY KEY DEFAULT nextval('places_id_seq'),
			city_id BIGINT NOT NULL,
			name TEXT NOT NULL,
			category TEXT NOT NULL,
			description TEXT DEFAULT '',
			address TEXT DEFAULT '',
			hours TEXT DEFAULT '',
			rating DOUBLE DEFAULT 0,
			lat DOUBLE DEFAULT 0,
			lon DOUBLE DEFAULT 0,
			url TEXT DEFAULT '',
			kids_friendly INTEGER DEFAULT 0,
			dog_friendly INTEGER DEFAULT 0,
			price_level INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS user_prefs (
			user_id BIGINT PRIMARY KEY,
			lang TEXT DEFAULT 'ru',
			kids_friendly INTEGER DEFAULT 0,
			dog_friendly INTEGER DEFAULT 0,
			price_level INTEGER DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS favorites (
			user_id BIGINT NOT NULL,
			place_id BIGINT NOT NULL,
			PRIMARY KEY (user_id, place_id)
		)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}

// createIndexes creates indexes for the common query patterns.
func (db *DB) createIndexes() error {
	ctx, cancel := schemaContext()
	defer cancel()

	queries := []string{
		`CREATE INDEX IF NOT EXISTS idx_places_city ON places (city_id)`,
		`CREATE INDEX IF NOT EXISTS idx_places_category ON places (category)`,
		`CREATE INDEX IF NOT EXISTS idx_places_rating ON places (rating)`,
		`CREATE INDEX IF NOT EXISTS idx_favorites_user ON favorites (user_id)`,
	}

	for _, query := range queries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute query: %s: %w", query, err)
		}
	}

	return nil
}
