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

// GetUserPreferences reads a user's stored preferences. When no row exists
// it inserts a default row (insert-if-absent, idempotent under concurrent
// first access) and returns the defaults.
func (db *DB) GetUserPreferences(ctx context.Context, userID int64) (prefs models.UserPreferences, err error) {
	defer recordQuery("get_preferences", "user_prefs", time.Now(), &err)

	const selectQ = `SELECT lang, kids_friendly, dog_friendly, price_level FROM user_prefs WHERE user_id = ?`

	stmt, err := db.getStmt(ctx, selectQ)
	if err != nil {
		return models.UserPreferences{}, storageErr("get user preferences", err)
	}

	var lang string
	var kids, dog, price int
	err = stmt.QueryRowContext(ctx, userID).Scan(&lang, &kids, &dog, &price)
	if err != nil {
		if !isNoRows(err) {
			return models.UserPreferences{}, storageErr("get user preferences", err)
		}
		// Lazy materialization: create the default row on first access.
		_, err = db.conn.ExecContext(ctx,
			`INSERT INTO user_prefs (user_id) VALUES (?) ON CONFLICT (user_id) DO NOTHING`, userID)
		if err != nil {
			return models.UserPreferences{}, storageErr("create default preferences", err)
		}
		return models.DefaultPreferences(userID), nil
	}

	return models.UserPreferences{
		UserID:       userID,
		Lang:         lang,
		KidsFriendly: kids != 0,
		DogFriendly:  dog != 0,
		PriceLevel:   price,
	}, nil
}

// SetUserLang upserts the user's language code.
func (db *DB) SetUserLang(ctx context.Context, userID int64, lang string) (err error) {
	defer recordQuery("set_lang", "user_prefs", time.Now(), &err)

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO user_prefs (user_id, lang) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET lang = EXCLUDED.lang`,
		userID, lang)
	if err != nil {
		return storageErr("set user lang", err)
	}
	return nil
}

// TogglePreference reads the current value of an enumerated preference
// field, advances it to the next value in the supplied ordered cycle
// (wrapping at the end), persists the result atomically, and returns the
// new value.
//
// A stored value outside the cycle resets to the cycle's first value
// instead of failing. Each field variant has its own dedicated SQL: column
// names are never built from caller input.
func (db *DB) TogglePreference(ctx context.Context, userID int64, field models.PrefField, cycle []int) (next int, err error) {
	defer recordQuery("toggle_preference", "user_prefs", time.Now(), &err)

	var selectQ, upsertQ string
	switch field {
	case models.PrefKidsFriendly:
		selectQ = `SELECT kids_friendly FROM user_prefs WHERE user_id = ?`
		upsertQ = `INSERT INTO user_prefs (user_id, kids_friendly) VALUES (?, ?)
			ON CONFLICT (user_id) DO UPDATE SET kids_friendly = EXCLUDED.kids_friendly`
	case models.PrefDogFriendly:
		selectQ = `SELECT dog_friendly FROM user_prefs WHERE user_id = ?`
		upsertQ = `INSERT INTO user_prefs (user_id, dog_friendly) VALUES (?, ?)
			ON CONFLICT (user_id) DO UPDATE SET dog_friendly = EXCLUDED.dog_friendly`
	default:
		return 0, storageErr("toggle preference", errUnknownPrefField(field))
	}

	current := cycle[0]
	var stored int
	err = db.conn.QueryRowContext(ctx, selectQ, userID).Scan(&stored)
	switch {
	case err == nil:
		current = stored
	case !isNoRows(err):
		return 0, storageErr("toggle preference", err)
	}

	next = nextInCycle(current, cycle)

	if _, err := db.conn.ExecContext(ctx, upsertQ, userID, next); err != nil {
		return 0, storageErr("toggle preference", err)
	}
	return next, nil
}

// nextInCycle advances value to its successor in the ordered cycle. A value
// not present in the cycle resets to the cycle head.
func nextInCycle(value int, cycle []int) int {
	for i, v := range cycle {
		if v == value {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

// SetPriceLevel clamps level to [0,4] and upserts it.
func (db *DB) SetPriceLevel(ctx context.Context, userID int64, level int) (err error) {
	defer recordQuery("set_price_level", "user_prefs", time.Now(), &err)

	level = models.ClampPriceLevel(level)

	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO user_prefs (user_id, price_level) VALUES (?, ?)
		 ON CONFLICT (user_id) DO UPDATE SET price_level = EXCLUDED.price_level`,
		userID, level)
	if err != nil {
		return storageErr("set price level", err)
	}
	return nil
}

type errUnknownPrefField models.PrefField

func (e errUnknownPrefField) Error() string {
	return "unknown preference field " + models.PrefField(e).String()
}
