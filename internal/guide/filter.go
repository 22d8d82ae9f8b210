// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package guide

import "github.com/mzhvania/cityguide/internal/models"

// Qualifies reports whether a place passes the user's preference
// filters. It must stay equivalent to the SQL predicate the database
// layer applies: a required flag admits only places that have it, an
// unset flag admits everything, and price tier 0 means any tier.
func Qualifies(p models.Place, prefs models.UserPreferences) bool {
	if prefs.KidsFriendly && !p.KidsFriendly {
		return false
	}
	if prefs.DogFriendly && !p.DogFriendly {
		return false
	}
	if prefs.PriceLevel != 0 && p.PriceLevel != prefs.PriceLevel {
		return false
	}
	return true
}
