// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package models

// DefaultLang is the language assigned to a user on first contact.
const DefaultLang = "ru"

// Price level bounds. Level 0 means "no preference".
const (
	PriceLevelMin = 0
	PriceLevelMax = 4
)

// UserPreferences holds a user's stored guide settings. A row is created
// lazily with defaults on first access and is never deleted.
type UserPreferences struct {
	UserID       int64  `json:"user_id"`
	Lang         string `json:"lang"`
	KidsFriendly bool   `json:"kids_friendly"`
	DogFriendly  bool   `json:"dog_friendly"`
	PriceLevel   int    `json:"price_level"` // 0-4, 0 = no constraint
}

// DefaultPreferences returns the preference set assigned to a user who has
// no stored row yet.
func DefaultPreferences(userID int64) UserPreferences {
	return UserPreferences{
		UserID: userID,
		Lang:   DefaultLang,
	}
}

// ClampPriceLevel clamps level to the valid [PriceLevelMin, PriceLevelMax]
// range, storing the nearest boundary for out-of-range input.
func ClampPriceLevel(level int) int {
	if level < PriceLevelMin {
		return PriceLevelMin
	}
	if level > PriceLevelMax {
		return PriceLevelMax
	}
	return level
}

// PrefField enumerates the toggleable preference fields. Using an
// enumerated variant instead of raw column names keeps SQL generation
// out of caller hands: each variant maps to one dedicated update path.
type PrefField int

const (
	// PrefKidsFriendly is the kid-friendly requirement flag.
	PrefKidsFriendly PrefField = iota
	// PrefDogFriendly is the dog-friendly requirement flag.
	PrefDogFriendly
)

// String returns the field name for logging.
func (f PrefField) String() string {
	switch f {
	case PrefKidsFriendly:
		return "kids_friendly"
	case PrefDogFriendly:
		return "dog_friendly"
	default:
		return "unknown"
	}
}

// ToggleCycle is the ordered value cycle for boolean-like preference
// toggles. Toggling advances to the next value, wrapping at the end.
// A stored value outside the cycle resets to the cycle's first value.
var ToggleCycle = []int{0, 1}
