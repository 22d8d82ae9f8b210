// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package models

// Categories is the fixed set of place categories known to the guide.
// Category values are stored verbatim in the places table; the UI layer
// localizes the labels.
var Categories = []string{
	"Питание",
	"Достопримечательности",
	"Музеи",
	"События",
	"Парки",
	"Спортзалы",
}

// IsKnownCategory reports whether cat is one of the guide's categories.
func IsKnownCategory(cat string) bool {
	for _, c := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// Place is a point of interest. Places are created by the import process
// and never mutated afterwards; every query path reads and returns this
// single record type.
type Place struct {
	ID           int64   `json:"id"`
	CityID       int64   `json:"city_id"`
	CityName     string  `json:"city,omitempty"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Description  string  `json:"description,omitempty"`
	Address      string  `json:"address,omitempty"`
	Hours        string  `json:"hours,omitempty"`
	Rating       float64 `json:"rating"` // 0 means unrated
	Lat          float64 `json:"lat"`
	Lon          float64 `json:"lon"`
	URL          string  `json:"url,omitempty"`
	KidsFriendly bool    `json:"kids_friendly"`
	DogFriendly  bool    `json:"dog_friendly"`
	PriceLevel   int     `json:"price_level"` // 0-4, 0 = unset/any
}

// City is static reference data: an identifier plus a unique name.
type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// NearbyPlace is a Place annotated with its great-circle distance from a
// radius-scan query point.
type NearbyPlace struct {
	DistanceKm float64 `json:"distance_km"`
	Place      Place   `json:"place"`
}

// Favorite is a (user, place) bookmark pairing. Set semantics: at most one
// row per pairing, idempotent add and remove.
type Favorite struct {
	UserID  int64 `json:"user_id"`
	PlaceID int64 `json:"place_id"`
}
