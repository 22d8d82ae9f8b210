// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package guide

import (
	"fmt"
	"strings"

	"github.com/mzhvania/cityguide/internal/i18n"
	"github.com/mzhvania/cityguide/internal/models"
)

// MapURL returns a Google Maps link for the place's coordinates.
func MapURL(p models.Place) string {
	return fmt.Sprintf("https://maps.google.com/?q=%g,%g", p.Lat, p.Lon)
}

// FormatPlace renders a localized plain-text card for a place. Empty
// fields are omitted rather than rendered blank.
func FormatPlace(lang string, p models.Place) string {
	lines := make([]string, 0, 10)
	lines = append(lines, fmt.Sprintf("%s — %s", p.Name, p.Category))
	if p.Rating > 0 {
		lines = append(lines, i18n.T(lang, "place.rating", p.Rating))
	}
	if p.Description != "" {
		lines = append(lines, p.Description)
	}
	if p.Address != "" {
		lines = append(lines, i18n.T(lang, "place.address", p.Address))
	}
	if p.Hours != "" {
		lines = append(lines, i18n.T(lang, "place.hours", p.Hours))
	}

	tags := make([]string, 0, 3)
	if p.KidsFriendly {
		tags = append(tags, i18n.T(lang, "place.kids"))
	}
	if p.DogFriendly {
		tags = append(tags, i18n.T(lang, "place.dogs"))
	}
	if p.PriceLevel > 0 {
		tags = append(tags, i18n.T(lang, "place.price", priceLabel(lang, p.PriceLevel)))
	}
	if len(tags) > 0 {
		lines = append(lines, strings.Join(tags, " · "))
	}

	lines = append(lines, fmt.Sprintf("%s: %s", i18n.T(lang, "place.map"), MapURL(p)))
	if p.URL != "" {
		lines = append(lines, p.URL)
	}
	if p.CityName != "" {
		lines = append(lines, p.CityName)
	}
	return strings.Join(lines, "\n")
}

// FormatNearby renders a place card prefixed with its distance from
// the query point.
func FormatNearby(lang string, np models.NearbyPlace) string {
	return i18n.T(lang, "place.distance", np.DistanceKm) + "\n" + FormatPlace(lang, np.Place)
}

func priceLabel(lang string, level int) string {
	return i18n.T(lang, fmt.Sprintf("price.%d", models.ClampPriceLevel(level)))
}
