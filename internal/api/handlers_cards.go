// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"github.com/mzhvania/cityguide/internal/guide"
	"github.com/mzhvania/cityguide/internal/i18n"
	"github.com/mzhvania/cityguide/internal/models"
)

// placeCards renders a place list into localized cards.
func placeCards(lang string, places []models.Place) []models.PlaceCard {
	cards := make([]models.PlaceCard, 0, len(places))
	for _, p := range places {
		cards = append(cards, models.PlaceCard{
			Place: p,
			Text:  guide.FormatPlace(lang, p),
		})
	}
	return cards
}

// nearbyCards renders radius-scan hits into localized, distance-prefixed
// cards.
func nearbyCards(lang string, results []models.NearbyPlace) []models.NearbyCard {
	cards := make([]models.NearbyCard, 0, len(results))
	for _, np := range results {
		cards = append(cards, models.NearbyCard{
			NearbyPlace: np,
			Text:        guide.FormatNearby(lang, np),
		})
	}
	return cards
}

// placesPayload builds the standard place-list payload, attaching the
// localized emptyKey message when nothing matched.
func placesPayload(lang string, places []models.Place, emptyKey string) models.PlacesResponse {
	resp := models.PlacesResponse{
		Places: placeCards(lang, places),
		Total:  len(places),
	}
	if len(places) == 0 {
		resp.Message = i18n.T(lang, emptyKey)
	}
	return resp
}
