// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package guide

import (
	"strings"
	"testing"

	"github.com/mzhvania/cityguide/internal/models"
)

func TestFormatPlaceFullCard(t *testing.T) {
	t.Parallel()

	p := models.Place{
		Name: "Seaside Fun Park", Category: "Парки", CityName: "Batumi",
		Description: "Rides and playgrounds on the boulevard",
		Address:     "Batumi Boulevard 1", Hours: "10:00-22:00",
		Rating: 4.5, Lat: 41.65, Lon: 41.65, URL: "https://funpark.example",
		KidsFriendly: true, DogFriendly: true, PriceLevel: 1,
	}

	card := FormatPlace("en", p)
	for _, want := range []string{
		"Seaside Fun Park — Парки",
		"Rating: 4.5",
		"Rides and playgrounds",
		"Address: Batumi Boulevard 1",
		"Opening hours: 10:00-22:00",
		"Kid-friendly",
		"Dogs welcome",
		"https://maps.google.com/?q=41.65,41.65",
		"https://funpark.example",
		"Batumi",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
}

func TestFormatPlaceOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	p := models.Place{Name: "Bare Spot", Category: "Парки", Lat: 1, Lon: 2}
	card := FormatPlace("en", p)

	for _, absent := range []string{"Rating:", "Address:", "Opening hours:", "Prices:"} {
		if strings.Contains(card, absent) {
			t.Errorf("card contains %q for an empty field:\n%s", absent, card)
		}
	}
	if strings.Contains(card, "\n\n") {
		t.Errorf("card has blank lines:\n%s", card)
	}
}

func TestFormatPlaceLocalized(t *testing.T) {
	t.Parallel()

	p := models.Place{Name: "X", Category: "Музеи", Rating: 4.0, Lat: 1, Lon: 2}
	ru := FormatPlace("ru", p)
	if !strings.Contains(ru, "Рейтинг: 4.0") {
		t.Errorf("russian card missing localized rating:\n%s", ru)
	}
}

func TestFormatNearbyPrefixesDistance(t *testing.T) {
	t.Parallel()

	np := models.NearbyPlace{
		DistanceKm: 1.37,
		Place:      models.Place{Name: "X", Category: "Парки", Lat: 1, Lon: 2},
	}
	card := FormatNearby("en", np)
	if !strings.HasPrefix(card, "Distance: 1.4 km") {
		t.Errorf("nearby card = %q, want distance prefix", card)
	}
}
