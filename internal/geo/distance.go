// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package geo provides great-circle distance computation for radius scans.
package geo

import "math"

// earthRadiusKm is the mean Earth radius of the spherical model.
const earthRadiusKm = 6371.0

// DistanceKm calculates the great-circle distance between two points on
// Earth using the Haversine formula. Returns distance in kilometers.
//
// Pure and deterministic: symmetric in its arguments, zero for identical
// points. Inputs are not validated; any finite coordinates are accepted.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	// Convert to radians
	lat1Rad := lat1 * math.Pi / 180.0
	lon1Rad := lon1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0
	lon2Rad := lon2 * math.Pi / 180.0

	// Haversine formula
	dLat := lat2Rad - lat1Rad
	dLon := lon2Rad - lon1Rad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
