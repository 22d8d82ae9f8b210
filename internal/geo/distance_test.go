// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package geo

import (
	"math"
	"testing"
)

func TestDistanceKm_KnownDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolKm                  float64
	}{
		{
			name: "identical points",
			lat1: 41.64, lon1: 41.64, lat2: 41.64, lon2: 41.64,
			wantKm: 0, tolKm: 1e-9,
		},
		{
			name: "batumi short hop",
			lat1: 41.64, lon1: 41.64, lat2: 41.65, lon2: 41.65,
			wantKm: 1.4, tolKm: 0.1,
		},
		{
			name: "new york to london",
			lat1: 40.7128, lon1: -74.0060, lat2: 51.5074, lon2: -0.1278,
			wantKm: 5570, tolKm: 20,
		},
		{
			name: "equator degree of longitude",
			lat1: 0, lon1: 0, lat2: 0, lon2: 1,
			wantKm: 111.19, tolKm: 0.5,
		},
		{
			name: "pole to pole",
			lat1: 90, lon1: 0, lat2: -90, lon2: 0,
			wantKm: math.Pi * 6371.0, tolKm: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.wantKm) > tt.tolKm {
				t.Errorf("DistanceKm() = %f, want %f ± %f", got, tt.wantKm, tt.tolKm)
			}
		})
	}
}

func TestDistanceKm_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{41.64, 41.64, 41.65, 41.65},
		{40.7128, -74.0060, 51.5074, -0.1278},
		{-33.8688, 151.2093, 59.3293, 18.0686},
		{0, 179.9, 0, -179.9}, // across the antimeridian
	}

	for _, p := range pairs {
		ab := DistanceKm(p[0], p[1], p[2], p[3])
		ba := DistanceKm(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Errorf("asymmetric distance: d(a,b)=%f d(b,a)=%f for %v", ab, ba, p)
		}
		if ab < 0 {
			t.Errorf("negative distance %f for %v", ab, p)
		}
	}
}

func TestDistanceKm_OutOfRangeInputsAccepted(t *testing.T) {
	t.Parallel()

	// No validation is performed; any finite inputs yield a finite result.
	got := DistanceKm(200, 400, -300, -500)
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Errorf("DistanceKm with out-of-range inputs = %f, want finite", got)
	}
}
