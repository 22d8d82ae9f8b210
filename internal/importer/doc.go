// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package importer loads places from CSV uploads into the database.
//
// The expected format is a header row naming any subset of the columns
// city, name, category, lat, lon, description, address, hours, rating,
// url, kids_friendly, dog_friendly, price_level. Rows without a city
// are skipped; malformed numeric cells are coerced to zero rather than
// failing the run, and each coercion is counted in the run's stats.
// Inserts are row-by-row, so a failing run keeps the rows imported
// before the failure.
package importer
