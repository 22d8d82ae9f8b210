// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package guide implements the recommendation service on top of the
// database layer: preference-filtered search and category browsing,
// random picks, proximity queries, favorites, and per-user session
// state. All user-visible ordering and filtering rules live here and in
// the SQL the database package issues; the two are kept equivalent so a
// place qualifies in memory exactly when it qualifies in a query.
package guide
