// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

/*
Package models defines data structures for the CityGuide application.

This package contains all data models used throughout the application:
database records, API request/response structures, and internal data
transfer objects. It serves as the single source of truth for data
structure definitions.

Key Components:

  - Place: a point of interest with location, category, and descriptive
    attributes. Every query path returns this one record type.
  - City: static reference data (identifier + unique name).
  - UserPreferences: per-user settings driving the filter predicate.
  - Favorite: a (user, place) bookmark pairing with set semantics.
  - NearbyPlace: a Place annotated with its distance from a query point.
  - PrefField: enumerated preference-field variants for toggle operations.
  - APIResponse: standardized API response wrapper.
*/
package models
