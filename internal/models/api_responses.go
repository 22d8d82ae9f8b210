// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package models

import (
	"time"
)

// APIResponse represents a standardized API response wrapper used by all HTTP
// endpoints. It provides consistent structure for both successful and error
// responses, with metadata for observability.
//
// Status field values:
//   - "success": Request completed successfully, see Data field
//   - "error": Request failed, see Error field for details
//
// Example successful response:
//
//	{
//	  "status": "success",
//	  "data": {"places": [...]},
//	  "metadata": {
//	    "timestamp": "2026-08-31T12:00:00Z",
//	    "query_time_ms": 4
//	  }
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability and performance
// tracking. QueryTimeMS is the database query execution time in milliseconds.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError describes a failed request. Code is a stable machine-readable
// identifier (e.g. "VALIDATION_ERROR", "STORAGE_ERROR"); Message is
// human-readable.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// PlaceCard pairs a place record with its rendered, localized card text.
// The card is what chat-style clients show verbatim; structured fields
// remain available for richer clients.
type PlaceCard struct {
	Place
	Text string `json:"text"`
}

// NearbyCard pairs a radius-scan hit with its rendered card text.
type NearbyCard struct {
	NearbyPlace
	Text string `json:"text"`
}

// PlacesResponse is the payload for endpoints returning a ranked place list.
// Message carries a localized hint when the list is empty.
type PlacesResponse struct {
	Places  []PlaceCard `json:"places"`
	Total   int         `json:"total"`
	Message string      `json:"message,omitempty"`
}

// NearbyResponse is the payload for the radius-scan endpoint.
type NearbyResponse struct {
	Results  []NearbyCard `json:"results"`
	RadiusKm float64      `json:"radius_km"`
	Total    int          `json:"total"`
	Message  string       `json:"message,omitempty"`
}

// ImportResponse is the payload for a completed CSV import run.
type ImportResponse struct {
	RunID    string `json:"run_id"`
	Imported int    `json:"imported"`
	Coerced  int    `json:"coerced"`
	Skipped  int    `json:"skipped"`
}
