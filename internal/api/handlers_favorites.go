// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"net/http"
	"time"

	"github.com/mzhvania/cityguide/internal/i18n"
)

type addFavoriteRequest struct {
	PlaceID int64 `json:"place_id" validate:"required,min=1"`
}

// Favorites lists the user's bookmarked places, best-rated first.
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	places, err := h.svc.Favorites(r.Context(), userID)
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, placesPayload(prefs.Lang, places, "favorites.empty"), start)
}

// AddFavorite bookmarks a place. Adding a bookmark twice succeeds
// without creating a duplicate.
func (h *Handler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	var req addFavoriteRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	if err := h.svc.AddFavorite(r.Context(), userID, req.PlaceID); err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, map[string]interface{}{
		"place_id": req.PlaceID,
		"favorite": true,
		"message":  i18n.T(prefs.Lang, "favorites.added"),
	}, start)
}

// RemoveFavorite drops a bookmark. Removing an absent one succeeds.
func (h *Handler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}
	placeID, err := placeIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid place ID", nil)
		return
	}

	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	if err := h.svc.RemoveFavorite(r.Context(), userID, placeID); err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, map[string]interface{}{
		"place_id": placeID,
		"favorite": false,
		"message":  i18n.T(prefs.Lang, "favorites.removed"),
	}, start)
}
