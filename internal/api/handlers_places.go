// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"net/http"
	"time"

	"github.com/mzhvania/cityguide/internal/guide"
	"github.com/mzhvania/cityguide/internal/i18n"
	"github.com/mzhvania/cityguide/internal/models"
)

// nearbyRequest carries the validated radius-scan parameters.
type nearbyRequest struct {
	Lat      float64 `validate:"latitude"`
	Lon      float64 `validate:"longitude"`
	RadiusKm float64 `validate:"omitempty,gte=0,lte=100"`
}

// Cities lists every city that has places.
func (h *Handler) Cities(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cities, err := h.svc.Cities(r.Context())
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}
	respondSuccess(w, cities, start)
}

// Categories lists the fixed category set.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, models.Categories, time.Now())
}

// PlaceByID returns a single place rendered in the default language.
// This endpoint has no user context, so no preference lookup happens.
func (h *Handler) PlaceByID(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	placeID, err := placeIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid place ID", nil)
		return
	}

	place, err := h.svc.Place(r.Context(), placeID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}
	respondSuccess(w, models.PlaceCard{
		Place: *place,
		Text:  guide.FormatPlace(i18n.DefaultLang, *place),
	}, start)
}

// InlineSearch runs a global, unfiltered substring search. Meant for
// quick-lookup clients that have no user context; cards render in the
// default language.
func (h *Handler) InlineSearch(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	places, err := h.svc.InlineSearch(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}
	respondSuccess(w, placesPayload(i18n.DefaultLang, places, "search.empty"), start)
}

// Search runs a preference-filtered search in the user's session city.
// An empty q browses everything that passes the filters.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
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

	places, err := h.svc.Search(r.Context(), userID, r.URL.Query().Get("q"))
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, placesPayload(prefs.Lang, places, "search.empty"), start)
}

// BrowseCategory lists one category in the user's session city.
func (h *Handler) BrowseCategory(w http.ResponseWriter, r *http.Request) {
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

	places, err := h.svc.BrowseCategory(r.Context(), userID, r.URL.Query().Get("category"))
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, placesPayload(prefs.Lang, places, "search.empty"), start)
}

// Random picks one qualifying place at random. A 404 with code
// NO_MATCH means nothing passed the user's filters, as opposed to a
// 503 when storage is down.
func (h *Handler) Random(w http.ResponseWriter, r *http.Request) {
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

	place, err := h.svc.Random(r.Context(), userID)
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	if place == nil {
		respondError(w, http.StatusNotFound, "NO_MATCH",
			i18n.T(prefs.Lang, "random.empty"), nil)
		return
	}
	respondSuccess(w, models.PlaceCard{
		Place: *place,
		Text:  guide.FormatPlace(prefs.Lang, *place),
	}, start)
}

// Nearby returns qualifying places around a point, closest first.
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	req := nearbyRequest{
		Lat:      getFloatParam(r, "lat", 0),
		Lon:      getFloatParam(r, "lon", 0),
		RadiusKm: getFloatParam(r, "radius_km", 0),
	}
	if r.URL.Query().Get("lat") == "" || r.URL.Query().Get("lon") == "" {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "lat and lon are required", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	radius := req.RadiusKm
	if radius <= 0 {
		radius = h.config.Guide.DefaultRadiusKm
	}

	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	results, err := h.svc.Nearby(r.Context(), userID, req.Lat, req.Lon, radius)
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}

	resp := models.NearbyResponse{
		Results:  nearbyCards(prefs.Lang, results),
		RadiusKm: radius,
		Total:    len(results),
	}
	if len(results) == 0 {
		resp.Message = i18n.T(prefs.Lang, "nearby.empty")
	}
	respondSuccess(w, resp, start)
}
