// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/mzhvania/cityguide/internal/i18n"
	"github.com/mzhvania/cityguide/internal/models"
)

type setPriceRequest struct {
	PriceLevel int `json:"price_level"`
}

type setLanguageRequest struct {
	Lang string `json:"lang" validate:"required,min=2,max=8"`
}

type setCityRequest struct {
	City string `json:"city" validate:"required,min=1,max=128"`
}

// GetPreferences returns the user's preference row together with the
// session city, materializing defaults on first contact.
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
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
	respondSuccess(w, map[string]interface{}{
		"preferences": prefs,
		"city":        h.svc.CityFor(userID),
	}, start)
}

// ToggleKids flips the kid-friendly filter and returns the new value.
func (h *Handler) ToggleKids(w http.ResponseWriter, r *http.Request) {
	h.togglePref(w, r, models.PrefKidsFriendly)
}

// ToggleDogs flips the dog-friendly filter and returns the new value.
func (h *Handler) ToggleDogs(w http.ResponseWriter, r *http.Request) {
	h.togglePref(w, r, models.PrefDogFriendly)
}

func (h *Handler) togglePref(w http.ResponseWriter, r *http.Request, field models.PrefField) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	// Resolve the language before mutating; the toggle never changes it.
	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	val, err := h.svc.TogglePref(r.Context(), userID, field)
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}
	respondSuccess(w, map[string]interface{}{
		"field":   field.String(),
		"value":   val,
		"message": i18n.T(prefs.Lang, toggleMessageKey(field, val)),
	}, start)
}

// toggleMessageKey picks the confirmation text for a toggled filter.
func toggleMessageKey(field models.PrefField, val int) string {
	state := "off"
	if val != 0 {
		state = "on"
	}
	if field == models.PrefDogFriendly {
		return "prefs.dogs." + state
	}
	return "prefs.kids." + state
}

// SetPrice stores the user's price tier, clamping out-of-range values
// instead of rejecting them.
func (h *Handler) SetPrice(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	var req setPriceRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", nil)
		return
	}

	prefs, err := h.svc.Preferences(r.Context(), userID)
	if err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}

	stored, err := h.svc.SetPriceTier(r.Context(), userID, req.PriceLevel)
	if err != nil {
		respondServiceError(w, prefs.Lang, err)
		return
	}

	message := i18n.T(prefs.Lang, "prefs.price.any")
	if stored != 0 {
		label := i18n.T(prefs.Lang, fmt.Sprintf("price.%d", stored))
		message = i18n.T(prefs.Lang, "prefs.price.set", label)
	}
	respondSuccess(w, map[string]interface{}{
		"price_level": stored,
		"message":     message,
	}, start)
}

// SetLanguage switches the user's locale. The confirmation renders in
// the newly selected language.
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	var req setLanguageRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.svc.SetLanguage(r.Context(), userID, req.Lang); err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}
	respondSuccess(w, map[string]interface{}{
		"lang":    req.Lang,
		"message": i18n.T(req.Lang, "lang.set"),
	}, start)
}

// SetCity selects the user's session city.
func (h *Handler) SetCity(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	userID, err := userIDParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_PARAMETER", "Invalid user ID", nil)
		return
	}

	var req setCityRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Invalid JSON body", nil)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	if err := h.svc.SetCity(r.Context(), userID, req.City); err != nil {
		respondServiceError(w, i18n.DefaultLang, err)
		return
	}
	respondSuccess(w, map[string]interface{}{"city": req.City}, start)
}
