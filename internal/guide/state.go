// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package guide

import (
	"sync"
	"time"

	"github.com/mzhvania/cityguide/internal/models"
)

// State holds per-user session data that is not worth persisting: the
// currently selected city and a short-lived preference cache in front
// of the database. It is safe for concurrent use.
type State struct {
	mu       sync.RWMutex
	cities   map[int64]string
	prefs    map[int64]cachedPrefs
	prefsTTL time.Duration

	now func() time.Time
}

type cachedPrefs struct {
	prefs     models.UserPreferences
	expiresAt time.Time
}

// NewState returns an empty session state. prefsTTL bounds how stale a
// cached preference row may be; zero disables caching entirely.
func NewState(prefsTTL time.Duration) *State {
	return &State{
		cities:   make(map[int64]string),
		prefs:    make(map[int64]cachedPrefs),
		prefsTTL: prefsTTL,
		now:      time.Now,
	}
}

// City returns the user's selected city, or "" when none was chosen.
func (s *State) City(userID int64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cities[userID]
}

// SetCity records the user's selected city for the session.
func (s *State) SetCity(userID int64, city string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cities[userID] = city
}

// CachedPrefs returns the cached preference row for userID if it is
// still fresh.
func (s *State) CachedPrefs(userID int64) (models.UserPreferences, bool) {
	if s.prefsTTL <= 0 {
		return models.UserPreferences{}, false
	}
	s.mu.RLock()
	entry, ok := s.prefs[userID]
	s.mu.RUnlock()
	if !ok || s.now().After(entry.expiresAt) {
		return models.UserPreferences{}, false
	}
	return entry.prefs, true
}

// StorePrefs caches a preference row read from the database.
func (s *State) StorePrefs(prefs models.UserPreferences) {
	if s.prefsTTL <= 0 {
		return
	}
	s.mu.Lock()
	s.prefs[prefs.UserID] = cachedPrefs{
		prefs:     prefs,
		expiresAt: s.now().Add(s.prefsTTL),
	}
	s.mu.Unlock()
}

// InvalidatePrefs drops the cached preference row after a write so the
// next read reflects the database.
func (s *State) InvalidatePrefs(userID int64) {
	s.mu.Lock()
	delete(s.prefs, userID)
	s.mu.Unlock()
}
