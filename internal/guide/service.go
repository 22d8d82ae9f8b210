// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package guide

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/database"
	"github.com/mzhvania/cityguide/internal/geo"
	"github.com/mzhvania/cityguide/internal/i18n"
	"github.com/mzhvania/cityguide/internal/metrics"
	"github.com/mzhvania/cityguide/internal/models"
)

var (
	// ErrUnknownCity is returned when a named city has no row.
	ErrUnknownCity = errors.New("unknown city")

	// ErrUnknownCategory is returned for a category outside the fixed set.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrUnknownPlace is returned when a place ID has no row.
	ErrUnknownPlace = errors.New("unknown place")

	// ErrUnsupportedLang is returned for a language with no bundle.
	ErrUnsupportedLang = errors.New("unsupported language")
)

// Service is the recommendation core. It owns the per-user session
// state and delegates durable reads and writes to the database layer.
// It is safe for concurrent use.
type Service struct {
	db     *database.DB
	cfg    config.GuideConfig
	state  *State
	logger zerolog.Logger
}

// New constructs a Service around db with the given tunables.
func New(db *database.DB, cfg config.GuideConfig, logger zerolog.Logger) *Service {
	return &Service{
		db:     db,
		cfg:    cfg,
		state:  NewState(cfg.PrefsCacheTTL),
		logger: logger.With().Str("component", "guide").Logger(),
	}
}

// CityFor returns the user's session city, falling back to the
// configured default when the user never selected one.
func (s *Service) CityFor(userID int64) string {
	if city := s.state.City(userID); city != "" {
		return city
	}
	return s.cfg.DefaultCity
}

// SetCity selects a session city for the user. The city must exist.
func (s *Service) SetCity(ctx context.Context, userID int64, city string) error {
	_, ok, err := s.db.CityIDByName(ctx, city)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}
	s.state.SetCity(userID, city)
	return nil
}

// Cities lists all cities that have places.
func (s *Service) Cities(ctx context.Context) ([]models.City, error) {
	return s.db.ListCities(ctx)
}

// Preferences returns the user's preference row, materializing defaults
// on first contact. Reads go through a short-lived in-process cache.
func (s *Service) Preferences(ctx context.Context, userID int64) (models.UserPreferences, error) {
	if prefs, ok := s.state.CachedPrefs(userID); ok {
		metrics.RecordPrefsCache(true)
		return prefs, nil
	}
	metrics.RecordPrefsCache(false)

	prefs, err := s.db.GetUserPreferences(ctx, userID)
	if err != nil {
		return models.UserPreferences{}, err
	}
	s.state.StorePrefs(prefs)
	return prefs, nil
}

// SetLanguage switches the user's locale. The language must have an
// embedded message bundle.
func (s *Service) SetLanguage(ctx context.Context, userID int64, lang string) error {
	if !i18n.Supported(lang) {
		return fmt.Errorf("%w: %s", ErrUnsupportedLang, lang)
	}
	if err := s.db.SetUserLang(ctx, userID, lang); err != nil {
		return err
	}
	s.state.InvalidatePrefs(userID)
	return nil
}

// TogglePref flips a binary preference flag and returns the new value.
func (s *Service) TogglePref(ctx context.Context, userID int64, field models.PrefField) (int, error) {
	val, err := s.db.TogglePreference(ctx, userID, field, models.ToggleCycle)
	if err != nil {
		return 0, err
	}
	s.state.InvalidatePrefs(userID)
	s.logger.Debug().Int64("user_id", userID).Stringer("field", field).Int("value", val).
		Msg("preference toggled")
	return val, nil
}

// SetPriceTier stores the user's price tier, clamped to the valid
// range, and returns the stored value.
func (s *Service) SetPriceTier(ctx context.Context, userID int64, tier int) (int, error) {
	clamped := models.ClampPriceLevel(tier)
	if err := s.db.SetPriceLevel(ctx, userID, tier); err != nil {
		return 0, err
	}
	s.state.InvalidatePrefs(userID)
	return clamped, nil
}

// Search runs a preference-filtered substring search over place names
// and descriptions within the user's session city. An empty query
// matches everything, so it doubles as a filtered browse.
func (s *Service) Search(ctx context.Context, userID int64, query string) ([]models.Place, error) {
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	places, err := s.db.SearchPlaces(ctx, s.CityFor(userID), query, prefs, s.cfg.SearchLimit)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendation("search", len(places))
	return places, nil
}

// InlineSearch runs the same substring search across every city,
// unfiltered by preferences, for quick-lookup clients.
func (s *Service) InlineSearch(ctx context.Context, query string) ([]models.Place, error) {
	places, err := s.db.SearchPlaces(ctx, "", query, models.UserPreferences{}, s.cfg.InlineSearchLimit)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendation("search", len(places))
	return places, nil
}

// BrowseCategory lists places of one category in the user's session
// city, preference-filtered and ordered by rating.
func (s *Service) BrowseCategory(ctx context.Context, userID int64, category string) ([]models.Place, error) {
	if !models.IsKnownCategory(category) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	places, err := s.db.PlacesByCategory(ctx, s.CityFor(userID), category, prefs, s.cfg.SearchLimit)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendation("category", len(places))
	return places, nil
}

// Random picks one qualifying place in the user's session city
// uniformly at random. It returns nil when nothing qualifies.
func (s *Service) Random(ctx context.Context, userID int64) (*models.Place, error) {
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	p, err := s.db.RandomPlace(ctx, s.CityFor(userID), prefs)
	if err != nil {
		return nil, err
	}
	if p == nil {
		metrics.RecordRecommendation("random", 0)
		return nil, nil
	}
	metrics.RecordRecommendation("random", 1)
	return p, nil
}

// Nearby returns qualifying places within radiusKm of the query point,
// closest first. Places in any city count; the session city does not
// constrain proximity. radiusKm <= 0 selects the configured default.
func (s *Service) Nearby(ctx context.Context, userID int64, lat, lon, radiusKm float64) ([]models.NearbyPlace, error) {
	if radiusKm <= 0 {
		radiusKm = s.cfg.DefaultRadiusKm
	}
	prefs, err := s.Preferences(ctx, userID)
	if err != nil {
		return nil, err
	}
	all, err := s.db.AllPlaces(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyPlace, 0, 16)
	for _, p := range all {
		if !Qualifies(p, prefs) {
			continue
		}
		d := geo.DistanceKm(lat, lon, p.Lat, p.Lon)
		if d <= radiusKm {
			nearby = append(nearby, models.NearbyPlace{DistanceKm: d, Place: p})
		}
	}
	// Stable so equidistant places keep their scan order.
	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	if len(nearby) > s.cfg.SearchLimit {
		nearby = nearby[:s.cfg.SearchLimit]
	}
	metrics.RecordRecommendation("nearby", len(nearby))
	return nearby, nil
}

// AddFavorite bookmarks a place for the user. Adding twice is a no-op.
func (s *Service) AddFavorite(ctx context.Context, userID, placeID int64) error {
	p, err := s.db.PlaceByID(ctx, placeID)
	if err != nil {
		return err
	}
	if p == nil {
		return fmt.Errorf("%w: id %d", ErrUnknownPlace, placeID)
	}
	return s.db.AddFavorite(ctx, userID, placeID)
}

// RemoveFavorite drops a bookmark. Removing an absent one is a no-op.
func (s *Service) RemoveFavorite(ctx context.Context, userID, placeID int64) error {
	return s.db.RemoveFavorite(ctx, userID, placeID)
}

// IsFavorite reports whether the user bookmarked the place.
func (s *Service) IsFavorite(ctx context.Context, userID, placeID int64) (bool, error) {
	return s.db.IsFavorite(ctx, userID, placeID)
}

// Favorites lists the user's bookmarked places, best-rated first.
func (s *Service) Favorites(ctx context.Context, userID int64) ([]models.Place, error) {
	places, err := s.db.ListFavorites(ctx, userID)
	if err != nil {
		return nil, err
	}
	metrics.RecordRecommendation("favorites", len(places))
	return places, nil
}

// Place returns one place by ID, or ErrUnknownPlace.
func (s *Service) Place(ctx context.Context, placeID int64) (*models.Place, error) {
	p, err := s.db.PlaceByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownPlace, placeID)
	}
	return p, nil
}
