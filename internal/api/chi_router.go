// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

// Package api provides HTTP routing and request handling using the Chi
// router.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/middleware"
)

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so both styles compose in r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Router assembles the HTTP surface around a Handler.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router with middleware derived from cfg.
func NewRouter(handler *Handler, cfg *config.Config) *Router {
	mwConfig := DefaultChiMiddlewareConfig()
	mwConfig.CORSAllowedOrigins = cfg.Server.CORSOrigins
	mwConfig.RateLimitRequests = cfg.Server.RateLimitRequests
	mwConfig.RateLimitWindow = cfg.Server.RateLimitWindow

	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(mwConfig),
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID))
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(router.chiMiddleware.CORS())

	// Health endpoints get a permissive rate limit so monitoring can
	// probe them frequently.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	// Public catalogue endpoints.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))
		r.Use(chiMiddleware(middleware.Compression))

		r.Get("/cities", router.handler.Cities)
		r.Get("/categories", router.handler.Categories)
		r.Get("/places/search", router.handler.InlineSearch)
		r.Get("/places/{placeID}", router.handler.PlaceByID)

		// Per-user recommendation and preference endpoints.
		r.Route("/users/{userID}", func(r chi.Router) {
			r.Get("/search", router.handler.Search)
			r.Get("/browse", router.handler.BrowseCategory)
			r.Get("/random", router.handler.Random)
			r.Get("/nearby", router.handler.Nearby)

			r.Get("/preferences", router.handler.GetPreferences)
			r.Post("/preferences/kids/toggle", router.handler.ToggleKids)
			r.Post("/preferences/dogs/toggle", router.handler.ToggleDogs)
			r.Put("/preferences/price", router.handler.SetPrice)
			r.Put("/preferences/language", router.handler.SetLanguage)
			r.Put("/city", router.handler.SetCity)

			r.Get("/favorites", router.handler.Favorites)
			r.Post("/favorites", router.handler.AddFavorite)
			r.Delete("/favorites/{placeID}", router.handler.RemoveFavorite)
		})

		r.Post("/import/csv", router.handler.ImportCSV)
	})

	// Prometheus metrics endpoint.
	r.Handle("/metrics", promhttp.Handler())

	return r
}
