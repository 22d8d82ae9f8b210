// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"time"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/database"
	"github.com/mzhvania/cityguide/internal/guide"
	"github.com/mzhvania/cityguide/internal/importer"
)

// Handler processes HTTP requests. Query endpoints delegate to the
// guide service; the database handle is held directly only for the
// readiness probe.
type Handler struct {
	svc       *guide.Service
	importer  *importer.Importer
	db        *database.DB
	config    *config.Config
	startTime time.Time
}

// NewHandler creates an API handler with all required dependencies.
func NewHandler(svc *guide.Service, imp *importer.Importer, db *database.DB, cfg *config.Config) *Handler {
	return &Handler{
		svc:       svc,
		importer:  imp,
		db:        db,
		config:    cfg,
		startTime: time.Now(),
	}
}
