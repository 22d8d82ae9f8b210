// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mzhvania/cityguide/internal/config"
	"github.com/mzhvania/cityguide/internal/database"
	"github.com/mzhvania/cityguide/internal/metrics"
	"github.com/mzhvania/cityguide/internal/models"
)

// Stats describes one import run.
type Stats struct {
	RunID     string    `json:"run_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Imported counts rows inserted. Coerced counts rows where at least
	// one malformed numeric cell was replaced with zero; coerced rows
	// are still imported. Skipped counts rows dropped entirely.
	Imported int `json:"imported"`
	Coerced  int `json:"coerced"`
	Skipped  int `json:"skipped"`
}

// Importer ingests CSV place data. One run at a time; a second Run
// while one is in flight fails immediately.
type Importer struct {
	db     *database.DB
	cfg    config.ImportConfig
	logger zerolog.Logger

	mu      sync.Mutex
	running bool
}

// New creates a CSV importer writing into db.
func New(db *database.DB, cfg config.ImportConfig, logger zerolog.Logger) *Importer {
	return &Importer{
		db:     db,
		cfg:    cfg,
		logger: logger.With().Str("component", "importer").Logger(),
	}
}

// Run reads CSV from r and inserts the rows. On a database failure the
// rows inserted so far stay; the returned stats describe the partial
// run and the error carries the cause.
func (im *Importer) Run(ctx context.Context, r io.Reader) (*Stats, error) {
	im.mu.Lock()
	if im.running {
		im.mu.Unlock()
		return nil, fmt.Errorf("import already in progress")
	}
	im.running = true
	im.mu.Unlock()
	defer func() {
		im.mu.Lock()
		im.running = false
		im.mu.Unlock()
	}()

	stats := &Stats{
		RunID:     uuid.NewString(),
		StartTime: time.Now(),
	}
	logger := im.logger.With().Str("run_id", stats.RunID).Logger()

	err := im.run(ctx, r, stats, logger)
	stats.EndTime = time.Now()
	metrics.RecordImportRun(stats.EndTime.Sub(stats.StartTime),
		stats.Imported, stats.Coerced, stats.Skipped, err)

	logger.Info().
		Int("imported", stats.Imported).
		Int("coerced", stats.Coerced).
		Int("skipped", stats.Skipped).
		Dur("took", stats.EndTime.Sub(stats.StartTime)).
		Err(err).
		Msg("import run finished")
	return stats, err
}

func (im *Importer) run(ctx context.Context, r io.Reader, stats *Stats, logger zerolog.Logger) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["city"]; !ok {
		return fmt.Errorf("CSV header missing required column %q", "city")
	}

	cityIDs := make(map[string]int64)
	for rowNum := 1; ; rowNum++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// Malformed CSV rows are skipped, not fatal.
			stats.Skipped++
			logger.Warn().Int("row", rowNum).Err(err).Msg("skipping malformed CSV row")
			continue
		}
		if im.cfg.MaxRows > 0 && stats.Imported >= im.cfg.MaxRows {
			return fmt.Errorf("row limit %d reached", im.cfg.MaxRows)
		}

		row := rowReader{cols: cols, record: record}
		city := strings.TrimSpace(row.str("city"))
		if city == "" {
			stats.Skipped++
			continue
		}

		cityID, ok := cityIDs[city]
		if !ok {
			cityID, err = im.db.EnsureCity(ctx, city)
			if err != nil {
				return fmt.Errorf("row %d: ensuring city %q: %w", rowNum, city, err)
			}
			cityIDs[city] = cityID
		}

		place := models.Place{
			CityID:       cityID,
			Name:         row.str("name"),
			Category:     row.str("category"),
			Description:  row.str("description"),
			Address:      row.str("address"),
			Hours:        row.str("hours"),
			URL:          row.str("url"),
			Lat:          row.float("lat"),
			Lon:          row.float("lon"),
			Rating:       row.float("rating"),
			KidsFriendly: row.flag("kids_friendly"),
			DogFriendly:  row.flag("dog_friendly"),
			PriceLevel:   models.ClampPriceLevel(row.int("price_level")),
		}
		if _, err := im.db.InsertPlace(ctx, &place); err != nil {
			return fmt.Errorf("row %d: inserting place %q: %w", rowNum, place.Name, err)
		}
		stats.Imported++
		if row.coerced {
			stats.Coerced++
		}
	}
}

// rowReader resolves cells by header name and tracks whether any
// numeric cell had to be coerced.
type rowReader struct {
	cols    map[string]int
	record  []string
	coerced bool
}

func (r *rowReader) str(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r *rowReader) float(col string) float64 {
	s := r.str(col)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.coerced = true
		return 0
	}
	return v
}

func (r *rowReader) int(col string) int {
	s := r.str(col)
	if s == "" {
		return 0
	}
	// Accept "1.0" the way a float cell would render.
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		r.coerced = true
		return 0
	}
	return int(v)
}

func (r *rowReader) flag(col string) bool {
	return r.int(col) != 0
}
