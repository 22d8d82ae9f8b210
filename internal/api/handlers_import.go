// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package api

import (
	"net/http"
	"time"

	"github.com/mzhvania/cityguide/internal/models"
)

// ImportCSV ingests a CSV body of places. A failed run still reports
// the rows imported before the failure in the error details, because
// inserts are not rolled back.
func (h *Handler) ImportCSV(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	body := http.MaxBytesReader(w, r.Body, h.config.Import.MaxUploadBytes)
	defer func() {
		_ = body.Close()
	}()

	stats, err := h.importer.Run(r.Context(), body)
	if err != nil {
		resp := &models.APIResponse{
			Status: "error",
			Metadata: models.Metadata{
				Timestamp: time.Now(),
			},
			Error: &models.APIError{
				Code:    "IMPORT_FAILED",
				Message: err.Error(),
			},
		}
		if stats != nil {
			resp.Error.Details = map[string]interface{}{
				"run_id":   stats.RunID,
				"imported": stats.Imported,
				"coerced":  stats.Coerced,
				"skipped":  stats.Skipped,
			}
		}
		respondJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}

	respondSuccess(w, models.ImportResponse{
		RunID:    stats.RunID,
		Imported: stats.Imported,
		Coerced:  stats.Coerced,
		Skipped:  stats.Skipped,
	}, start)
}
