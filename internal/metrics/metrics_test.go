// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordDBQuery(t *testing.T) {
	tests := []struct {
		name      string
		operation string
		table     string
		duration  time.Duration
		err       error
	}{
		{
			name:      "successful SELECT query",
			operation: "SELECT",
			table:     "places",
			duration:  10 * time.Millisecond,
			err:       nil,
		},
		{
			name:      "failed UPSERT query",
			operation: "UPSERT",
			table:     "user_prefs",
			duration:  100 * time.Millisecond,
			err:       errors.New("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.CollectAndCount(DBQueryDuration)
			RecordDBQuery(tt.operation, tt.table, tt.duration, tt.err)
			after := testutil.CollectAndCount(DBQueryDuration)
			if after < before {
				t.Errorf("histogram series count decreased: %d -> %d", before, after)
			}
			if tt.err != nil {
				if v := testutil.ToFloat64(DBQueryErrors.WithLabelValues(tt.operation, tt.table)); v < 1 {
					t.Errorf("error counter = %f, want >= 1", v)
				}
			}
		})
	}
}

func TestRecordRecommendation(t *testing.T) {
	RecordRecommendation("search", 3)
	RecordRecommendation("search", 0)

	if v := testutil.ToFloat64(RecommendationsServed.WithLabelValues("search")); v < 2 {
		t.Errorf("served counter = %f, want >= 2", v)
	}
	if v := testutil.ToFloat64(RecommendationEmpty.WithLabelValues("search")); v < 1 {
		t.Errorf("empty counter = %f, want >= 1", v)
	}
}

func TestRecordPrefsCache(t *testing.T) {
	hitsBefore := testutil.ToFloat64(PrefsCacheHits)
	missesBefore := testutil.ToFloat64(PrefsCacheMisses)

	RecordPrefsCache(true)
	RecordPrefsCache(false)

	if v := testutil.ToFloat64(PrefsCacheHits); v != hitsBefore+1 {
		t.Errorf("hits = %f, want %f", v, hitsBefore+1)
	}
	if v := testutil.ToFloat64(PrefsCacheMisses); v != missesBefore+1 {
		t.Errorf("misses = %f, want %f", v, missesBefore+1)
	}
}

func TestRecordImportRun(t *testing.T) {
	importedBefore := testutil.ToFloat64(ImportRowsTotal.WithLabelValues("imported"))

	RecordImportRun(2*time.Second, 10, 2, 1, nil)

	if v := testutil.ToFloat64(ImportRowsTotal.WithLabelValues("imported")); v != importedBefore+10 {
		t.Errorf("imported rows = %f, want %f", v, importedBefore+10)
	}
	if v := testutil.ToFloat64(ImportLastSuccess); v == 0 {
		t.Error("last-success timestamp not set after successful run")
	}
}

func TestTrackActiveRequest(t *testing.T) {
	base := testutil.ToFloat64(APIActiveRequests)
	TrackActiveRequest(true)
	if v := testutil.ToFloat64(APIActiveRequests); v != base+1 {
		t.Errorf("gauge after inc = %f, want %f", v, base+1)
	}
	TrackActiveRequest(false)
	if v := testutil.ToFloat64(APIActiveRequests); v != base {
		t.Errorf("gauge after dec = %f, want %f", v, base)
	}
}
