// CityGuide - City Point-of-Interest Recommendation Service
// Copyright 2026 M. Zhvania (mzhvania)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/mzhvania/cityguide

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Common database errors.
var (
	// ErrUnavailable indicates the durable store cannot be reached or a
	// statement failed. Callers must propagate it; the store performs no
	// retries. Distinct from an empty result, which is never an error.
	ErrUnavailable = errors.New("storage unavailable")
)

// storageErr wraps a driver error into ErrUnavailable, preserving the
// underlying cause for logging. Context cancellation passes through
// unchanged so callers can tell a canceled request from a broken store.
func storageErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

// isNoRows reports whether err is the driver's empty-result sentinel.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
