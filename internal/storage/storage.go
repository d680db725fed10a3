// Package storage holds the sentinel errors shared by the storage backends.
//
// Backends live in subpackages: postgres (database/sql with lib/pq) and sqlite
// (GORM). Both implement task.Store and auth.UserStore.
package storage

import "errors"

var (
	// ErrNotFound is returned when no row matches the requested key.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate key")
)
