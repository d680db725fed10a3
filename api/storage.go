package main

import (
	"context"
	"strings"

	"github.com/harlequingg/tasks-api/internal/auth"
	"github.com/harlequingg/tasks-api/internal/storage/postgres"
	"github.com/harlequingg/tasks-api/internal/storage/sqlite"
	"github.com/harlequingg/tasks-api/internal/task"
)

// store is what the application needs from a storage backend.
type store interface {
	task.Store
	auth.UserStore
	Ping(ctx context.Context) error
	Close() error
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func storeKind(dsn string) string {
	if isPostgresDSN(dsn) {
		return "postgres"
	}
	return "sqlite"
}

// openStore picks the backend from the DSN: a postgres URL selects
// PostgreSQL, anything else is a SQLite path.
func openStore(cfg config) (store, error) {
	if !isPostgresDSN(cfg.DB.DSN) {
		return sqlite.Open(cfg.DB.DSN)
	}

	db, err := postgres.Open(postgres.Config{
		DSN:          cfg.DB.DSN,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxIdleTime:  cfg.DB.MaxIdleTime,
	})
	if err != nil {
		return nil, err
	}
	s := postgres.New(db)
	if err := s.Migrate(context.Background()); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}
