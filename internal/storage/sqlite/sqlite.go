// Package sqlite stores tasks and users in SQLite through GORM.
package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/harlequingg/tasks-api/internal/storage"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type taskModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Title       string `gorm:"not null"`
	Description string `gorm:"not null"`
	Done        bool   `gorm:"not null"`
}

func (taskModel) TableName() string {
	return "tasks"
}

type userModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash []byte `gorm:"not null"`
}

func (userModel) TableName() string {
	return "users"
}

type Store struct {
	db *gorm.DB
}

// Open opens the database file at path (":memory:" for a private in-memory
// database) and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(gormsqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// SQLite allows a single writer, and every connection to ":memory:" is a
	// separate database.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&userModel{}, &taskModel{}); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storage.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", storage.ErrDuplicate, err)
	default:
		return err
	}
}
