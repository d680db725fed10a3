package postgres

import (
	"context"

	"github.com/harlequingg/tasks-api/internal/auth"
)

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	query := `SELECT id, username, password_hash
			  FROM users
			  WHERE username = $1`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var u auth.User
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		return nil, translateError(err)
	}
	return &u, nil
}

func (s *Store) InsertUser(ctx context.Context, u *auth.User) error {
	query := `INSERT INTO users (username, password_hash)
			  VALUES ($1, $2)
			  RETURNING id`
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := s.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash).Scan(&u.ID)
	return translateError(err)
}
