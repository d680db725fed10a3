package sqlite

import (
	"context"

	"github.com/harlequingg/tasks-api/internal/auth"
)

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*auth.User, error) {
	var m userModel
	if err := s.db.WithContext(ctx).First(&m, "username = ?", username).Error; err != nil {
		return nil, translateError(err)
	}
	return &auth.User{
		ID:           m.ID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
	}, nil
}

func (s *Store) InsertUser(ctx context.Context, u *auth.User) error {
	m := userModel{
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
	}
	if err := s.db.WithContext(ctx).Create(&m).Error; err != nil {
		return translateError(err)
	}
	u.ID = m.ID
	return nil
}
