package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/harlequingg/tasks-api/internal/apperr"
	"github.com/harlequingg/tasks-api/internal/storage"
	"github.com/harlequingg/tasks-api/internal/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type Service struct {
	users  UserStore
	hasher *PasswordHasher
	tokens *TokenManager
}

func NewService(users UserStore, hasher *PasswordHasher, tokens *TokenManager) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

// Register creates a user with a bcrypt hash of password.
func (s *Service) Register(ctx context.Context, username, password string) (*User, error) {
	v := validator.New()
	v.Check(username != "", "username", "the 'username' field is required.")
	v.Check(password != "", "password", "the 'password' field is required.")
	v.Check(len(password) <= MaxPasswordBytes, "password", "the 'password' field must be at most 72 bytes long.")
	if !v.Valid() {
		return nil, apperr.Validation("%s", v.String())
	}

	_, err := s.users.GetUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, conflict()
	case !errors.Is(err, storage.ErrNotFound):
		return nil, apperr.Storage(fmt.Errorf("look up user: %w", err))
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperr.Storage(fmt.Errorf("hash password: %w", err))
	}
	u := &User{
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.InsertUser(ctx, u); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil, conflict()
		}
		return nil, apperr.Storage(fmt.Errorf("insert user: %w", err))
	}
	return u, nil
}

// Login verifies the credentials and returns a signed token for the user.
// Unknown users and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", invalidCredentials()
		}
		return "", apperr.Storage(fmt.Errorf("look up user: %w", err))
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return "", invalidCredentials()
	}
	token, err := s.tokens.Issue(u.ID)
	if err != nil {
		return "", apperr.Storage(err)
	}
	return token, nil
}

// Verify returns the user id carried by token.
func (s *Service) Verify(_ context.Context, token string) (int64, error) {
	userID, err := s.tokens.Parse(token)
	if err != nil {
		return 0, apperr.Auth(err, err.Error())
	}
	return userID, nil
}

func invalidCredentials() error {
	return apperr.Auth(ErrInvalidCredentials, "invalid credentials.")
}

func conflict() error {
	return &apperr.Error{Kind: apperr.KindConflict, Message: "user already exists.", Err: ErrUserExists}
}
