// Package auth registers users, checks their credentials and issues the
// bearer tokens that identify them on later requests.
package auth

import "context"

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash []byte `json:"-"`
}

// UserStore persists users. GetUserByUsername returns storage.ErrNotFound
// for unknown names and InsertUser returns storage.ErrDuplicate when the
// name is taken.
type UserStore interface {
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	InsertUser(ctx context.Context, u *User) error
}
