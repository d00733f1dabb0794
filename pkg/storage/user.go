package storage

import (
	"context"

	"catalog/pkg/domain"
)

// CreateUserParams carries the fields required to insert a new user.
type CreateUserParams struct {
	// Username is the unique login name.
	Username string
	// PasswordHash is the encoded password hash, never the plain password.
	PasswordHash string
}

// UserStorage defines persistence operations for user accounts.
type UserStorage interface {
	// CreateUser inserts a new user and returns the stored row including
	// generated fields. A duplicate username yields ErrUniqueViolation.
	CreateUser(ctx context.Context, params CreateUserParams) (*domain.User, error)
	// UserByUsername fetches a user by exact username. Returns nil when no
	// such user exists.
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	// UserByID fetches a user by ID. Returns nil when not found.
	UserByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	// DeleteUser removes a user. Returns the deleted row, or nil when the
	// user did not exist.
	DeleteUser(ctx context.Context, id domain.UserID) (*domain.User, error)
	// SetAdmin updates the user's admin flag and returns the updated row, or
	// nil when the user does not exist.
	SetAdmin(ctx context.Context, username string, admin bool) (*domain.User, error)
}
