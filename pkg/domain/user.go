package domain

import (
	"time"

	"github.com/google/uuid"
)

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// User represents a registered account.
type User struct {
	// ID is the unique identifier of the user.
	ID UserID `json:"id"`
	// Username is the unique login name chosen at registration.
	Username string `json:"username"`
	// PasswordHash is the encoded argon2id hash of the user's password.
	// It is never serialized into API responses.
	PasswordHash string `json:"-"`
	// Admin reports whether the user may perform administrative operations.
	Admin bool `json:"admin"`

	// CreatedAt is the time the account was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the account was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
