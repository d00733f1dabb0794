package auth

import (
	"context"

	"catalog/pkg/domain"
)

// Auth exposes account and token operations backed by storage.
type Auth interface {
	// Register creates a new account with a hashed password.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies credentials and issues a fresh access token plus a
	// refresh token.
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)
	// Refresh exchanges a valid refresh token for a new non-fresh access
	// token. The refresh token is single use: its jti is revoked.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the access token's jti until the token would expire.
	Logout(ctx context.Context, claims domain.TokenClaims) error
	// VerifyToken parses a raw token, checks signature, expiry, type and the
	// revocation list, and returns the verified claims.
	VerifyToken(ctx context.Context, raw string, expected domain.TokenType) (*domain.TokenClaims, error)
	// User fetches an account by ID.
	User(ctx context.Context, id domain.UserID) (*domain.User, error)
	// DeleteUser removes an account by ID.
	DeleteUser(ctx context.Context, id domain.UserID) error
}
