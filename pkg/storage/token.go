package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenStorage defines persistence operations for the JWT revocation list.
// Revoked token IDs (jti claims) are kept until their recorded expiry so that
// revocation checks stay correct while the table stays small.
type TokenStorage interface {
	// RevokeToken records a token ID as revoked until expiresAt. Revoking an
	// already-revoked token is a no-op.
	RevokeToken(ctx context.Context, jti uuid.UUID, expiresAt time.Time) error
	// IsTokenRevoked reports whether the token ID is on the revocation list.
	IsTokenRevoked(ctx context.Context, jti uuid.UUID) (bool, error)
	// PurgeExpiredTokens removes revocation entries whose expiry is before
	// now and returns the number of rows removed.
	PurgeExpiredTokens(ctx context.Context, now time.Time) (int64, error)
}
