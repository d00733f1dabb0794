package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenType distinguishes the two kinds of JWTs issued by the service.
type TokenType string

const (
	// TokenTypeAccess is a short-lived token authorizing API requests.
	TokenTypeAccess TokenType = "access"
	// TokenTypeRefresh is a longer-lived token exchangeable for a new access token.
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the decoded, verified content of a JWT issued by the service.
type TokenClaims struct {
	// JTI is the token's unique identifier, used for revocation.
	JTI uuid.UUID
	// UserID is the subject the token was issued to.
	UserID UserID
	// Type reports whether this is an access or a refresh token.
	Type TokenType
	// Fresh is true only for access tokens issued directly by a password
	// login, as opposed to ones minted through the refresh flow.
	Fresh bool
	// Admin mirrors the user's admin flag at issue time.
	Admin bool
	// ExpiresAt is the token's expiry instant.
	ExpiresAt time.Time
}

// TokenPair bundles the tokens returned by a successful login.
type TokenPair struct {
	// AccessToken is the signed short-lived token.
	AccessToken string `json:"access_token"`
	// RefreshToken is the signed token used to obtain new access tokens.
	RefreshToken string `json:"refresh_token"`
}
