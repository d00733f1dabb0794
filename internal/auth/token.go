package auth

import (
	"errors"
	"fmt"
	"time"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token error kinds. Their names double as the machine-readable codes sent in
// 401 responses.
var (
	// ErrTokenExpired indicates the token's expiry has passed.
	ErrTokenExpired = serrors.NewKind("TOKEN_EXPIRED")
	// ErrInvalidToken indicates a malformed token, a bad signature or a wrong
	// token type.
	ErrInvalidToken = serrors.NewKind("INVALID_TOKEN")
	// ErrTokenRevoked indicates the token's jti is on the revocation list.
	ErrTokenRevoked = serrors.NewKind("TOKEN_REVOKED")
	// ErrAuthRequired indicates the request carried no bearer token.
	ErrAuthRequired = serrors.NewKind("AUTHORIZATION_REQUIRED")
	// ErrFreshRequired indicates the operation needs a token issued directly
	// by a password login.
	ErrFreshRequired = serrors.NewKind("FRESH_TOKEN_REQUIRED")
)

// tokenClaims is the JWT payload. Type, Fresh and Admin are private claims on
// top of the registered set.
type tokenClaims struct {
	jwt.RegisteredClaims
	Type  domain.TokenType `json:"type"`
	Fresh bool             `json:"fresh"`
	Admin bool             `json:"admin"`
}

// Issuer signs and parses the service's HS256 tokens.
type Issuer struct {
	secret          []byte
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
}

// NewIssuer creates an Issuer signing with the given HS256 secret.
func NewIssuer(secret string, accessTokenTTL, refreshTokenTTL time.Duration) *Issuer {
	return &Issuer{
		secret:          []byte(secret),
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
	}
}

// IssueAccess signs a new access token for the user. fresh marks tokens
// issued directly by a password login.
func (i *Issuer) IssueAccess(user *domain.User, fresh bool) (string, error) {
	return i.sign(user, domain.TokenTypeAccess, fresh, i.accessTokenTTL)
}

// IssueRefresh signs a new refresh token for the user.
func (i *Issuer) IssueRefresh(user *domain.User) (string, error) {
	return i.sign(user, domain.TokenTypeRefresh, false, i.refreshTokenTTL)
}

func (i *Issuer) sign(user *domain.User, typ domain.TokenType, fresh bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.UUID(user.ID).String(),
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Type:  typ,
		Fresh: fresh,
		Admin: user.Admin,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("could not sign token: %w", err)
	}

	return signed, nil
}

// Parse verifies the token's signature and registered claims and checks that
// it is of the expected type. Revocation is checked separately by the service.
func (i *Issuer) Parse(raw string, expected domain.TokenType) (*domain.TokenClaims, error) {
	var claims tokenClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, serrors.Wrap(ErrTokenExpired, err, "token expired")
		}

		return nil, serrors.Wrap(ErrInvalidToken, err, "could not parse token")
	}

	if claims.Type != expected {
		return nil, serrors.With(ErrInvalidToken, "unexpected token type %q", claims.Type)
	}

	sub, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, serrors.Wrap(ErrInvalidToken, err, "invalid token subject")
	}
	jti, err := uuid.Parse(claims.ID)
	if err != nil {
		return nil, serrors.Wrap(ErrInvalidToken, err, "invalid token id")
	}

	return &domain.TokenClaims{
		JTI:       jti,
		UserID:    domain.UserID(sub),
		Type:      claims.Type,
		Fresh:     claims.Fresh,
		Admin:     claims.Admin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
