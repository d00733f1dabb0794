// Package auth implements account management and JWT issuing on top of the
// storage layer. Passwords are hashed with argon2id; tokens are HS256 JWTs
// whose jti claims can be revoked through a database blocklist.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"catalog/internal/config"
	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
)

// Options configure token issuing.
type Options struct {
	// Secret is the HS256 signing key.
	Secret string
	// AccessTokenTTL is the lifetime of issued access tokens.
	AccessTokenTTL time.Duration
	// RefreshTokenTTL is the lifetime of issued refresh tokens.
	RefreshTokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Secret:          cfg.JWT.Secret,
		AccessTokenTTL:  cfg.JWT.AccessTokenTTL,
		RefreshTokenTTL: cfg.JWT.RefreshTokenTTL,
	}
}

// auth is the concrete implementation of the Auth interface.
type auth struct {
	storage storage.Storage
	issuer  *Issuer
}

// New creates an Auth service backed by the given storage.
func New(strg storage.Storage, options Options) Auth {
	return auth{
		storage: strg,
		issuer:  NewIssuer(options.Secret, options.AccessTokenTTL, options.RefreshTokenTTL),
	}
}

func (a auth) Register(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}

	user, err := a.storage.CreateUser(ctx, storage.CreateUserParams{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "a user with that username already exists")
		}

		return nil, fmt.Errorf("could not create user: %w", err)
	}

	return user, nil
}

func (a auth) Login(ctx context.Context, username, password string) (*domain.TokenPair, error) {
	user, err := a.storage.UserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	// same response for unknown user and bad password
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	ok, err := VerifyPassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("could not verify password: %w", err)
	}
	if !ok {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid credentials")
	}

	access, err := a.issuer.IssueAccess(user, true)
	if err != nil {
		return nil, err
	}
	refresh, err := a.issuer.IssueRefresh(user)
	if err != nil {
		return nil, err
	}

	return &domain.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (a auth) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := a.VerifyToken(ctx, refreshToken, domain.TokenTypeRefresh)
	if err != nil {
		return "", err
	}

	user, err := a.storage.UserByID(ctx, claims.UserID)
	if err != nil {
		return "", fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return "", serrors.With(serrors.ErrUnauthorized, "user no longer exists")
	}

	// refresh tokens are single use
	if err := a.storage.RevokeToken(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return "", fmt.Errorf("could not revoke refresh token: %w", err)
	}

	return a.issuer.IssueAccess(user, false)
}

func (a auth) Logout(ctx context.Context, claims domain.TokenClaims) error {
	if err := a.storage.RevokeToken(ctx, claims.JTI, claims.ExpiresAt); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

func (a auth) VerifyToken(ctx context.Context, raw string, expected domain.TokenType) (*domain.TokenClaims, error) {
	claims, err := a.issuer.Parse(raw, expected)
	if err != nil {
		return nil, err
	}

	revoked, err := a.storage.IsTokenRevoked(ctx, claims.JTI)
	if err != nil {
		return nil, fmt.Errorf("could not check token revocation: %w", err)
	}
	if revoked {
		return nil, serrors.With(ErrTokenRevoked, "token has been revoked")
	}

	return claims, nil
}

func (a auth) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := a.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "user not found")
	}

	return user, nil
}

func (a auth) DeleteUser(ctx context.Context, id domain.UserID) error {
	deleted, err := a.storage.DeleteUser(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete user: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "user not found")
	}

	return nil
}
