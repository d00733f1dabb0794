package v1handler

import (
	"context"
	"net/http"
	"strings"

	"catalog/internal/auth"
	"catalog/pkg/domain"
	"catalog/pkg/serrors"
)

type claimsCtxKey struct{}

// ClaimsFromContext returns the verified token claims stashed by the auth
// middleware.
func ClaimsFromContext(ctx context.Context) (*domain.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*domain.TokenClaims)

	return claims, ok
}

// bearerToken extracts the bearer token from the Authorization header.
func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", serrors.With(auth.ErrAuthRequired, "missing Authorization header")
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", serrors.With(auth.ErrAuthRequired, "malformed Authorization header")
	}

	return token, nil
}

// withAuth requires a valid, unrevoked access token and stashes its claims in
// the request context.
func (h *Handler) withAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := h.authenticate(w, r)
		if !ok {
			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsCtxKey{}, claims)))
	}
}

// withFreshAuth additionally requires a token issued directly by a password
// login.
func (h *Handler) withFreshAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !claims.Fresh {
			writeError(w, r, serrors.With(auth.ErrFreshRequired, "fresh token required"))

			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsCtxKey{}, claims)))
	}
}

// withAdminAuth additionally requires the token's admin claim.
func (h *Handler) withAdminAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := h.authenticate(w, r)
		if !ok {
			return
		}
		if !claims.Admin {
			writeError(w, r, serrors.With(serrors.ErrForbidden, "admin privilege required"))

			return
		}

		next(w, r.WithContext(context.WithValue(r.Context(), claimsCtxKey{}, claims)))
	}
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) (*domain.TokenClaims, bool) {
	token, err := bearerToken(r)
	if err != nil {
		writeError(w, r, err)

		return nil, false
	}

	claims, err := h.auth.VerifyToken(r.Context(), token, domain.TokenTypeAccess)
	if err != nil {
		writeError(w, r, err)

		return nil, false
	}

	return claims, true
}
