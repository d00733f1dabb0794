package auth_test

import (
	"testing"
	"time"

	"catalog/internal/auth"
	"catalog/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testUser(admin bool) *domain.User {
	return &domain.User{
		ID:       domain.UserID(uuid.New()),
		Username: "alice",
		Admin:    admin,
	}
}

func TestIssuer_AccessRoundtrip(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", time.Minute, time.Hour)
	user := testUser(true)

	raw, err := issuer.IssueAccess(user, true)
	require.NoError(t, err)

	claims, err := issuer.Parse(raw, domain.TokenTypeAccess)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.UserID)
	require.Equal(t, domain.TokenTypeAccess, claims.Type)
	require.True(t, claims.Fresh)
	require.True(t, claims.Admin)
	require.NotEqual(t, uuid.Nil, claims.JTI)
	require.WithinDuration(t, time.Now().Add(time.Minute), claims.ExpiresAt, 5*time.Second)
}

func TestIssuer_RefreshRoundtrip(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", time.Minute, time.Hour)
	user := testUser(false)

	raw, err := issuer.IssueRefresh(user)
	require.NoError(t, err)

	claims, err := issuer.Parse(raw, domain.TokenTypeRefresh)
	require.NoError(t, err)
	require.Equal(t, domain.TokenTypeRefresh, claims.Type)
	require.False(t, claims.Fresh)
	require.False(t, claims.Admin)
}

func TestIssuer_Parse_WrongType(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", time.Minute, time.Hour)

	raw, err := issuer.IssueRefresh(testUser(false))
	require.NoError(t, err)

	_, err = issuer.Parse(raw, domain.TokenTypeAccess)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssuer_Parse_Expired(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", -time.Minute, time.Hour)

	raw, err := issuer.IssueAccess(testUser(false), true)
	require.NoError(t, err)

	_, err = issuer.Parse(raw, domain.TokenTypeAccess)
	require.ErrorIs(t, err, auth.ErrTokenExpired)
}

func TestIssuer_Parse_WrongSecret(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", time.Minute, time.Hour)
	other := auth.NewIssuer("other-secret", time.Minute, time.Hour)

	raw, err := issuer.IssueAccess(testUser(false), true)
	require.NoError(t, err)

	_, err = other.Parse(raw, domain.TokenTypeAccess)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestIssuer_Parse_Garbage(t *testing.T) {
	t.Parallel()

	issuer := auth.NewIssuer("secret", time.Minute, time.Hour)

	_, err := issuer.Parse("not.a.token", domain.TokenTypeAccess)
	require.ErrorIs(t, err, auth.ErrInvalidToken)
}
