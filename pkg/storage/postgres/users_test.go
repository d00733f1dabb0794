package postgres_test

import (
	"context"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CreateUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created, err := pgSQL.CreateUser(ctx, storage.CreateUserParams{
		Username:     "alice",
		PasswordHash: "hash-a",
	})
	require.NoError(t, err)
	require.Equal(t, "alice", created.Username)
	require.Equal(t, "hash-a", created.PasswordHash)
	require.False(t, created.Admin)
	require.NotEqual(t, uuid.Nil, uuid.UUID(created.ID))
	require.False(t, created.CreatedAt.IsZero())

	// duplicate username maps to the unique violation sentinel
	_, err = pgSQL.CreateUser(ctx, storage.CreateUserParams{
		Username:     "alice",
		PasswordHash: "hash-b",
	})
	require.ErrorIs(t, err, storage.ErrUniqueViolation)
}

func TestPgSQL_UserLookups(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created, err := pgSQL.CreateUser(ctx, storage.CreateUserParams{
		Username:     "bob",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	byName, err := pgSQL.UserByUsername(ctx, "bob")
	require.NoError(t, err)
	require.NotNil(t, byName)
	require.Equal(t, created.ID, byName.ID)

	byID, err := pgSQL.UserByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "bob", byID.Username)

	missing, err := pgSQL.UserByUsername(ctx, "nobody")
	require.NoError(t, err)
	require.Nil(t, missing)

	missingByID, err := pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missingByID)
}

func TestPgSQL_DeleteUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	created, err := pgSQL.CreateUser(ctx, storage.CreateUserParams{
		Username:     "carol",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, created.ID, deleted.ID)

	// second delete finds nothing
	again, err := pgSQL.DeleteUser(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}

func TestPgSQL_SetAdmin(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	_, err := pgSQL.CreateUser(ctx, storage.CreateUserParams{
		Username:     "dave",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	updated, err := pgSQL.SetAdmin(ctx, "dave", true)
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.True(t, updated.Admin)
	require.False(t, updated.UpdatedAt.IsZero())

	missing, err := pgSQL.SetAdmin(ctx, "nobody", true)
	require.NoError(t, err)
	require.Nil(t, missing)
}
