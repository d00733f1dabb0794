package postgres_test

import (
	"context"
	"testing"

	"catalog/pkg/domain"
	"catalog/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_CreateItem(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	store, err := pgSQL.CreateStore(ctx, "bakery")
	require.NoError(t, err)

	created, err := pgSQL.CreateItem(ctx, storage.CreateItemParams{
		Name:        "sourdough",
		Description: "naturally leavened",
		Price:       6.5,
		StoreID:     store.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "sourdough", created.Name)
	require.Equal(t, "naturally leavened", created.Description)
	require.InEpsilon(t, 6.5, created.Price, 1e-9)
	require.Equal(t, store.ID, created.StoreID)

	// unknown store maps to the foreign key sentinel
	_, err = pgSQL.CreateItem(ctx, storage.CreateItemParams{
		Name:    "rye",
		Price:   5,
		StoreID: domain.StoreID(uuid.New()),
	})
	require.ErrorIs(t, err, storage.ErrForeignKeyViolation)
}

func TestPgSQL_InsertItemWithID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	store, err := pgSQL.CreateStore(ctx, "deli")
	require.NoError(t, err)

	id := domain.ItemID(uuid.New())
	created, err := pgSQL.InsertItemWithID(ctx, id, storage.CreateItemParams{
		Name:    "pastrami",
		Price:   12,
		StoreID: store.ID,
	})
	require.NoError(t, err)
	require.Equal(t, id, created.ID)

	// inserting under the same id again collides
	_, err = pgSQL.InsertItemWithID(ctx, id, storage.CreateItemParams{
		Name:    "salami",
		Price:   10,
		StoreID: store.ID,
	})
	require.ErrorIs(t, err, storage.ErrUniqueViolation)
}

func TestPgSQL_Items_HydratesTags(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	store, err := pgSQL.CreateStore(ctx, "garden")
	require.NoError(t, err)

	item, err := pgSQL.CreateItem(ctx, storage.CreateItemParams{
		Name:    "shovel",
		Price:   25,
		StoreID: store.ID,
	})
	require.NoError(t, err)

	tag, err := pgSQL.CreateTag(ctx, store.ID, "tools")
	require.NoError(t, err)
	require.NoError(t, pgSQL.LinkTag(ctx, item.ID, tag.ID))

	items, err := pgSQL.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Tags, 1)
	require.Equal(t, "tools", items[0].Tags[0].Name)

	fetched, err := pgSQL.ItemByID(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Len(t, fetched.Tags, 1)
}

func TestPgSQL_UpdateItem(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	store, err := pgSQL.CreateStore(ctx, "cafe")
	require.NoError(t, err)

	item, err := pgSQL.CreateItem(ctx, storage.CreateItemParams{
		Name:    "espresso",
		Price:   2.5,
		StoreID: store.ID,
	})
	require.NoError(t, err)

	updated, err := pgSQL.UpdateItem(ctx, item.ID, storage.ItemUpdates{
		Name:  "double espresso",
		Price: 3.5,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "double espresso", updated.Name)
	require.InEpsilon(t, 3.5, updated.Price, 1e-9)
	require.False(t, updated.UpdatedAt.IsZero())

	missing, err := pgSQL.UpdateItem(ctx, domain.ItemID(uuid.New()), storage.ItemUpdates{
		Name:  "x",
		Price: 1,
	})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_DeleteItem(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	store, err := pgSQL.CreateStore(ctx, "florist")
	require.NoError(t, err)

	item, err := pgSQL.CreateItem(ctx, storage.CreateItemParams{
		Name:    "tulips",
		Price:   8,
		StoreID: store.ID,
	})
	require.NoError(t, err)

	deleted, err := pgSQL.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.Equal(t, item.ID, deleted.ID)

	again, err := pgSQL.DeleteItem(ctx, item.ID)
	require.NoError(t, err)
	require.Nil(t, again)
}
