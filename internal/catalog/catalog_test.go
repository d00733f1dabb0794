package catalog_test

import (
	"context"
	"testing"

	"catalog/internal/catalog"
	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// stubStorage overrides the storage methods the catalog service touches.
type stubStorage struct {
	storage.Storage

	createStore      func(ctx context.Context, name string) (*domain.Store, error)
	storeByID        func(ctx context.Context, id domain.StoreID) (*domain.Store, error)
	deleteStore      func(ctx context.Context, id domain.StoreID) (*domain.Store, error)
	createItem       func(ctx context.Context, params storage.CreateItemParams) (*domain.Item, error)
	itemByID         func(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	updateItem       func(ctx context.Context, id domain.ItemID, updates storage.ItemUpdates) (*domain.Item, error)
	insertItemWithID func(ctx context.Context, id domain.ItemID, params storage.CreateItemParams) (*domain.Item, error)
	deleteItem       func(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	createTag        func(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error)
	tagsByStore      func(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error)
	tagByID          func(ctx context.Context, id domain.TagID) (*domain.Tag, error)
	deleteTag        func(ctx context.Context, id domain.TagID) (*domain.Tag, error)
	linkTag          func(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error
	unlinkTag        func(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (bool, error)
}

func (s *stubStorage) CreateStore(ctx context.Context, name string) (*domain.Store, error) {
	return s.createStore(ctx, name)
}

func (s *stubStorage) StoreByID(ctx context.Context, id domain.StoreID) (*domain.Store, error) {
	return s.storeByID(ctx, id)
}

func (s *stubStorage) DeleteStore(ctx context.Context, id domain.StoreID) (*domain.Store, error) {
	return s.deleteStore(ctx, id)
}

func (s *stubStorage) CreateItem(ctx context.Context, params storage.CreateItemParams) (*domain.Item, error) {
	return s.createItem(ctx, params)
}

func (s *stubStorage) ItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	return s.itemByID(ctx, id)
}

func (s *stubStorage) UpdateItem(ctx context.Context,
	id domain.ItemID,
	updates storage.ItemUpdates) (*domain.Item, error) {
	return s.updateItem(ctx, id, updates)
}

func (s *stubStorage) InsertItemWithID(ctx context.Context,
	id domain.ItemID,
	params storage.CreateItemParams) (*domain.Item, error) {
	return s.insertItemWithID(ctx, id, params)
}

func (s *stubStorage) DeleteItem(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	return s.deleteItem(ctx, id)
}

func (s *stubStorage) CreateTag(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error) {
	return s.createTag(ctx, storeID, name)
}

func (s *stubStorage) TagsByStore(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error) {
	return s.tagsByStore(ctx, storeID)
}

func (s *stubStorage) TagByID(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	return s.tagByID(ctx, id)
}

func (s *stubStorage) DeleteTag(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	return s.deleteTag(ctx, id)
}

func (s *stubStorage) LinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error {
	return s.linkTag(ctx, itemID, tagID)
}

func (s *stubStorage) UnlinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (bool, error) {
	return s.unlinkTag(ctx, itemID, tagID)
}

func TestCatalog_CreateStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		createStore: func(_ context.Context, name string) (*domain.Store, error) {
			return &domain.Store{ID: domain.StoreID(uuid.New()), Name: name}, nil
		},
	}

	store, err := catalog.New(strg).CreateStore(ctx, "grocery")
	require.NoError(t, err)
	require.Equal(t, "grocery", store.Name)

	strg.createStore = func(context.Context, string) (*domain.Store, error) {
		return nil, storage.ErrUniqueViolation
	}
	_, err = catalog.New(strg).CreateStore(ctx, "grocery")
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_StoreNotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		storeByID:   func(context.Context, domain.StoreID) (*domain.Store, error) { return nil, nil },
		deleteStore: func(context.Context, domain.StoreID) (*domain.Store, error) { return nil, nil },
	}
	svc := catalog.New(strg)

	_, err := svc.Store(ctx, domain.StoreID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)

	err = svc.DeleteStore(ctx, domain.StoreID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_CreateItem_UnknownStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		createItem: func(context.Context, storage.CreateItemParams) (*domain.Item, error) {
			return nil, storage.ErrForeignKeyViolation
		},
	}

	_, err := catalog.New(strg).CreateItem(ctx, catalog.CreateItemParams{
		Name:    "bread",
		Price:   3,
		StoreID: domain.StoreID(uuid.New()),
	})
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_UpsertItem_UpdatesExisting(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := domain.ItemID(uuid.New())

	strg := &stubStorage{
		updateItem: func(_ context.Context, gotID domain.ItemID, updates storage.ItemUpdates) (*domain.Item, error) {
			require.Equal(t, id, gotID)
			require.Equal(t, "bread", updates.Name)
			require.InEpsilon(t, 3.5, updates.Price, 1e-9)

			return &domain.Item{ID: gotID, Name: updates.Name, Price: updates.Price}, nil
		},
	}

	item, created, err := catalog.New(strg).UpsertItem(ctx, id, catalog.UpsertItemParams{
		Name:  "bread",
		Price: 3.5,
	})
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, "bread", item.Name)
}

func TestCatalog_UpsertItem_CreatesMissing(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	id := domain.ItemID(uuid.New())
	storeID := domain.StoreID(uuid.New())

	strg := &stubStorage{
		updateItem: func(context.Context, domain.ItemID, storage.ItemUpdates) (*domain.Item, error) {
			return nil, nil
		},
		insertItemWithID: func(_ context.Context,
			gotID domain.ItemID,
			params storage.CreateItemParams) (*domain.Item, error) {
			require.Equal(t, id, gotID)
			require.Equal(t, storeID, params.StoreID)

			return &domain.Item{ID: gotID, Name: params.Name, Price: params.Price, StoreID: params.StoreID}, nil
		},
	}

	item, created, err := catalog.New(strg).UpsertItem(ctx, id, catalog.UpsertItemParams{
		Name:    "bread",
		Price:   3.5,
		StoreID: &storeID,
	})
	require.NoError(t, err)
	require.True(t, created)
	require.Equal(t, id, item.ID)
}

func TestCatalog_UpsertItem_CreateNeedsStoreID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		updateItem: func(context.Context, domain.ItemID, storage.ItemUpdates) (*domain.Item, error) {
			return nil, nil
		},
	}

	_, _, err := catalog.New(strg).UpsertItem(ctx, domain.ItemID(uuid.New()), catalog.UpsertItemParams{
		Name:  "bread",
		Price: 3.5,
	})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_CreateTag_Conflicts(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		createTag: func(context.Context, domain.StoreID, string) (*domain.Tag, error) {
			return nil, storage.ErrUniqueViolation
		},
	}
	_, err := catalog.New(strg).CreateTag(ctx, domain.StoreID(uuid.New()), "organic")
	require.ErrorIs(t, err, serrors.ErrConflict)

	strg.createTag = func(context.Context, domain.StoreID, string) (*domain.Tag, error) {
		return nil, storage.ErrForeignKeyViolation
	}
	_, err = catalog.New(strg).CreateTag(ctx, domain.StoreID(uuid.New()), "organic")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_StoreTags_MissingStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		storeByID: func(context.Context, domain.StoreID) (*domain.Store, error) { return nil, nil },
	}

	_, err := catalog.New(strg).StoreTags(ctx, domain.StoreID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestCatalog_DeleteTag_StillLinked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		deleteTag: func(context.Context, domain.TagID) (*domain.Tag, error) {
			return nil, storage.ErrForeignKeyViolation
		},
	}

	err := catalog.New(strg).DeleteTag(ctx, domain.TagID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestCatalog_LinkTag(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	storeID := domain.StoreID(uuid.New())
	itemID := domain.ItemID(uuid.New())
	tagID := domain.TagID(uuid.New())

	linked := false
	strg := &stubStorage{
		itemByID: func(context.Context, domain.ItemID) (*domain.Item, error) {
			return &domain.Item{ID: itemID, StoreID: storeID}, nil
		},
		tagByID: func(context.Context, domain.TagID) (*domain.Tag, error) {
			return &domain.Tag{ID: tagID, Name: "organic", StoreID: storeID}, nil
		},
		linkTag: func(context.Context, domain.ItemID, domain.TagID) error {
			linked = true

			return nil
		},
	}

	tag, err := catalog.New(strg).LinkTag(ctx, itemID, tagID)
	require.NoError(t, err)
	require.True(t, linked)
	require.Equal(t, "organic", tag.Name)
}

func TestCatalog_LinkTag_StoreMismatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		itemByID: func(context.Context, domain.ItemID) (*domain.Item, error) {
			return &domain.Item{StoreID: domain.StoreID(uuid.New())}, nil
		},
		tagByID: func(context.Context, domain.TagID) (*domain.Tag, error) {
			return &domain.Tag{StoreID: domain.StoreID(uuid.New())}, nil
		},
	}

	_, err := catalog.New(strg).LinkTag(ctx, domain.ItemID(uuid.New()), domain.TagID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestCatalog_UnlinkTag_NotLinked(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	strg := &stubStorage{
		unlinkTag: func(context.Context, domain.ItemID, domain.TagID) (bool, error) {
			return false, nil
		},
	}

	err := catalog.New(strg).UnlinkTag(ctx, domain.ItemID(uuid.New()), domain.TagID(uuid.New()))
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
