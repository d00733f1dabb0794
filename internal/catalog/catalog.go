// Package catalog implements the store, item and tag operations on top of the
// storage layer, translating storage misses and constraint violations into
// semantic errors.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"catalog/pkg/domain"
	"catalog/pkg/serrors"
	"catalog/pkg/storage"
)

// catalog is the concrete implementation of the Catalog interface.
type catalog struct {
	storage storage.Storage
}

// New creates a Catalog service backed by the given storage.
func New(strg storage.Storage) Catalog {
	return catalog{storage: strg}
}

func (c catalog) CreateStore(ctx context.Context, name string) (*domain.Store, error) {
	store, err := c.storage.CreateStore(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrUniqueViolation) {
			return nil, serrors.Wrap(serrors.ErrConflict, err, "a store with that name already exists")
		}

		return nil, fmt.Errorf("could not create store: %w", err)
	}

	return store, nil
}

func (c catalog) Stores(ctx context.Context) ([]domain.Store, error) {
	stores, err := c.storage.Stores(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list stores: %w", err)
	}

	return stores, nil
}

func (c catalog) Store(ctx context.Context, id domain.StoreID) (*domain.Store, error) {
	store, err := c.storage.StoreByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch store: %w", err)
	}
	if store == nil {
		return nil, serrors.With(serrors.ErrNotFound, "store not found")
	}

	return store, nil
}

func (c catalog) DeleteStore(ctx context.Context, id domain.StoreID) error {
	deleted, err := c.storage.DeleteStore(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete store: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "store not found")
	}

	return nil
}

func (c catalog) CreateItem(ctx context.Context, params CreateItemParams) (*domain.Item, error) {
	item, err := c.storage.CreateItem(ctx, storage.CreateItemParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		StoreID:     params.StoreID,
	})
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "store not found")
		}

		return nil, fmt.Errorf("could not create item: %w", err)
	}

	return item, nil
}

func (c catalog) Items(ctx context.Context) ([]domain.Item, error) {
	items, err := c.storage.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list items: %w", err)
	}

	return items, nil
}

func (c catalog) Item(ctx context.Context, id domain.ItemID) (*domain.Item, error) {
	item, err := c.storage.ItemByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item: %w", err)
	}
	if item == nil {
		return nil, serrors.With(serrors.ErrNotFound, "item not found")
	}

	return item, nil
}

func (c catalog) UpsertItem(ctx context.Context, id domain.ItemID, params UpsertItemParams) (*domain.Item, bool, error) {
	updated, err := c.storage.UpdateItem(ctx, id, storage.ItemUpdates{
		Name:  params.Name,
		Price: params.Price,
	})
	if err != nil {
		return nil, false, fmt.Errorf("could not update item: %w", err)
	}
	if updated != nil {
		return updated, false, nil
	}

	// create path: the caller must name the owning store
	if params.StoreID == nil {
		return nil, false, serrors.With(serrors.ErrBadRequest, "store_id is required to create an item")
	}

	created, err := c.storage.InsertItemWithID(ctx, id, storage.CreateItemParams{
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price,
		StoreID:     *params.StoreID,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrForeignKeyViolation):
			return nil, false, serrors.Wrap(serrors.ErrNotFound, err, "store not found")
		case errors.Is(err, storage.ErrUniqueViolation):
			// lost a race with a concurrent insert under the same id
			return nil, false, serrors.Wrap(serrors.ErrConflict, err, "item already exists")
		}

		return nil, false, fmt.Errorf("could not create item: %w", err)
	}

	return created, true, nil
}

func (c catalog) DeleteItem(ctx context.Context, id domain.ItemID) error {
	deleted, err := c.storage.DeleteItem(ctx, id)
	if err != nil {
		return fmt.Errorf("could not delete item: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "item not found")
	}

	return nil
}

func (c catalog) CreateTag(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error) {
	tag, err := c.storage.CreateTag(ctx, storeID, name)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrUniqueViolation):
			return nil, serrors.Wrap(serrors.ErrConflict, err, "a tag with that name already exists in the store")
		case errors.Is(err, storage.ErrForeignKeyViolation):
			return nil, serrors.Wrap(serrors.ErrNotFound, err, "store not found")
		}

		return nil, fmt.Errorf("could not create tag: %w", err)
	}

	return tag, nil
}

func (c catalog) StoreTags(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error) {
	// distinguish an empty store from a missing one
	store, err := c.storage.StoreByID(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch store: %w", err)
	}
	if store == nil {
		return nil, serrors.With(serrors.ErrNotFound, "store not found")
	}

	tags, err := c.storage.TagsByStore(ctx, storeID)
	if err != nil {
		return nil, fmt.Errorf("could not list tags: %w", err)
	}

	return tags, nil
}

func (c catalog) Tag(ctx context.Context, id domain.TagID) (*domain.Tag, error) {
	tag, err := c.storage.TagByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return tag, nil
}

func (c catalog) DeleteTag(ctx context.Context, id domain.TagID) error {
	deleted, err := c.storage.DeleteTag(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrForeignKeyViolation) {
			return serrors.Wrap(serrors.ErrConflict, err, "tag is still linked to items")
		}

		return fmt.Errorf("could not delete tag: %w", err)
	}
	if deleted == nil {
		return serrors.With(serrors.ErrNotFound, "tag not found")
	}

	return nil
}

func (c catalog) LinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (*domain.Tag, error) {
	item, err := c.storage.ItemByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch item: %w", err)
	}
	if item == nil {
		return nil, serrors.With(serrors.ErrNotFound, "item not found")
	}

	tag, err := c.storage.TagByID(ctx, tagID)
	if err != nil {
		return nil, fmt.Errorf("could not fetch tag: %w", err)
	}
	if tag == nil {
		return nil, serrors.With(serrors.ErrNotFound, "tag not found")
	}

	// tags only apply to items sold in the same store
	if item.StoreID != tag.StoreID {
		return nil, serrors.With(serrors.ErrBadRequest, "item and tag belong to different stores")
	}

	if err := c.storage.LinkTag(ctx, itemID, tagID); err != nil {
		return nil, fmt.Errorf("could not link tag: %w", err)
	}

	return tag, nil
}

func (c catalog) UnlinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error {
	removed, err := c.storage.UnlinkTag(ctx, itemID, tagID)
	if err != nil {
		return fmt.Errorf("could not unlink tag: %w", err)
	}
	if !removed {
		return serrors.With(serrors.ErrNotFound, "item is not linked to that tag")
	}

	return nil
}
