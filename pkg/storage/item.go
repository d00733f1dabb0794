package storage

import (
	"context"

	"catalog/pkg/domain"
)

// CreateItemParams carries the fields required to insert a new item.
type CreateItemParams struct {
	// Name is the item's display name.
	Name string
	// Description is optional free-form text.
	Description string
	// Price is the item's price.
	Price float64
	// StoreID is the owning store. An unknown store yields ErrForeignKeyViolation.
	StoreID domain.StoreID
}

// ItemUpdates describes the fields applied when updating an existing item.
type ItemUpdates struct {
	// Name is the new display name.
	Name string
	// Price is the new price.
	Price float64
}

// ItemStorage defines persistence operations for items.
type ItemStorage interface {
	// CreateItem inserts a new item and returns the stored row.
	CreateItem(ctx context.Context, params CreateItemParams) (*domain.Item, error)
	// Items lists all items with their tags hydrated.
	Items(ctx context.Context) ([]domain.Item, error)
	// ItemByID fetches a single item with its tags hydrated. Returns nil when
	// not found.
	ItemByID(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	// UpdateItem applies updates to an existing item and returns the updated
	// row, or nil when the item does not exist.
	UpdateItem(ctx context.Context, id domain.ItemID, updates ItemUpdates) (*domain.Item, error)
	// InsertItemWithID inserts an item under a caller-chosen ID. Used by the
	// PUT upsert path. A duplicate ID yields ErrUniqueViolation.
	InsertItemWithID(ctx context.Context, id domain.ItemID, params CreateItemParams) (*domain.Item, error)
	// DeleteItem removes an item. Returns the deleted row, or nil when not found.
	DeleteItem(ctx context.Context, id domain.ItemID) (*domain.Item, error)
}
