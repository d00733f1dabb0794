package catalog

import (
	"context"

	"catalog/pkg/domain"
)

// CreateItemParams carries the fields accepted when creating an item.
type CreateItemParams struct {
	Name        string
	Description string
	Price       float64
	StoreID     domain.StoreID
}

// UpsertItemParams carries the fields accepted by the item PUT operation.
// StoreID is only required when the item does not exist yet.
type UpsertItemParams struct {
	Name        string
	Description string
	Price       float64
	StoreID     *domain.StoreID
}

// Catalog exposes store, item and tag operations.
type Catalog interface {
	// CreateStore creates a store with a unique name.
	CreateStore(ctx context.Context, name string) (*domain.Store, error)
	// Stores lists all stores with items and tags hydrated.
	Stores(ctx context.Context) ([]domain.Store, error)
	// Store fetches a single store with items and tags hydrated.
	Store(ctx context.Context, id domain.StoreID) (*domain.Store, error)
	// DeleteStore removes a store and, through the database cascade, its
	// items and tags.
	DeleteStore(ctx context.Context, id domain.StoreID) error

	// CreateItem creates an item under an existing store.
	CreateItem(ctx context.Context, params CreateItemParams) (*domain.Item, error)
	// Items lists all items with tags hydrated.
	Items(ctx context.Context) ([]domain.Item, error)
	// Item fetches a single item with tags hydrated.
	Item(ctx context.Context, id domain.ItemID) (*domain.Item, error)
	// UpsertItem updates the item's name and price when it exists, or creates
	// it under the given ID when it does not. The boolean result reports
	// whether a new item was created.
	UpsertItem(ctx context.Context, id domain.ItemID, params UpsertItemParams) (*domain.Item, bool, error)
	// DeleteItem removes an item.
	DeleteItem(ctx context.Context, id domain.ItemID) error

	// CreateTag creates a tag under a store. Tag names are unique per store.
	CreateTag(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error)
	// StoreTags lists a store's tags.
	StoreTags(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error)
	// Tag fetches a single tag with its linked items hydrated.
	Tag(ctx context.Context, id domain.TagID) (*domain.Tag, error)
	// DeleteTag removes a tag that has no linked items.
	DeleteTag(ctx context.Context, id domain.TagID) error
	// LinkTag attaches a tag to an item in the same store and returns the tag.
	LinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (*domain.Tag, error)
	// UnlinkTag detaches a tag from an item.
	UnlinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error
}
