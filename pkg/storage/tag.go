package storage

import (
	"context"

	"catalog/pkg/domain"
)

// TagStorage defines persistence operations for tags and their item links.
type TagStorage interface {
	// CreateTag inserts a new tag under a store and returns the stored row.
	// A duplicate name within the store yields ErrUniqueViolation; an unknown
	// store yields ErrForeignKeyViolation.
	CreateTag(ctx context.Context, storeID domain.StoreID, name string) (*domain.Tag, error)
	// TagsByStore lists all tags belonging to a store.
	TagsByStore(ctx context.Context, storeID domain.StoreID) ([]domain.Tag, error)
	// TagByID fetches a single tag with its linked items hydrated. Returns
	// nil when not found.
	TagByID(ctx context.Context, id domain.TagID) (*domain.Tag, error)
	// DeleteTag removes a tag that has no linked items. It returns the
	// deleted row, nil when the tag does not exist, and ErrForeignKeyViolation
	// when items are still linked.
	DeleteTag(ctx context.Context, id domain.TagID) (*domain.Tag, error)
	// LinkTag attaches a tag to an item. Linking twice is a no-op. Unknown
	// item or tag yields ErrForeignKeyViolation.
	LinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) error
	// UnlinkTag detaches a tag from an item. Returns false when no link existed.
	UnlinkTag(ctx context.Context, itemID domain.ItemID, tagID domain.TagID) (bool, error)
}
