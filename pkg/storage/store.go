package storage

import (
	"context"

	"catalog/pkg/domain"
)

// StoreStorage defines persistence operations for stores.
type StoreStorage interface {
	// CreateStore inserts a new store and returns the stored row. A duplicate
	// name yields ErrUniqueViolation.
	CreateStore(ctx context.Context, name string) (*domain.Store, error)
	// Stores lists all stores with their items and tags hydrated.
	Stores(ctx context.Context) ([]domain.Store, error)
	// StoreByID fetches a single store with items and tags hydrated. Returns
	// nil when not found.
	StoreByID(ctx context.Context, id domain.StoreID) (*domain.Store, error)
	// DeleteStore removes a store; its items and tags are removed by the
	// database cascade. Returns the deleted row, or nil when not found.
	DeleteStore(ctx context.Context, id domain.StoreID) (*domain.Store, error)
}
