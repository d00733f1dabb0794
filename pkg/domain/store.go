package domain

import (
	"time"

	"github.com/google/uuid"
)

// StoreID uniquely identifies a store.
type StoreID uuid.UUID

// Store represents a store that owns items and tags.
type Store struct {
	// ID is the unique identifier of the store.
	ID StoreID `json:"id"`
	// Name is the store's unique display name.
	Name string `json:"name"`

	// Items contains the store's items when the store was fetched with its
	// relations hydrated; nil otherwise.
	Items []Item `json:"items,omitempty"`
	// Tags contains the store's tags when hydrated; nil otherwise.
	Tags []Tag `json:"tags,omitempty"`

	// CreatedAt is the time the store was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the store was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
