package domain

import (
	"time"

	"github.com/google/uuid"
)

// ItemID uniquely identifies an item.
type ItemID uuid.UUID

// Item represents a product listed under a store.
type Item struct {
	// ID is the unique identifier of the item.
	ID ItemID `json:"id"`
	// Name is the item's display name.
	Name string `json:"name"`
	// Description is optional free-form text about the item.
	Description string `json:"description,omitempty"`
	// Price is the item's price with two decimal places.
	Price float64 `json:"price"`
	// StoreID is the store the item belongs to.
	StoreID StoreID `json:"storeId"`

	// Tags contains the tags linked to the item when hydrated; nil otherwise.
	Tags []Tag `json:"tags,omitempty"`

	// CreatedAt is the time the item was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the item was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
