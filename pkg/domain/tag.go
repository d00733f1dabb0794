package domain

import (
	"time"

	"github.com/google/uuid"
)

// TagID uniquely identifies a tag.
type TagID uuid.UUID

// Tag represents a label owned by a store and attachable to that store's items.
// Tag names are unique within a store but may repeat across stores.
type Tag struct {
	// ID is the unique identifier of the tag.
	ID TagID `json:"id"`
	// Name is the tag's display name.
	Name string `json:"name"`
	// StoreID is the store the tag belongs to.
	StoreID StoreID `json:"storeId"`

	// Items contains the items linked to the tag when hydrated; nil otherwise.
	Items []Item `json:"items,omitempty"`

	// CreatedAt is the time the tag was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time the tag was last modified.
	UpdatedAt time.Time `json:"updatedAt"`
}
