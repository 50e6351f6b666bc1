package models

import (
	"errors"
	"time"
)

// ErrNameRequired is returned by CreateItem.Validate when name is missing
// or empty.
var ErrNameRequired = errors.New("name is required and must be non-empty")

// Item is the stored representation of a document in the items collection.
//
// ID is the store-assigned identifier (24-hex ObjectId string), immutable
// after creation. CreatedAt is set once at creation time and never changes.
type Item struct {
	// ID is the unique identifier for the item, assigned by the store.
	ID string `json:"id"`

	// Name is the required human-readable item name.
	Name string `json:"name"`

	// Description is optional; nil serializes as JSON null.
	Description *string `json:"description"`

	// CreatedAt is the UTC creation timestamp.
	CreatedAt time.Time `json:"created_at"`
}

// CreateItem is the payload for creating an item.
type CreateItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Validate checks the creation payload against the item schema.
func (p *CreateItem) Validate() error {
	if p.Name == "" {
		return ErrNameRequired
	}
	return nil
}

// Item builds a new Item from the payload with the given creation time.
// The ID is left empty for the store to assign.
func (p *CreateItem) Item(createdAt time.Time) *Item {
	return &Item{
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   createdAt.UTC(),
	}
}

// UpdateItem is the payload for updating an item. All fields are optional;
// a field absent from (or null in) the request body is left untouched on
// the stored item.
type UpdateItem struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Fields returns the partial field set to apply, containing only the fields
// explicitly provided. An empty payload yields an empty map.
func (p *UpdateItem) Fields() map[string]any {
	set := make(map[string]any)
	if p.Name != nil {
		set["name"] = *p.Name
	}
	if p.Description != nil {
		set["description"] = *p.Description
	}
	return set
}
