// Package storage provides abstractions for persistent item storage.
package storage

import (
	"context"
	"errors"

	"itemsvc/internal/models"
)

// ListLimit is the hard cap on the number of items a ListItems call returns.
// This is a truncation, not pagination: items older than the newest ListLimit
// are not visible through the list endpoint.
const ListLimit = 1000

var (
	// ErrNotFound is returned when no item exists with the given id.
	ErrNotFound = errors.New("item not found")

	// ErrInvalidID is returned when an id string does not match the store's
	// identifier encoding. It is always detected before any query is issued.
	ErrInvalidID = errors.New("invalid item id")

	// ErrClosed is returned by any operation after Close. This signals a
	// lifecycle bug in the caller, not a runtime condition to recover from.
	ErrClosed = errors.New("store is closed")
)

// Store defines the interface for item storage operations.
// This abstraction allows swapping storage backends (MongoDB, in-memory)
// without changing the HTTP layer.
type Store interface {
	// CreateItem persists a new item and populates item.ID with the
	// store-assigned identifier.
	CreateItem(ctx context.Context, item *models.Item) error

	// GetItem retrieves an item by its id string.
	GetItem(ctx context.Context, id string) (*models.Item, error)

	// ListItems returns up to ListLimit items ordered by creation time,
	// newest first. An empty result is not an error.
	ListItems(ctx context.Context) ([]models.Item, error)

	// UpdateItem applies the partial field set to the item with the given id
	// and returns the updated item. Fields not present in set are untouched.
	// The set must be non-empty; callers turn empty updates into GetItem.
	UpdateItem(ctx context.Context, id string, set map[string]any) (*models.Item, error)

	// DeleteItem removes the item with the given id.
	DeleteItem(ctx context.Context, id string) error

	// Ping verifies connectivity to the underlying store.
	Ping(ctx context.Context) error

	// Close releases any resources held by the store.
	Close(ctx context.Context) error
}
