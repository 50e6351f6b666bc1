// Package memory provides an in-memory implementation of the storage.Store
// interface, used by tests and for running the server without a MongoDB
// deployment. It keeps the same ObjectId hex identifier encoding as the
// MongoDB backend so id validation behaves identically.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store with a mutex-guarded map.
type Store struct {
	mu     sync.RWMutex
	items  map[string]models.Item
	closed bool
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{items: make(map[string]models.Item)}
}

// Close marks the store closed. Any operation after Close returns
// storage.ErrClosed.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Ping reports whether the store is usable.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return storage.ErrClosed
	}
	return nil
}

// CreateItem stores a copy of the item and assigns a fresh ObjectId hex id.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}

	item.ID = primitive.NewObjectID().Hex()
	s.items[item.ID] = clone(*item)
	return nil
}

// GetItem retrieves a copy of the item with the given id.
func (s *Store) GetItem(ctx context.Context, id string) (*models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	item, ok := s.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	item = clone(item)
	return &item, nil
}

// ListItems returns up to storage.ListLimit items, newest first.
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, storage.ErrClosed
	}

	items := make([]models.Item, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, clone(item))
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > storage.ListLimit {
		items = items[:storage.ListLimit]
	}
	return items, nil
}

// UpdateItem applies the partial field set and returns the updated item.
func (s *Store) UpdateItem(ctx context.Context, id string, set map[string]any) (*models.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, storage.ErrClosed
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	item, ok := s.items[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	for field, value := range set {
		v, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("field %q: unsupported value type %T", field, value)
		}
		switch field {
		case "name":
			item.Name = v
		case "description":
			item.Description = &v
		default:
			return nil, fmt.Errorf("unknown field %q", field)
		}
	}

	s.items[id] = clone(item)
	item = clone(item)
	return &item, nil
}

// DeleteItem removes the item with the given id.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return storage.ErrClosed
	}
	if err := validateID(id); err != nil {
		return err
	}

	if _, ok := s.items[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

// validateID enforces the ObjectId hex encoding before any lookup, matching
// the MongoDB backend.
func validateID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return nil
}

// clone copies an item, deep-copying the description pointer so callers
// cannot mutate stored state.
func clone(item models.Item) models.Item {
	if item.Description != nil {
		v := *item.Description
		item.Description = &v
	}
	return item
}
