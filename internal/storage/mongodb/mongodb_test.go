package mongodb

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

// TestMongoStore runs against a live deployment and is skipped unless
// MONGODB_TEST_URI is set, e.g.
//
//	MONGODB_TEST_URI=mongodb://localhost:27017 go test ./internal/storage/mongodb
func TestMongoStore(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx := context.Background()
	store, err := New(ctx, uri, "itemsvc_test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() {
		_, _ = store.items.DeleteMany(context.Background(), bson.M{})
		_ = store.Close(context.Background())
	})

	t.Run("create and get round trip", func(t *testing.T) {
		desc := "integration"
		item := &models.Item{Name: "widget", Description: &desc, CreatedAt: time.Now().UTC()}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}
		if item.ID == "" {
			t.Fatal("no id assigned")
		}

		got, err := store.GetItem(ctx, item.ID)
		if err != nil {
			t.Fatalf("GetItem failed: %v", err)
		}
		if got.Name != item.Name {
			t.Errorf("Name = %q, want %q", got.Name, item.Name)
		}
		if got.Description == nil || *got.Description != desc {
			t.Errorf("Description = %v, want %q", got.Description, desc)
		}
		// Mongo stores timestamps at millisecond precision.
		if got.CreatedAt.Sub(item.CreatedAt).Abs() > time.Millisecond {
			t.Errorf("CreatedAt = %v, want ~%v", got.CreatedAt, item.CreatedAt)
		}
	})

	t.Run("missing and malformed ids", func(t *testing.T) {
		if _, err := store.GetItem(ctx, primitive.NewObjectID().Hex()); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("GetItem missing = %v, want ErrNotFound", err)
		}
		if _, err := store.GetItem(ctx, "not-an-id"); !errors.Is(err, storage.ErrInvalidID) {
			t.Errorf("GetItem malformed = %v, want ErrInvalidID", err)
		}
	})

	t.Run("partial update and delete", func(t *testing.T) {
		desc := "keep"
		item := &models.Item{Name: "before", Description: &desc, CreatedAt: time.Now().UTC()}
		if err := store.CreateItem(ctx, item); err != nil {
			t.Fatalf("CreateItem failed: %v", err)
		}

		updated, err := store.UpdateItem(ctx, item.ID, map[string]any{"name": "after"})
		if err != nil {
			t.Fatalf("UpdateItem failed: %v", err)
		}
		if updated.Name != "after" || updated.Description == nil || *updated.Description != desc {
			t.Errorf("update result = %+v, want name changed and description kept", updated)
		}

		if err := store.DeleteItem(ctx, item.ID); err != nil {
			t.Fatalf("DeleteItem failed: %v", err)
		}
		if err := store.DeleteItem(ctx, item.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second delete = %v, want ErrNotFound", err)
		}
	})
}
