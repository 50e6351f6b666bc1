package mongodb

import (
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

func TestParseID(t *testing.T) {
	t.Run("valid 24-hex id", func(t *testing.T) {
		want := primitive.NewObjectID()
		got, err := parseID(want.Hex())
		if err != nil {
			t.Fatalf("parseID failed: %v", err)
		}
		if got != want {
			t.Errorf("parseID = %v, want %v", got, want)
		}
	})

	for _, id := range []string{"", "not-an-id", "abc123", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		t.Run("rejects "+id, func(t *testing.T) {
			if _, err := parseID(id); !errors.Is(err, storage.ErrInvalidID) {
				t.Errorf("parseID(%q) err = %v, want ErrInvalidID", id, err)
			}
		})
	}
}

func TestDocMapping(t *testing.T) {
	desc := "a widget"
	createdAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	item := &models.Item{Name: "widget", Description: &desc, CreatedAt: createdAt}

	doc := toDoc(item)
	if !doc.ID.IsZero() {
		t.Errorf("toDoc set _id = %v, want zero so the store assigns it", doc.ID)
	}

	doc.ID = primitive.NewObjectID()
	got := doc.toItem()

	if got.ID != doc.ID.Hex() {
		t.Errorf("ID = %q, want %q", got.ID, doc.ID.Hex())
	}
	if got.Name != item.Name {
		t.Errorf("Name = %q, want %q", got.Name, item.Name)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("Description = %v, want %q", got.Description, desc)
	}
	if !got.CreatedAt.Equal(createdAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, createdAt)
	}
	if got.CreatedAt.Location() != time.UTC {
		t.Errorf("CreatedAt location = %v, want UTC", got.CreatedAt.Location())
	}

	t.Run("nil description stays nil", func(t *testing.T) {
		doc := toDoc(&models.Item{Name: "bare", CreatedAt: createdAt})
		if out := doc.toItem(); out.Description != nil {
			t.Errorf("Description = %v, want nil", out.Description)
		}
	})
}
