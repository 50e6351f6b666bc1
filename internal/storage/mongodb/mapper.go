package mongodb

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

// itemDoc is the stored document shape for the items collection.
type itemDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description *string            `bson:"description"`
	CreatedAt   primitive.DateTime `bson:"created_at"`
}

// toDoc converts an Item to its stored document. The _id is omitted so the
// store assigns one on insert.
func toDoc(item *models.Item) itemDoc {
	return itemDoc{
		Name:        item.Name,
		Description: item.Description,
		CreatedAt:   primitive.NewDateTimeFromTime(item.CreatedAt),
	}
}

// toItem converts a stored document to the external representation:
// stringified ObjectId and a UTC timestamp.
func (d *itemDoc) toItem() *models.Item {
	return &models.Item{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		CreatedAt:   d.CreatedAt.Time().UTC(),
	}
}

// parseID validates an external id string against the ObjectId encoding
// (24 hex characters). Malformed ids are rejected here, before any database
// operation is attempted.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", storage.ErrInvalidID, id)
	}
	return oid, nil
}
