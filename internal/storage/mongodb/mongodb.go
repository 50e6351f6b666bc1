// Package mongodb provides a MongoDB-backed implementation of the
// storage.Store interface.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"itemsvc/internal/models"
	"itemsvc/internal/storage"
)

const collectionName = "items"

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store implements storage.Store using MongoDB. It holds the client for the
// whole process lifetime; the driver's client is safe for concurrent use, so
// the store adds no locking of its own.
type Store struct {
	client *mongo.Client
	items  *mongo.Collection
	closed atomic.Bool
}

// New connects to MongoDB at the given URI and verifies the connection with
// a ping before returning. There is no retry: a connect failure at startup
// is fatal to the caller.
func New(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Store{
		client: client,
		items:  client.Database(dbName).Collection(collectionName),
	}, nil
}

// Close disconnects the client. Any operation after Close returns
// storage.ErrClosed.
func (s *Store) Close(ctx context.Context) error {
	s.closed.Store(true)
	return s.client.Disconnect(ctx)
}

// Ping verifies connectivity to the deployment.
func (s *Store) Ping(ctx context.Context) error {
	if s.closed.Load() {
		return storage.ErrClosed
	}
	return s.client.Ping(ctx, readpref.Primary())
}

// CreateItem inserts a new document and populates item.ID with the assigned
// ObjectId.
func (s *Store) CreateItem(ctx context.Context, item *models.Item) error {
	if s.closed.Load() {
		return storage.ErrClosed
	}

	res, err := s.items.InsertOne(ctx, toDoc(item))
	if err != nil {
		return fmt.Errorf("failed to insert item: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	item.ID = oid.Hex()
	return nil
}

// GetItem fetches a document by id. The id string is validated before any
// query is issued, so a malformed id is distinguishable from a missing one.
func (s *Store) GetItem(ctx context.Context, id string) (*models.Item, error) {
	if s.closed.Load() {
		return nil, storage.ErrClosed
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc itemDoc
	err = s.items.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return doc.toItem(), nil
}

// ListItems returns up to storage.ListLimit documents, newest first.
func (s *Store) ListItems(ctx context.Context) ([]models.Item, error) {
	if s.closed.Load() {
		return nil, storage.ErrClosed
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(storage.ListLimit)

	cur, err := s.items.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}

	var docs []itemDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}

	items := make([]models.Item, len(docs))
	for i := range docs {
		items[i] = *docs[i].toItem()
	}
	return items, nil
}

// UpdateItem applies the partial field set with $set and returns the
// post-update document.
func (s *Store) UpdateItem(ctx context.Context, id string, set map[string]any) (*models.Item, error) {
	if s.closed.Load() {
		return nil, storage.ErrClosed
	}

	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc itemDoc
	err = s.items.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	return doc.toItem(), nil
}

// DeleteItem removes a document by id.
func (s *Store) DeleteItem(ctx context.Context, id string) error {
	if s.closed.Load() {
		return storage.ErrClosed
	}

	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := s.items.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	if res.DeletedCount == 0 {
		return storage.ErrNotFound
	}
	return nil
}
