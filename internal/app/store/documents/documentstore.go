// internal/app/store/documents/documentstore.go
package documentstore

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the documents collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new documents store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("documents")}
}

// GetByID returns one document, or mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Document, error) {
	var d models.Document
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&d)
	return d, err
}

// List returns documents ordered by title, skipping the first skip. An empty
// category lists all; limit <= 0 means no limit.
func (s *Store) List(ctx context.Context, category string, skip, limit int64) ([]models.Document, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}, {Key: "_id", Value: 1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Document
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create inserts d and returns the stored document. Category defaults to
// "other"; unknown categories are rejected.
func (s *Store) Create(ctx context.Context, d models.Document) (models.Document, error) {
	if d.Category == "" {
		d.Category = models.DocCategoryOther
	}
	if !models.IsValidDocumentCategory(d.Category) {
		return models.Document{}, fmt.Errorf("unknown document category %q", d.Category)
	}
	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}
	now := time.Now().UTC()
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now
	}
	d.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, d); err != nil {
		return models.Document{}, err
	}
	return d, nil
}
