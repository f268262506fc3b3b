// internal/app/store/media/mediastore.go
package mediastore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides access to the media collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new media store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("media")}
}

// GetByID returns one media document, or mongo.ErrNoDocuments.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Media, error) {
	var m models.Media
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	return m, err
}

// Create inserts m, filling in ID, MediaType and CreatedAt when unset, and
// returns the stored document.
func (s *Store) Create(ctx context.Context, m models.Media) (models.Media, error) {
	if m.ID.IsZero() {
		m.ID = primitive.NewObjectID()
	}
	if m.MediaType == "" {
		m.MediaType = models.MediaTypeFromMime(m.MimeType)
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = &now

	if _, err := s.c.InsertOne(ctx, m); err != nil {
		return models.Media{}, err
	}
	return m, nil
}
