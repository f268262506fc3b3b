// internal/app/store/pages/pagestore.go
package pagestore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the pages collection. Pages are keyed by slug.
type Store struct {
	c *mongo.Collection
}

// New creates a new pages store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("pages")}
}

// GetBySlug returns the page with the given slug, or mongo.ErrNoDocuments.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Page, error) {
	var p models.Page
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	return p, err
}

// Upsert creates or replaces the page identified by page.Slug. The _id of an
// existing page is kept.
func (s *Store) Upsert(ctx context.Context, page models.Page) error {
	now := time.Now().UTC()

	update := bson.M{
		"$set": bson.M{
			"slug":       page.Slug,
			"title":      page.Title,
			"content":    page.Content,
			"meta":       page.Meta,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}

	_, err := s.c.UpdateOne(ctx, bson.M{"slug": page.Slug}, update, options.Update().SetUpsert(true))
	return err
}

// GetAll returns every page ordered by slug.
func (s *Store) GetAll(ctx context.Context) ([]models.Page, error) {
	cur, err := s.c.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "slug", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Page
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Exists reports whether a page with the given slug has been saved.
func (s *Store) Exists(ctx context.Context, slug string) (bool, error) {
	count, err := s.c.CountDocuments(ctx, bson.M{"slug": slug})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
