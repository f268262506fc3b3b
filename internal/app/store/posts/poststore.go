// internal/app/store/posts/poststore.go
package poststore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the posts collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new posts store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("posts")}
}

// GetBySlug returns the post with the given slug regardless of status, or
// mongo.ErrNoDocuments.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Post, error) {
	var p models.Post
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	return p, err
}

// ListPublished returns published posts, newest first. An empty category
// lists every post. limit <= 0 means no limit.
func (s *Store) ListPublished(ctx context.Context, category string, skip, limit int64) ([]models.Post, error) {
	filter := bson.M{"status": models.StatusPublished}
	if category != "" {
		filter["categories"] = category
	}
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}})
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

	var out []models.Post
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert creates or updates the post identified by p.Slug. PublishedAt is
// stamped the first time a post is saved as published.
func (s *Store) Upsert(ctx context.Context, p models.Post) error {
	now := time.Now().UTC()
	if p.Status == "" {
		p.Status = models.StatusDraft
	}

	set := bson.M{
		"slug":          p.Slug,
		"title":         p.Title,
		"status":        p.Status,
		"hero_image_id": p.HeroImageID,
		"content":       p.Content,
		"categories":    p.Categories,
		"meta":          p.Meta,
		"updated_at":    now,
	}
	if p.PublishedAt != nil {
		set["published_at"] = p.PublishedAt.UTC()
	}
	onInsert := bson.M{
		"_id":        primitive.NewObjectID(),
		"created_at": now,
	}

	update := bson.M{"$set": set, "$setOnInsert": onInsert}
	if _, err := s.c.UpdateOne(ctx, bson.M{"slug": p.Slug}, update, options.Update().SetUpsert(true)); err != nil {
		return err
	}

	if p.Status == models.StatusPublished && p.PublishedAt == nil {
		_, err := s.c.UpdateOne(ctx,
			bson.M{"slug": p.Slug, "published_at": bson.M{"$exists": false}},
			bson.M{"$set": bson.M{"published_at": now}})
		return err
	}
	return nil
}
