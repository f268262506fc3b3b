// internal/app/store/watch/watchstore.go
package watchstore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the watch collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new watch store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("watch")}
}

// GetBySlug returns the entry with the given slug regardless of status, or
// mongo.ErrNoDocuments.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Watch, error) {
	var w models.Watch
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&w)
	return w, err
}

// ListPublished returns published entries, newest first, skipping the first
// skip entries. limit <= 0 means no limit.
func (s *Store) ListPublished(ctx context.Context, skip, limit int64) ([]models.Watch, error) {
	opts := options.Find().SetSort(bson.D{{Key: "published_at", Value: -1}, {Key: "_id", Value: -1}})
	if skip > 0 {
		opts.SetSkip(skip)
	}
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cur, err := s.c.Find(ctx, bson.M{"status": models.StatusPublished}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Watch
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert creates or updates the entry identified by w.Slug. PublishedAt is
// stamped the first time an entry is saved as published.
func (s *Store) Upsert(ctx context.Context, w models.Watch) error {
	now := time.Now().UTC()
	if w.Status == "" {
		w.Status = models.StatusDraft
	}

	set := bson.M{
		"slug":         w.Slug,
		"title":        w.Title,
		"status":       w.Status,
		"video_url":    w.VideoURL,
		"thumbnail_id": w.ThumbnailID,
		"description":  w.Description,
		"meta":         w.Meta,
		"updated_at":   now,
	}
	if w.PublishedAt != nil {
		set["published_at"] = w.PublishedAt.UTC()
	}
	onInsert := bson.M{
		"_id":        primitive.NewObjectID(),
		"created_at": now,
	}

	update := bson.M{"$set": set, "$setOnInsert": onInsert}
	if _, err := s.c.UpdateOne(ctx, bson.M{"slug": w.Slug}, update, options.Update().SetUpsert(true)); err != nil {
		return err
	}

	if w.Status == models.StatusPublished && w.PublishedAt == nil {
		_, err := s.c.UpdateOne(ctx,
			bson.M{"slug": w.Slug, "published_at": bson.M{"$exists": false}},
			bson.M{"$set": bson.M{"published_at": now}})
		return err
	}
	return nil
}
