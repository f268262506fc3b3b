// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the projects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new projects store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

// GetBySlug returns the project with the given slug regardless of status,
// or mongo.ErrNoDocuments.
func (s *Store) GetBySlug(ctx context.Context, slug string) (models.Project, error) {
	var p models.Project
	err := s.c.FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	return p, err
}

// ListPublished returns published projects, newest first. An empty category
// lists every project. limit <= 0 means no limit.
func (s *Store) ListPublished(ctx context.Context, category string, skip, limit int64) ([]models.Project, error) {
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
	return s.find(ctx, filter, opts)
}

// PublishedByIDs returns the published projects among ids in the order the
// ids are given. Missing and draft projects are skipped.
func (s *Store) PublishedByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	found, err := s.find(ctx, bson.M{"_id": bson.M{"$in": ids}, "status": models.StatusPublished}, options.Find())
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Project, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	out := make([]models.Project, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			out = append(out, p)
			delete(byID, id)
		}
	}
	return out, nil
}

func (s *Store) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Project, error) {
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Project
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Upsert creates or updates the project identified by p.Slug. PublishedAt
// is stamped the first time a project is saved as published.
func (s *Store) Upsert(ctx context.Context, p models.Project) error {
	now := time.Now().UTC()
	if p.Status == "" {
		p.Status = models.StatusDraft
	}

	set := bson.M{
		"slug":           p.Slug,
		"title":          p.Title,
		"status":         p.Status,
		"hero_image_id":  p.HeroImageID,
		"video_asset_id": p.VideoAssetID,
		"content":        p.Content,
		"categories":     p.Categories,
		"related_ids":    p.RelatedIDs,
		"meta":           p.Meta,
		"updated_at":     now,
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
