// internal/app/store/redirects/redirectstore.go
package redirectstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the redirects collection.
type Store struct {
	c *mongo.Collection
}

// New creates a new redirects store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("redirects")}
}

// NormalizeFrom puts a source path in its stored form: a leading slash, no
// trailing slash, no query or fragment. "" stays "".
func NormalizeFrom(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return ""
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = "/"
		}
	}
	return p
}

// Find returns the redirect for the given source path, or
// mongo.ErrNoDocuments.
func (s *Store) Find(ctx context.Context, from string) (models.Redirect, error) {
	var r models.Redirect
	from = NormalizeFrom(from)
	if from == "" {
		return r, mongo.ErrNoDocuments
	}
	err := s.c.FindOne(ctx, bson.M{"from": from}).Decode(&r)
	return r, err
}

// Upsert creates or updates the redirect identified by its normalized From.
func (s *Store) Upsert(ctx context.Context, r models.Redirect) error {
	now := time.Now().UTC()
	from := NormalizeFrom(r.From)

	update := bson.M{
		"$set": bson.M{
			"from":       from,
			"to":         r.To,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"created_at": now,
		},
	}
	_, err := s.c.UpdateOne(ctx, bson.M{"from": from}, update, options.Update().SetUpsert(true))
	return err
}
