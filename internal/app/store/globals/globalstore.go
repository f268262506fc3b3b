// internal/app/store/globals/globalstore.go
package globalstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrInvalidGlobal is wrapped by Save errors for values an editor must fix.
var ErrInvalidGlobal = errors.New("invalid global")

// Store provides access to the site-wide singletons in the globals
// collection. Each global is one document whose _id is its key.
type Store struct {
	c *mongo.Collection
}

// New creates a new globals store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("globals")}
}

// Header returns the saved header, or mongo.ErrNoDocuments.
func (s *Store) Header(ctx context.Context) (models.Header, error) {
	var h models.Header
	err := s.c.FindOne(ctx, bson.M{"_id": models.GlobalHeader}).Decode(&h)
	return h, err
}

// Footer returns the saved footer, or mongo.ErrNoDocuments.
func (s *Store) Footer(ctx context.Context) (models.Footer, error) {
	var f models.Footer
	err := s.c.FindOne(ctx, bson.M{"_id": models.GlobalFooter}).Decode(&f)
	return f, err
}

// SaveHeader replaces the header.
func (s *Store) SaveHeader(ctx context.Context, h models.Header) error {
	if len(h.NavItems) > models.MaxNavItems {
		return fmt.Errorf("%w: header allows at most %d nav items, got %d", ErrInvalidGlobal, models.MaxNavItems, len(h.NavItems))
	}
	return s.replace(ctx, models.GlobalHeader, h)
}

// SaveFooter replaces the footer. Every link group needs at least one link,
// and social links need both a label and a URL.
func (s *Store) SaveFooter(ctx context.Context, f models.Footer) error {
	for i, g := range f.LinkGroups {
		if len(g.Links) == 0 {
			return fmt.Errorf("%w: footer link group %d has no links", ErrInvalidGlobal, i)
		}
	}
	for i, l := range f.SocialLinks {
		if l.Label == "" || l.URL == "" {
			return fmt.Errorf("%w: footer social link %d needs a label and url", ErrInvalidGlobal, i)
		}
	}
	return s.replace(ctx, models.GlobalFooter, f)
}

func (s *Store) replace(ctx context.Context, key string, doc any) error {
	_, err := s.c.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}
