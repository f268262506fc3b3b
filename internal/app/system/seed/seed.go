// Package seed loads a small set of sample content into an empty site so a
// fresh deployment has something to render.
package seed

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"strings"
	"time"

	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	pagestore "github.com/dalemusser/folio/internal/app/store/pages"
	watchstore "github.com/dalemusser/folio/internal/app/store/watch"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

//go:embed assets/hero.svg
var assets embed.FS

const (
	heroAsset  = "assets/hero.svg"
	heroName   = "hero.svg"
	heroAlt    = "Straight metallic shapes with a blue gradient"
	heroWidth  = 1200
	heroHeight = 630

	// AboutSlug marks a seeded site; Run does nothing when it exists.
	AboutSlug = "about"
	WatchSlug = "welcome"
)

// ErrRefusedInProd is returned when seeding a production environment without
// the explicit override.
var ErrRefusedInProd = errors.New("seed: refusing to seed a production environment")

// Options controls a seed run.
type Options struct {
	Env         string
	AllowInProd bool
}

// Result reports what a run created.
type Result struct {
	Skipped  bool
	MediaID  string
	MediaKey string
}

// Run uploads the hero image and creates the about page and one published
// watch entry.
func Run(ctx context.Context, db *mongo.Database, blobs storage.Store, opts Options, logger *zap.Logger) (Result, error) {
	if isProd(opts.Env) && !opts.AllowInProd {
		return Result{}, ErrRefusedInProd
	}

	pages := pagestore.New(db)
	exists, err := pages.Exists(ctx, AboutSlug)
	if err != nil {
		return Result{}, fmt.Errorf("check seeded: %w", err)
	}
	if exists {
		logger.Info("seed: content already present, skipping")
		return Result{Skipped: true}, nil
	}

	logger.Info("seed: uploading media")
	body, err := assets.ReadFile(heroAsset)
	if err != nil {
		return Result{}, fmt.Errorf("read embedded asset: %w", err)
	}
	key := uploadKey(heroName)
	if err := blobs.Put(ctx, key, bytes.NewReader(body), &storage.PutOptions{ContentType: "image/svg+xml"}); err != nil {
		return Result{}, fmt.Errorf("upload %s: %w", key, err)
	}

	media, err := mediastore.New(db).Create(ctx, models.Media{
		Alt:      heroAlt,
		Filename: key,
		MimeType: "image/svg+xml",
		Filesize: int64(len(body)),
		URL:      storedURL(blobs, key),
		Width:    heroWidth,
		Height:   heroHeight,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create media: %w", err)
	}

	logger.Info("seed: creating watch entry")
	now := time.Now().UTC()
	if err := watchstore.New(db).Upsert(ctx, models.Watch{
		Title:       "Welcome",
		Slug:        WatchSlug,
		Status:      models.StatusPublished,
		VideoURL:    "https://www.youtube.com/watch?v=aqz-KE-bpKQ",
		ThumbnailID: &media.ID,
		PublishedAt: &now,
		Description: models.RichText{Root: &models.RichTextNode{
			Type: "root",
			Children: []models.RichTextNode{{
				Type:     "paragraph",
				Children: []models.RichTextNode{{Type: "text", Text: "A short introduction to the site."}},
			}},
		}},
	}); err != nil {
		return Result{}, fmt.Errorf("create watch entry: %w", err)
	}

	logger.Info("seed: creating pages")
	if err := pages.Upsert(ctx, models.Page{
		Slug:    AboutSlug,
		Title:   "About",
		Content: "<h2>About</h2><p>This site was seeded with sample content. Edit this page in the CMS.</p>",
		Meta:    models.SEOMeta{ImageID: &media.ID},
	}); err != nil {
		return Result{}, fmt.Errorf("create about page: %w", err)
	}

	logger.Info("seed: done", zap.String("media_key", key))
	return Result{MediaID: media.ID.Hex(), MediaKey: key}, nil
}

// uploadKey prefixes name with a short random id so repeated uploads never
// collide.
func uploadKey(name string) string {
	return uuid.NewString()[:8] + "-" + name
}

// storedURL is the URL recorded on the media document: the public storage
// URL when the backend has one, else the proxied file path.
func storedURL(blobs storage.Store, key string) string {
	if u := blobs.URL(key); u != "" {
		return u
	}
	return mediaurl.Media.ProxyPath(key)
}

func isProd(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return true
	}
	return false
}
