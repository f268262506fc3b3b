package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		rctx = chi.NewRouteContext()
	}
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// CreateMedia inserts an image stored in the bucket under filename. url is
// stored as-is so tests can seed broken direct-bucket links.
func (f *Fixtures) CreateMedia(ctx context.Context, filename, url string) models.Media {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Media{
		ID:        primitive.NewObjectID(),
		Alt:       "Test image",
		MediaType: models.MediaTypeImage,
		Filename:  filename,
		MimeType:  "image/jpeg",
		Filesize:  1024,
		URL:       url,
		Width:     1200,
		Height:    800,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if _, err := f.db.Collection("media").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("failed to create test media: %v", err)
	}
	return m
}

// CreateDocument inserts a PDF document.
func (f *Fixtures) CreateDocument(ctx context.Context, title, filename, category string) models.Document {
	f.t.Helper()

	now := time.Now().UTC()
	d := models.Document{
		ID:            primitive.NewObjectID(),
		Title:         title,
		Category:      category,
		AllowDownload: true,
		Filename:      filename,
		MimeType:      "application/pdf",
		Filesize:      2048,
		URL:           "/api/documents/file/" + filename,
		CreatedAt:     now,
		UpdatedAt:     &now,
	}
	if _, err := f.db.Collection("documents").InsertOne(ctx, d); err != nil {
		f.t.Fatalf("failed to create test document: %v", err)
	}
	return d
}

// CreateWatch inserts a watch entry. Published entries get PublishedAt set.
func (f *Fixtures) CreateWatch(ctx context.Context, slug, status, videoURL string, thumbnail *primitive.ObjectID) models.Watch {
	f.t.Helper()

	now := time.Now().UTC()
	w := models.Watch{
		ID:          primitive.NewObjectID(),
		Title:       "Watch " + slug,
		Slug:        slug,
		Status:      status,
		VideoURL:    videoURL,
		ThumbnailID: thumbnail,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if status == models.StatusPublished {
		w.PublishedAt = &now
	}
	if _, err := f.db.Collection("watch").InsertOne(ctx, w); err != nil {
		f.t.Fatalf("failed to create test watch entry: %v", err)
	}
	return w
}

// CreatePage inserts a page with the given slug and HTML content.
func (f *Fixtures) CreatePage(ctx context.Context, slug, title, content string) models.Page {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Page{
		ID:        primitive.NewObjectID(),
		Slug:      slug,
		Title:     title,
		Content:   content,
		UpdatedAt: &now,
	}
	if _, err := f.db.Collection("pages").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test page: %v", err)
	}
	return p
}

// CreatePost inserts a post. Published posts get PublishedAt set.
func (f *Fixtures) CreatePost(ctx context.Context, slug, status string, hero *primitive.ObjectID) models.Post {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Post{
		ID:          primitive.NewObjectID(),
		Title:       "Post " + slug,
		Slug:        slug,
		Status:      status,
		HeroImageID: hero,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if status == models.StatusPublished {
		p.PublishedAt = &now
	}
	if _, err := f.db.Collection("posts").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test post: %v", err)
	}
	return p
}

// CreateProject inserts a project linked to the given related projects.
func (f *Fixtures) CreateProject(ctx context.Context, slug, status string, video *primitive.ObjectID, related ...primitive.ObjectID) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:           primitive.NewObjectID(),
		Title:        "Project " + slug,
		Slug:         slug,
		Status:       status,
		VideoAssetID: video,
		RelatedIDs:   related,
		CreatedAt:    now,
		UpdatedAt:    &now,
	}
	if status == models.StatusPublished {
		p.PublishedAt = &now
	}
	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("failed to create test project: %v", err)
	}
	return p
}
