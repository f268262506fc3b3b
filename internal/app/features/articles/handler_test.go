package articles_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/features/articles"
	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func newRouter(t *testing.T, mode mediaurl.Mode) (http.Handler, *mongo.Database, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := articles.NewHandler(db, mediaurl.NewResolver(mode, nil), mediaurl.Env{},
		"https://site.test", "Folio", uierrors.NewErrorLogger(logger), logger)
	r := chi.NewRouter()
	r.Mount("/api/posts", articles.PostRoutes(h))
	r.Mount("/api/projects", articles.ProjectRoutes(h))
	return r, db, testutil.NewFixtures(t, db)
}

func get(t *testing.T, router http.Handler, target string, out any) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	if out != nil && rec.Code == http.StatusOK {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("bad JSON from %s: %v", target, err)
		}
	}
	return rec
}

type listBody struct {
	Docs []struct {
		Title string `json:"title"`
		Slug  string `json:"slug"`
		URL   string `json:"url"`
	} `json:"docs"`
	Paging paging.Result `json:"paging"`
}

func TestServePost_Published(t *testing.T) {
	router, _, fixtures := newRouter(t, mediaurl.Mode{ForceProxyReads: true})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	hero := fixtures.CreateMedia(ctx, "hero.jpg", "https://acct.r2.cloudflarestorage.com/site/hero.jpg")
	fixtures.CreatePost(ctx, "hello", models.StatusPublished, &hero.ID)

	var body struct {
		Title string `json:"title"`
		Hero  *struct {
			URL string `json:"url"`
		} `json:"hero"`
		Categories []string `json:"categories"`
		Meta       struct {
			Title   string `json:"title"`
			URL     string `json:"url"`
			OGImage string `json:"og_image"`
		} `json:"meta"`
	}
	rec := get(t, router, "/api/posts/hello", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200; body=%s", rec.Code, rec.Body.String())
	}
	if body.Hero == nil || !strings.HasPrefix(body.Hero.URL, "/api/media/file/hero.jpg") {
		t.Errorf("hero should be rewritten onto the proxy, got %+v", body.Hero)
	}
	if body.Meta.URL != "https://site.test/posts/hello" {
		t.Errorf("meta.url: got %q", body.Meta.URL)
	}
	if body.Meta.Title != "Post hello | Folio" {
		t.Errorf("meta.title: got %q", body.Meta.Title)
	}
	if strings.Contains(body.Meta.OGImage, "r2.cloudflarestorage.com") {
		t.Errorf("og image leaks the storage endpoint: %q", body.Meta.OGImage)
	}
	if body.Categories == nil {
		t.Error("categories should be an empty list, not null")
	}
}

func TestServePost_DraftAndMissing(t *testing.T) {
	router, _, fixtures := newRouter(t, mediaurl.Mode{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreatePost(ctx, "wip", models.StatusDraft, nil)

	for _, slug := range []string{"wip", "missing"} {
		if rec := get(t, router, "/api/posts/"+slug, nil); rec.Code != http.StatusNotFound {
			t.Errorf("%s: status got %d, want 404", slug, rec.Code)
		}
	}
}

func TestServePostList_PagedNewestFirst(t *testing.T) {
	router, db, _ := newRouter(t, mediaurl.Mode{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 1; i <= paging.PageSize+1; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		insertPost(t, ctx, db, fmt.Sprintf("post-%02d", i), &at)
	}
	insertPost(t, ctx, db, "draft", nil)

	var first listBody
	get(t, router, "/api/posts", &first)
	if len(first.Docs) != paging.PageSize || !first.Paging.HasNext {
		t.Fatalf("page 1: %d docs, paging %+v", len(first.Docs), first.Paging)
	}
	if first.Docs[0].Slug != fmt.Sprintf("post-%02d", paging.PageSize+1) {
		t.Errorf("expected newest first, got %q", first.Docs[0].Slug)
	}
	if first.Docs[0].URL != "https://site.test/posts/"+first.Docs[0].Slug {
		t.Errorf("card url: got %q", first.Docs[0].URL)
	}

	var second listBody
	get(t, router, "/api/posts?page=2", &second)
	if len(second.Docs) != 1 || second.Docs[0].Slug != "post-01" || !second.Paging.HasPrev {
		t.Errorf("page 2: %+v", second)
	}
}

func insertPost(t *testing.T, ctx context.Context, db *mongo.Database, slug string, at *time.Time) {
	t.Helper()
	status := models.StatusPublished
	if at == nil {
		status = models.StatusDraft
	}
	p := models.Post{ID: primitive.NewObjectID(), Title: slug, Slug: slug, Status: status, PublishedAt: at, CreatedAt: time.Now().UTC()}
	if _, err := db.Collection("posts").InsertOne(ctx, p); err != nil {
		t.Fatalf("insert %s: %v", slug, err)
	}
}

func TestServeProject_RelatedSkipsDrafts(t *testing.T) {
	router, _, fixtures := newRouter(t, mediaurl.Mode{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// Fixture media is image/jpeg, so it must not surface as a video.
	still := fixtures.CreateMedia(ctx, "still.jpg", "/media/still.jpg")
	sibling := fixtures.CreateProject(ctx, "sibling", models.StatusPublished, nil)
	hidden := fixtures.CreateProject(ctx, "hidden", models.StatusDraft, nil)
	fixtures.CreateProject(ctx, "rebrand", models.StatusPublished, &still.ID, hidden.ID, primitive.NewObjectID(), sibling.ID)

	var body struct {
		Video   *struct{} `json:"video"`
		Related []struct {
			Slug string `json:"slug"`
			URL  string `json:"url"`
		} `json:"related"`
		Meta struct {
			URL string `json:"url"`
		} `json:"meta"`
	}
	rec := get(t, router, "/api/projects/rebrand", &body)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d; body=%s", rec.Code, rec.Body.String())
	}
	if body.Meta.URL != "https://site.test/projects/rebrand" {
		t.Errorf("meta.url: got %q", body.Meta.URL)
	}
	if len(body.Related) != 1 || body.Related[0].Slug != "sibling" {
		t.Fatalf("related: got %+v", body.Related)
	}
	if body.Related[0].URL != "https://site.test/projects/sibling" {
		t.Errorf("related url: got %q", body.Related[0].URL)
	}
	if body.Video != nil {
		t.Error("image asset should not be returned as a video")
	}
}

func TestServeProject_VideoAsset(t *testing.T) {
	router, db, fixtures := newRouter(t, mediaurl.Mode{ForceProxyReads: true})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	clip := models.Media{
		ID:        primitive.NewObjectID(),
		MediaType: models.MediaTypeVideo,
		Filename:  "reel.mp4",
		MimeType:  "video/mp4",
		Filesize:  4096,
		URL:       "https://acct.r2.cloudflarestorage.com/site/reel.mp4",
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.Collection("media").InsertOne(ctx, clip); err != nil {
		t.Fatalf("insert video: %v", err)
	}
	fixtures.CreateProject(ctx, "reel", models.StatusPublished, &clip.ID)

	var body struct {
		Video *struct {
			URL      string `json:"url"`
			MimeType string `json:"mime_type"`
		} `json:"video"`
		Related []any `json:"related"`
	}
	get(t, router, "/api/projects/reel", &body)
	if body.Video == nil {
		t.Fatal("expected a video")
	}
	if body.Video.URL != "/api/media/file/reel.mp4" || body.Video.MimeType != "video/mp4" {
		t.Errorf("video: got %+v", body.Video)
	}
	if body.Related == nil {
		t.Error("related should be an empty list, not null")
	}
}

func TestServeProjectList_Category(t *testing.T) {
	router, db, _ := newRouter(t, mediaurl.Mode{})
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	for slug, cats := range map[string][]string{"site": {"web"}, "film": {"motion"}} {
		p := models.Project{ID: primitive.NewObjectID(), Title: slug, Slug: slug, Status: models.StatusPublished, Categories: cats, PublishedAt: &now, CreatedAt: now}
		if _, err := db.Collection("projects").InsertOne(ctx, p); err != nil {
			t.Fatalf("insert %s: %v", slug, err)
		}
	}

	var body listBody
	get(t, router, "/api/projects?category=web", &body)
	if len(body.Docs) != 1 || body.Docs[0].Slug != "site" {
		t.Errorf("category filter: %+v", body.Docs)
	}
}
