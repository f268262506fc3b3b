package watchstore_test

import (
	"testing"
	"time"

	watchstore "github.com/dalemusser/folio/internal/app/store/watch"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/dalemusser/folio/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Upsert_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := watchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.Upsert(ctx, models.Watch{
		Slug:     "keynote",
		Title:    "Keynote",
		VideoURL: "https://youtu.be/abc123",
	})
	if err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}

	saved, err := store.GetBySlug(ctx, "keynote")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if saved.Status != models.StatusDraft {
		t.Errorf("expected draft status, got %q", saved.Status)
	}
	if saved.PublishedAt != nil {
		t.Error("expected draft to have no PublishedAt")
	}
	if saved.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_Upsert_PublishStampsOnce(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := watchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	w := models.Watch{Slug: "panel", Title: "Panel", Status: models.StatusPublished}
	if err := store.Upsert(ctx, w); err != nil {
		t.Fatalf("Upsert failed: %v", err)
	}
	first, err := store.GetBySlug(ctx, "panel")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if first.PublishedAt == nil {
		t.Fatal("expected PublishedAt to be stamped on publish")
	}

	w.Title = "Panel (edited)"
	if err := store.Upsert(ctx, w); err != nil {
		t.Fatalf("second Upsert failed: %v", err)
	}
	second, err := store.GetBySlug(ctx, "panel")
	if err != nil {
		t.Fatalf("GetBySlug failed: %v", err)
	}
	if !second.PublishedAt.Equal(*first.PublishedAt) {
		t.Errorf("expected PublishedAt to be kept, got %v then %v", first.PublishedAt, second.PublishedAt)
	}
	if second.ID != first.ID {
		t.Error("expected ID to be preserved")
	}
}

func TestStore_ListPublished(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := watchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	older := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	entries := []models.Watch{
		{Slug: "old", Title: "Old", Status: models.StatusPublished, PublishedAt: &older},
		{Slug: "new", Title: "New", Status: models.StatusPublished, PublishedAt: &newer},
		{Slug: "draft", Title: "Draft", Status: models.StatusDraft},
	}
	for _, w := range entries {
		if err := store.Upsert(ctx, w); err != nil {
			t.Fatalf("Upsert %s failed: %v", w.Slug, err)
		}
	}

	list, err := store.ListPublished(ctx, 0, 0)
	if err != nil {
		t.Fatalf("ListPublished failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 published entries, got %d", len(list))
	}
	if list[0].Slug != "new" || list[1].Slug != "old" {
		t.Errorf("expected newest first, got %q, %q", list[0].Slug, list[1].Slug)
	}

	limited, err := store.ListPublished(ctx, 0, 1)
	if err != nil {
		t.Fatalf("ListPublished limit failed: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 entry with limit, got %d", len(limited))
	}

	skipped, err := store.ListPublished(ctx, 1, 0)
	if err != nil {
		t.Fatalf("ListPublished skip failed: %v", err)
	}
	if len(skipped) != 1 || skipped[0].Slug != "old" {
		t.Errorf("expected only the older entry after skip, got %+v", skipped)
	}
}

func TestStore_GetBySlug_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := watchstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.GetBySlug(ctx, "missing")
	if err != mongo.ErrNoDocuments {
		t.Errorf("expected mongo.ErrNoDocuments, got %v", err)
	}
}
