package watch

import (
	"testing"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func testHandler() (*Handler, *mediaurl.Resolver) {
	h := &Handler{SiteURL: "https://site.test", SiteName: "Folio"}
	return h, mediaurl.NewResolver(mediaurl.Mode{}, mediaurl.StaticLocation("https://site.test"))
}

func TestBuildResponse_YouTube(t *testing.T) {
	h, res := testHandler()
	entry := models.Watch{
		Title:    "Keynote",
		Slug:     "keynote",
		Status:   models.StatusPublished,
		VideoURL: "https://www.youtube.com/watch?v=abc123",
		Description: models.RichText{Root: &models.RichTextNode{
			Type:     "root",
			Children: []models.RichTextNode{{Type: "paragraph", Children: []models.RichTextNode{{Type: "text", Text: "one two three"}}}},
		}},
	}

	got := h.buildResponse(res, entry, nil, nil)

	assert.Equal(t, "https://www.youtube.com/embed/abc123", got.EmbedURL)
	assert.False(t, got.DirectVideo)
	assert.Equal(t, entry.VideoURL, got.VideoURL)
	assert.Equal(t, 1, got.ReadingTime.Minutes)
	assert.Equal(t, 3, got.ReadingTime.Words)
	require.NotNil(t, got.Description)
	assert.Nil(t, got.Thumbnail)
	assert.Equal(t, "Keynote | Folio", got.Meta.Title)
	assert.Equal(t, "https://site.test/watch/keynote", got.Meta.URL)
	assert.Equal(t, "https://site.test/website-template-OG.webp", got.Meta.OGImage)
}

func TestBuildResponse_DirectVideoOnBrokenHost(t *testing.T) {
	h, res := testHandler()
	entry := models.Watch{
		Title:    "Clip",
		Slug:     "clip",
		VideoURL: "https://acct.r2.cloudflarestorage.com/site/clip.mp4",
	}

	got := h.buildResponse(res, entry, nil, nil)

	assert.True(t, got.DirectVideo)
	assert.Empty(t, got.EmbedURL)
	assert.Equal(t, "/media/clip.mp4", got.VideoURL)
	assert.Nil(t, got.Description)
	assert.Equal(t, 0, got.ReadingTime.Minutes)
}

func TestBuildResponse_LinkCard(t *testing.T) {
	h, res := testHandler()
	got := h.buildResponse(res, models.Watch{Slug: "talk", VideoURL: "https://example.org/talks/42"}, nil, nil)

	assert.False(t, got.DirectVideo)
	assert.Empty(t, got.EmbedURL)
	assert.Equal(t, "https://example.org/talks/42", got.VideoURL)
}

func TestBuildResponse_Thumbnail(t *testing.T) {
	h, res := testHandler()
	thumb := &models.Media{
		ID:       primitive.NewObjectID(),
		Alt:      "Stage",
		Filename: "thumb.jpg",
		URL:      "/media/thumb.jpg",
		Width:    1200,
		Height:   800,
		Sizes: map[string]models.MediaSize{
			models.SizeMedium: {URL: "/media/thumb-900.jpg", Filename: "thumb-900.jpg", Width: 900, Height: 600},
		},
	}

	got := h.buildResponse(res, models.Watch{Slug: "stage", VideoURL: "https://vimeo.com/123"}, thumb, thumb)

	require.NotNil(t, got.Thumbnail)
	assert.Equal(t, "/media/thumb-900.jpg", got.Thumbnail.URL)
	assert.Equal(t, "Stage", got.Thumbnail.Alt)
	assert.Equal(t, 900, got.Thumbnail.Width)
	assert.Equal(t, "https://player.vimeo.com/video/123", got.EmbedURL)
	assert.Equal(t, "https://site.test/media/thumb.jpg", got.Meta.OGImage)
}
