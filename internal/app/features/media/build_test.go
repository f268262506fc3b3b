package media

import (
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

var site = mediaurl.StaticLocation("https://site.test")

func TestBuildMediaResponse_RewritesBrokenURLs(t *testing.T) {
	updated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	doc := models.Media{
		Filename: "hero.jpg",
		URL:      "https://acct.r2.cloudflarestorage.com/site/hero.jpg",
		Sizes: map[string]models.MediaSize{
			models.SizeThumbnail: {
				URL:      "https://acct.r2.cloudflarestorage.com/site/hero-300.jpg",
				Filename: "hero-300.jpg",
			},
		},
		UpdatedAt: &updated,
	}

	off := buildMediaResponse(mediaurl.NewResolver(mediaurl.Mode{}, site), doc)
	assert.Equal(t, "/api/media/file/hero.jpg", off.URL)
	assert.Equal(t, "/media/hero.jpg?2024-01-01T00%3A00%3A00Z", off.ResolvedURL)
	assert.Equal(t, "/media/hero-300.jpg?2024-01-01T00%3A00%3A00Z", off.ResolvedSizes[models.SizeThumbnail])
	assert.Empty(t, off.Warnings)

	on := buildMediaResponse(mediaurl.NewResolver(mediaurl.Mode{ForceProxyReads: true}, site), doc)
	assert.Equal(t, "/api/media/file/hero.jpg?2024-01-01T00%3A00%3A00Z", on.ResolvedURL)

	// The stored document is untouched.
	assert.Equal(t, "https://acct.r2.cloudflarestorage.com/site/hero.jpg", doc.URL)
}

func TestBuildMediaResponse_PublicHostKeepsURL(t *testing.T) {
	doc := models.Media{Filename: "a.jpg", URL: "https://pub-1.r2.dev/a.jpg"}
	got := buildMediaResponse(mediaurl.NewResolver(mediaurl.Mode{DirectReads: true}, site), doc)
	assert.Equal(t, "https://pub-1.r2.dev/a.jpg", got.ResolvedURL)
	assert.Nil(t, got.ResolvedSizes)
}

func TestBuildDocumentResponse(t *testing.T) {
	res := mediaurl.NewResolver(mediaurl.Mode{}, site)

	doc := models.Document{
		Title:       "CV",
		Filename:    "cv.pdf",
		URL:         "/api/documents/file/cv.pdf",
		Description: "Line 1\nLine 2",
	}
	got := buildDocumentResponse(res, doc)
	assert.Equal(t, "/api/documents/file/cv.pdf", got.ResolvedURL)
	assert.Equal(t, got.ResolvedURL, got.ViewerURL)
	assert.Equal(t, "<p>Line 1<br>Line 2</p>", string(got.DescriptionHTML))

	doc.ExternalEmbedURL = "https://docs.example.com/embed/cv"
	doc.URL = ""
	got = buildDocumentResponse(res, doc)
	assert.Equal(t, "https://site.test/api/documents/file/cv.pdf", got.ResolvedURL)
	assert.Equal(t, "https://docs.example.com/embed/cv", got.ViewerURL)
}
