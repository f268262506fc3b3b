// internal/app/features/articles/types.go
package articles

import (
	"strings"
	"time"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/app/system/readingtime"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/domain/models"
)

type image struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type video struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
}

// articleResponse is the body shared by a post and a project page.
type articleResponse struct {
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	Hero        *image               `json:"hero,omitempty"`
	Content     *models.RichText     `json:"content,omitempty"`
	Categories  []string             `json:"categories"`
	ReadingTime readingtime.Estimate `json:"reading_time"`
	PublishedAt *time.Time           `json:"published_at,omitempty"`
	Meta        seo.Meta             `json:"meta"`
}

type projectResponse struct {
	articleResponse
	Video   *video `json:"video,omitempty"`
	Related []card `json:"related"`
}

// card is the list form of an article.
type card struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	URL         string     `json:"url"`
	Description string     `json:"description,omitempty"`
	Image       *image     `json:"image,omitempty"`
	Categories  []string   `json:"categories"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type listResponse struct {
	Docs   []card        `json:"docs"`
	Paging paging.Result `json:"paging"`
}

// imageOf resolves m for display, preferring the given size when the
// variant exists.
func imageOf(res *mediaurl.Resolver, m *models.Media, size string) *image {
	if m == nil {
		return nil
	}
	doc := res.RewriteBroken(*m)
	if _, ok := doc.Sizes[size]; !ok {
		size = ""
	}
	resolved := res.Resolve(mediaurl.MediaReference(doc, size), mediaurl.Media)
	if resolved.URL == "" {
		return nil
	}
	img := &image{URL: resolved.URL, Alt: doc.Alt, Width: doc.Width, Height: doc.Height}
	if size != "" {
		img.Width, img.Height = doc.Sizes[size].Width, doc.Sizes[size].Height
	}
	return img
}

// videoOf resolves a video asset. Anything that is not a video is ignored.
func videoOf(res *mediaurl.Resolver, m *models.Media) *video {
	if m == nil || !strings.Contains(m.MimeType, "video") {
		return nil
	}
	doc := res.RewriteBroken(*m)
	u := res.MediaURL(mediaurl.MediaReference(doc, ""))
	if u == "" {
		return nil
	}
	return &video{URL: u, MimeType: doc.MimeType}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
