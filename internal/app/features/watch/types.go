// internal/app/features/watch/types.go
package watch

import (
	"time"

	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/app/system/readingtime"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/domain/models"
)

type thumbnail struct {
	URL    string `json:"url"`
	Alt    string `json:"alt,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

// watchResponse is a watch entry ready for the player page. Exactly one of
// EmbedURL (iframe player) or a direct VideoURL (<video>) is meant to be
// used; when neither applies the client shows a link card.
type watchResponse struct {
	Title       string               `json:"title"`
	Slug        string               `json:"slug"`
	VideoURL    string               `json:"video_url"`
	EmbedURL    string               `json:"embed_url,omitempty"`
	DirectVideo bool                 `json:"direct_video"`
	Thumbnail   *thumbnail           `json:"thumbnail,omitempty"`
	Description *models.RichText     `json:"description,omitempty"`
	ReadingTime readingtime.Estimate `json:"reading_time"`
	PublishedAt *time.Time           `json:"published_at,omitempty"`
	Meta        seo.Meta             `json:"meta"`
}

type watchCard struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	URL         string     `json:"url"`
	Thumbnail   *thumbnail `json:"thumbnail,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

type listResponse struct {
	Entries []watchCard   `json:"entries"`
	Paging  paging.Result `json:"paging"`
}
