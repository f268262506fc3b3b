// internal/app/features/articles/article.go
package articles

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/readingtime"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/domain/models"
)

// article builds the shared page body. ogImage is passed through the read
// hook before it reaches the SEO builder.
func (h *Handler) article(res *mediaurl.Resolver, kind, slug, title string, content models.RichText,
	categories []string, publishedAt *time.Time, meta models.SEOMeta, hero, ogImage *models.Media) articleResponse {
	out := articleResponse{
		Title:       title,
		Slug:        slug,
		Hero:        imageOf(res, hero, models.SizeLarge),
		Categories:  nonNil(categories),
		ReadingTime: readingtime.Of(content),
		PublishedAt: publishedAt,
	}
	if !content.IsEmpty() {
		out.Content = &content
	}
	if ogImage != nil {
		rewritten := res.RewriteBroken(*ogImage)
		ogImage = &rewritten
	}
	out.Meta = seo.Build(h.SiteName, h.SiteURL, kind, slug, title, meta, ogImage)
	return out
}

func (h *Handler) projectCards(ctx context.Context, r *http.Request, res *mediaurl.Resolver, projects []models.Project) []card {
	out := make([]card, 0, len(projects))
	for _, p := range projects {
		out = append(out, card{
			Title:       p.Title,
			Slug:        p.Slug,
			URL:         seo.CanonicalURL(h.SiteURL, seo.KindProject, p.Slug),
			Description: p.Meta.Description,
			Image:       imageOf(res, h.loadMedia(ctx, r, p.Meta.ImageID), models.SizeMedium),
			Categories:  nonNil(p.Categories),
			PublishedAt: p.PublishedAt,
		})
	}
	return out
}
