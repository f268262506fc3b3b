// internal/app/features/watch/view.go
package watch

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/readingtime"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/app/system/videoembed"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServeWatch handles GET /api/watch/{slug}. Drafts are not found. Load
// failures are reported as not found too; the cause is only logged in dev.
func (h *Handler) ServeWatch(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		uierrors.RenderNotFound(w, r, "Video not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "watch by slug")
	defer cancel()

	entry, err := h.Watch.GetBySlug(ctx, slug)
	if err != nil || entry.Status != models.StatusPublished {
		if err != nil {
			h.ErrLog.Degraded(r, "watch lookup failed", err)
		}
		uierrors.RenderNotFound(w, r, "Video not found.")
		return
	}

	thumb := h.loadMedia(ctx, r, entry.ThumbnailID)
	image := thumb
	if entry.Meta.ImageID != nil && (thumb == nil || *entry.Meta.ImageID != thumb.ID) {
		image = h.loadMedia(ctx, r, entry.Meta.ImageID)
		if image == nil {
			image = thumb
		}
	}

	res := h.resolverFor(r)
	uierrors.WriteJSON(w, http.StatusOK, h.buildResponse(res, entry, thumb, image))
}

func (h *Handler) buildResponse(res *mediaurl.Resolver, entry models.Watch, thumb, image *models.Media) watchResponse {
	out := watchResponse{
		Title:       entry.Title,
		Slug:        entry.Slug,
		VideoURL:    entry.VideoURL,
		ReadingTime: readingtime.Of(entry.Description),
		PublishedAt: entry.PublishedAt,
		Thumbnail:   thumbnailOf(res, thumb),
	}
	if !entry.Description.IsEmpty() {
		desc := entry.Description
		out.Description = &desc
	}

	if embed, ok := videoembed.EmbedURL(entry.VideoURL); ok {
		out.EmbedURL = embed
	} else if videoembed.IsDirectVideo(entry.VideoURL) {
		out.DirectVideo = true
		out.VideoURL = res.MediaURL(mediaurl.Reference{URL: entry.VideoURL})
	}

	if image != nil {
		rewritten := res.RewriteBroken(*image)
		image = &rewritten
	}
	out.Meta = seo.Build(h.SiteName, h.SiteURL, seo.KindWatch, entry.Slug, entry.Title, entry.Meta, image)
	return out
}

func thumbnailOf(res *mediaurl.Resolver, m *models.Media) *thumbnail {
	if m == nil {
		return nil
	}
	doc := res.RewriteBroken(*m)
	size := ""
	if _, ok := doc.Sizes[models.SizeMedium]; ok {
		size = models.SizeMedium
	}
	resolved := res.Resolve(mediaurl.MediaReference(doc, size), mediaurl.Media)
	if resolved.URL == "" {
		return nil
	}
	t := &thumbnail{URL: resolved.URL, Alt: doc.Alt, Width: doc.Width, Height: doc.Height}
	if size != "" {
		t.Width, t.Height = doc.Sizes[size].Width, doc.Sizes[size].Height
	}
	return t
}
