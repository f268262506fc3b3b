// internal/app/features/articles/posts.go
package articles

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

// ServePostList handles GET /api/posts?page=N&category=C: published posts,
// newest first.
func (h *Handler) ServePostList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list posts")
	defer cancel()

	posts, err := h.Posts.ListPublished(ctx, category, paging.Skip(page), paging.LimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list posts failed", err, "Could not load posts.")
		return
	}
	pg := paging.TrimPage(&posts, page)

	res := h.resolverFor(r)
	out := listResponse{Docs: make([]card, 0, len(posts)), Paging: pg}
	for _, p := range posts {
		out.Docs = append(out.Docs, card{
			Title:       p.Title,
			Slug:        p.Slug,
			URL:         seo.CanonicalURL(h.SiteURL, seo.KindPost, p.Slug),
			Description: p.Meta.Description,
			Image:       imageOf(res, h.loadMedia(ctx, r, p.Meta.ImageID), models.SizeMedium),
			Categories:  nonNil(p.Categories),
			PublishedAt: p.PublishedAt,
		})
	}
	uierrors.WriteJSON(w, http.StatusOK, out)
}

// ServePost handles GET /api/posts/{slug}. Drafts are not found.
func (h *Handler) ServePost(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		uierrors.RenderNotFound(w, r, "Post not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "post by slug")
	defer cancel()

	post, err := h.Posts.GetBySlug(ctx, slug)
	if err != nil || post.Status != models.StatusPublished {
		if err != nil {
			h.ErrLog.Degraded(r, "post lookup failed", err)
		}
		uierrors.RenderNotFound(w, r, "Post not found.")
		return
	}

	hero := h.loadMedia(ctx, r, post.HeroImageID)
	ogImage := h.seoImage(ctx, r, post.Meta, hero)

	res := h.resolverFor(r)
	uierrors.WriteJSON(w, http.StatusOK, h.article(res, seo.KindPost, post.Slug, post.Title,
		post.Content, post.Categories, post.PublishedAt, post.Meta, hero, ogImage))
}
