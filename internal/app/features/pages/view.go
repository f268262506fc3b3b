// internal/app/features/pages/view.go
package pages

import (
	"context"
	"html/template"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type pageResponse struct {
	Slug    string        `json:"slug"`
	Title   string        `json:"title"`
	Content template.HTML `json:"content"`
	Meta    seo.Meta      `json:"meta"`
}

// DisplayName returns a human-friendly title for a page slug.
func DisplayName(slug string) string {
	switch slug {
	case "terms-of-service":
		return "Terms of Service"
	case "privacy-policy":
		return "Privacy Policy"
	}
	words := strings.Fields(strings.ReplaceAll(slug, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ServePage handles GET /api/pages/{slug}.
func (h *Handler) ServePage(w http.ResponseWriter, r *http.Request) {
	slug := strings.Trim(chi.URLParam(r, "slug"), "/ ")
	if slug == "" {
		uierrors.RenderNotFound(w, r, "Page not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "page by slug")
	defer cancel()

	page, err := h.Pages.GetBySlug(ctx, slug)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.ErrLog.Degraded(r, "page lookup failed", err)
		}
		uierrors.RenderNotFound(w, r, "Page not found.")
		return
	}

	image := h.loadImage(ctx, r, page.Meta.ImageID)
	uierrors.WriteJSON(w, http.StatusOK, h.buildResponse(page, image))
}

// loadImage fetches the page's social image. Failures degrade to the
// default image.
func (h *Handler) loadImage(ctx context.Context, r *http.Request, id *primitive.ObjectID) *models.Media {
	if id == nil || id.IsZero() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	m, err := h.Media.GetByID(ctx, *id)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			h.ErrLog.Degraded(r, "page image lookup failed", err)
		}
		return nil
	}
	return &m
}

func (h *Handler) buildResponse(page models.Page, image *models.Media) pageResponse {
	title := page.Title
	if title == "" {
		title = DisplayName(page.Slug)
	}
	if image != nil {
		rewritten := h.Resolver.RewriteBroken(*image)
		image = &rewritten
	}
	return pageResponse{
		Slug:    page.Slug,
		Title:   title,
		Content: htmlsanitize.PrepareForDisplay(page.Content),
		Meta:    seo.Build(h.SiteName, h.SiteURL, seo.KindPage, page.Slug, title, page.Meta, image),
	}
}
