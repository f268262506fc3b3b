// internal/app/features/articles/projects.go
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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ServeProjectList handles GET /api/projects?page=N&category=C: published
// projects, newest first.
func (h *Handler) ServeProjectList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)
	category := strings.TrimSpace(r.URL.Query().Get("category"))

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list projects")
	defer cancel()

	projects, err := h.Projects.ListPublished(ctx, category, paging.Skip(page), paging.LimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list projects failed", err, "Could not load projects.")
		return
	}
	pg := paging.TrimPage(&projects, page)

	res := h.resolverFor(r)
	out := listResponse{Docs: h.projectCards(ctx, r, res, projects), Paging: pg}
	uierrors.WriteJSON(w, http.StatusOK, out)
}

// ServeProject handles GET /api/projects/{slug}. Drafts are not found.
// A video asset is only attached when the referenced media is a video;
// related projects that are missing or unpublished are left out.
func (h *Handler) ServeProject(w http.ResponseWriter, r *http.Request) {
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		uierrors.RenderNotFound(w, r, "Project not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Upstream(), h.Log, "project by slug")
	defer cancel()

	project, err := h.Projects.GetBySlug(ctx, slug)
	if err != nil || project.Status != models.StatusPublished {
		if err != nil {
			h.ErrLog.Degraded(r, "project lookup failed", err)
		}
		uierrors.RenderNotFound(w, r, "Project not found.")
		return
	}

	hero := h.loadMedia(ctx, r, project.HeroImageID)
	ogImage := h.seoImage(ctx, r, project.Meta, hero)
	res := h.resolverFor(r)

	out := projectResponse{
		articleResponse: h.article(res, seo.KindProject, project.Slug, project.Title,
			project.Content, project.Categories, project.PublishedAt, project.Meta, hero, ogImage),
		Video:   videoOf(res, h.loadMedia(ctx, r, project.VideoAssetID)),
		Related: []card{},
	}

	related := make([]primitive.ObjectID, 0, len(project.RelatedIDs))
	for _, id := range project.RelatedIDs {
		if id != project.ID {
			related = append(related, id)
		}
	}
	if len(related) > 0 {
		docs, err := h.Projects.PublishedByIDs(ctx, related)
		if err != nil {
			h.ErrLog.Degraded(r, "related projects lookup failed", err)
		} else {
			out.Related = h.projectCards(ctx, r, res, docs)
		}
	}
	uierrors.WriteJSON(w, http.StatusOK, out)
}
