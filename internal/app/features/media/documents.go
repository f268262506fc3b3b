// internal/app/features/media/documents.go
package media

import (
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/htmlsanitize"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/normalize"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeDocument handles GET /api/documents/{id}.
func (h *Handler) ServeDocument(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "Document not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "document by id")
	defer cancel()

	doc, err := h.Documents.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "Document not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load document failed", err, "Could not load document.")
		return
	}

	uierrors.WriteJSON(w, http.StatusOK, buildDocumentResponse(h.resolverFor(r), doc))
}

// ListDocuments handles GET /api/documents?category=...&page=N.
func (h *Handler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	category := normalize.Category(r.URL.Query().Get("category"))
	if category != "" && !models.IsValidDocumentCategory(category) {
		uierrors.RenderBadRequest(w, r, "Unknown category.")
		return
	}

	page := paging.ParsePage(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list documents")
	defer cancel()

	docs, err := h.Documents.List(ctx, category, paging.Skip(page), paging.LimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list documents failed", err, "Could not load documents.")
		return
	}
	pg := paging.TrimPage(&docs, page)

	res := h.resolverFor(r)
	out := documentListResponse{Category: category, Documents: make([]documentResponse, 0, len(docs)), Paging: pg}
	for _, d := range docs {
		out.Documents = append(out.Documents, buildDocumentResponse(res, d))
	}
	uierrors.WriteJSON(w, http.StatusOK, out)
}

func buildDocumentResponse(res *mediaurl.Resolver, doc models.Document) documentResponse {
	resolved := res.Resolve(mediaurl.DocumentReference(doc), mediaurl.Documents)
	out := documentResponse{
		Document:        doc,
		ResolvedURL:     resolved.URL,
		ViewerURL:       resolved.URL,
		DescriptionHTML: htmlsanitize.PrepareForDisplay(doc.Description),
		Warnings:        resolved.Warnings,
	}
	if embed := strings.TrimSpace(doc.ExternalEmbedURL); embed != "" {
		out.ViewerURL = embed
	}
	return out
}
