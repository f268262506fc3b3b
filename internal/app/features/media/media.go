// internal/app/features/media/media.go
package media

import (
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ServeMedia handles GET /api/media/{id}.
func (h *Handler) ServeMedia(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		uierrors.RenderNotFound(w, r, "Media not found.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "media by id")
	defer cancel()

	doc, err := h.Media.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		uierrors.RenderNotFound(w, r, "Media not found.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "load media failed", err, "Could not load media.")
		return
	}

	uierrors.WriteJSON(w, http.StatusOK, buildMediaResponse(h.resolverFor(r), doc))
}

func buildMediaResponse(res *mediaurl.Resolver, doc models.Media) mediaResponse {
	doc = res.RewriteBroken(doc)

	main := res.Resolve(mediaurl.MediaReference(doc, ""), mediaurl.Media)
	out := mediaResponse{Media: doc, ResolvedURL: main.URL, Warnings: main.Warnings}

	if len(doc.Sizes) > 0 {
		out.ResolvedSizes = make(map[string]string, len(doc.Sizes))
		for name := range doc.Sizes {
			sz := res.Resolve(mediaurl.MediaReference(doc, name), mediaurl.Media)
			if sz.URL != "" {
				out.ResolvedSizes[name] = sz.URL
			}
		}
	}
	return out
}
