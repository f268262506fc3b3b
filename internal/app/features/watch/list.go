// internal/app/features/watch/list.go
package watch

import (
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	"github.com/dalemusser/folio/internal/app/system/paging"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
)

// ServeList handles GET /api/watch?page=N: published entries, newest first.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	page := paging.ParsePage(r)

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list watch")
	defer cancel()

	entries, err := h.Watch.ListPublished(ctx, paging.Skip(page), paging.LimitPlusOne())
	if err != nil {
		h.ErrLog.LogServerError(w, r, "list watch failed", err, "Could not load videos.")
		return
	}
	pg := paging.TrimPage(&entries, page)

	res := h.resolverFor(r)
	out := listResponse{Entries: make([]watchCard, 0, len(entries)), Paging: pg}
	for _, e := range entries {
		out.Entries = append(out.Entries, watchCard{
			Title:       e.Title,
			Slug:        e.Slug,
			URL:         seo.CanonicalURL(h.SiteURL, seo.KindWatch, e.Slug),
			Thumbnail:   thumbnailOf(res, h.loadMedia(ctx, r, e.ThumbnailID)),
			PublishedAt: e.PublishedAt,
		})
	}
	uierrors.WriteJSON(w, http.StatusOK, out)
}
