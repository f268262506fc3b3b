// internal/app/features/redirects/handler.go
package redirects

import (
	"errors"
	"net/http"
	"strings"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	redirectstore "github.com/dalemusser/folio/internal/app/store/redirects"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler answers redirect lookups for paths that no longer resolve. The
// frontend asks before rendering its not-found page.
type Handler struct {
	Redirects *redirectstore.Store
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs a redirects Handler.
func NewHandler(db *mongo.Database, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Redirects: redirectstore.New(db),
		ErrLog:    errLog,
		Log:       logger,
	}
}

type redirectResponse struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Status   int    `json:"status"`
	External bool   `json:"external"`
}

// ServeLookup handles GET /api/redirects?from=/old/path.
func (h *Handler) ServeLookup(w http.ResponseWriter, r *http.Request) {
	from := redirectstore.NormalizeFrom(r.URL.Query().Get("from"))
	if from == "" {
		uierrors.RenderBadRequest(w, r, "from is required.")
		return
	}

	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "redirect lookup")
	defer cancel()

	rd, err := h.Redirects.Find(ctx, from)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Degraded(r, "redirect lookup failed", err)
		}
		uierrors.RenderNotFound(w, r, "No redirect.")
		return
	}

	to := Target(rd.To)
	if to == "" || to == from {
		uierrors.RenderNotFound(w, r, "No redirect.")
		return
	}
	uierrors.WriteJSON(w, http.StatusOK, redirectResponse{
		From:     from,
		To:       to,
		Status:   http.StatusPermanentRedirect,
		External: strings.Contains(to, "://"),
	})
}

// Target turns a redirect destination into a URL or root-relative path. A
// custom URL wins; a document reference becomes that document's path.
func Target(t models.RedirectTarget) string {
	if u := strings.TrimSpace(t.URL); u != "" {
		return u
	}
	slug := strings.Trim(strings.TrimSpace(t.Slug), "/")
	if slug == "" {
		return ""
	}
	switch t.Kind {
	case seo.KindPage, seo.KindPost, seo.KindProject, seo.KindWatch:
		return seo.CanonicalURL("", t.Kind, slug)
	default:
		return ""
	}
}
