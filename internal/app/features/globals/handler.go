// internal/app/features/globals/handler.go
package globals

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	globalstore "github.com/dalemusser/folio/internal/app/store/globals"
	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves the header and footer globals. An unsaved or unreadable
// global is served with its defaults so the site chrome always renders.
type Handler struct {
	Globals  *globalstore.Store
	Media    *mediastore.Store
	Resolver *mediaurl.Resolver
	Env      mediaurl.Env
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a globals Handler.
func NewHandler(db *mongo.Database, resolver *mediaurl.Resolver, env mediaurl.Env, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Globals:  globalstore.New(db),
		Media:    mediastore.New(db),
		Resolver: resolver,
		Env:      env,
		ErrLog:   errLog,
		Log:      logger,
	}
}

type headerResponse struct {
	NavItems []models.Link `json:"nav_items"`
}

type socialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

type footerResponse struct {
	Subscribe   models.FooterSubscribe `json:"subscribe"`
	LinkGroups  []models.LinkGroup     `json:"link_groups"`
	SocialLinks []socialLink           `json:"social_links"`
	Copyright   string                 `json:"copyright,omitempty"`
}

// ServeHeader handles GET /api/globals/header.
func (h *Handler) ServeHeader(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "header global")
	defer cancel()

	header, err := h.Globals.Header(ctx)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Degraded(r, "header global lookup failed", err)
		}
		header = models.Header{}
	}
	out := headerResponse{NavItems: header.NavItems}
	if out.NavItems == nil {
		out.NavItems = []models.Link{}
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	uierrors.WriteJSON(w, http.StatusOK, out)
}

// ServeFooter handles GET /api/globals/footer. Social icons reference media
// and are resolved like any other media read; an icon that cannot be loaded
// is dropped while its link stays.
func (h *Handler) ServeFooter(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "footer global")
	defer cancel()

	footer, err := h.Globals.Footer(ctx)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Degraded(r, "footer global lookup failed", err)
		}
		footer = models.DefaultFooter()
	}

	res := h.Resolver.WithLocation(mediaurl.RequestLocation{Request: r, Env: h.Env})
	out := footerResponse{
		Subscribe:   footer.Subscribe,
		LinkGroups:  footer.LinkGroups,
		SocialLinks: make([]socialLink, 0, len(footer.SocialLinks)),
		Copyright:   footer.Copyright,
	}
	if out.LinkGroups == nil {
		out.LinkGroups = []models.LinkGroup{}
	}
	for _, l := range footer.SocialLinks {
		out.SocialLinks = append(out.SocialLinks, socialLink{
			Label: l.Label,
			URL:   l.URL,
			Icon:  h.iconURL(ctx, r, res, l.IconID),
		})
	}
	w.Header().Set("Cache-Control", "public, max-age=60")
	uierrors.WriteJSON(w, http.StatusOK, out)
}

// iconURL resolves a social icon, preferring the thumbnail variant.
func (h *Handler) iconURL(ctx context.Context, r *http.Request, res *mediaurl.Resolver, id *primitive.ObjectID) string {
	if id == nil || id.IsZero() {
		return ""
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	m, err := h.Media.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Degraded(r, "footer icon lookup failed", err)
		}
		return ""
	}
	doc := res.RewriteBroken(m)
	size := ""
	if _, ok := doc.Sizes[models.SizeThumbnail]; ok {
		size = models.SizeThumbnail
	}
	return res.MediaURL(mediaurl.MediaReference(doc, size))
}
