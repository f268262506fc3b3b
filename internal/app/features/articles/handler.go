// internal/app/features/articles/handler.go
package articles

import (
	"context"
	"errors"
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	poststore "github.com/dalemusser/folio/internal/app/store/posts"
	projectstore "github.com/dalemusser/folio/internal/app/store/projects"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves posts and projects. Both share the article layout: a hero
// image, rich text content and SEO metadata.
type Handler struct {
	Posts    *poststore.Store
	Projects *projectstore.Store
	Media    *mediastore.Store
	Resolver *mediaurl.Resolver
	Env      mediaurl.Env
	SiteURL  string
	SiteName string
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs an articles Handler. siteURL is the canonical
// origin used for SEO URLs.
func NewHandler(db *mongo.Database, resolver *mediaurl.Resolver, env mediaurl.Env, siteURL, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Posts:    poststore.New(db),
		Projects: projectstore.New(db),
		Media:    mediastore.New(db),
		Resolver: resolver,
		Env:      env,
		SiteURL:  siteURL,
		SiteName: siteName,
		ErrLog:   errLog,
		Log:      logger,
	}
}

func (h *Handler) resolverFor(r *http.Request) *mediaurl.Resolver {
	return h.Resolver.WithLocation(mediaurl.RequestLocation{Request: r, Env: h.Env})
}

// loadMedia fetches an optional related media document. Failures are
// degraded to nil.
func (h *Handler) loadMedia(ctx context.Context, r *http.Request, id *primitive.ObjectID) *models.Media {
	if id == nil || id.IsZero() {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	m, err := h.Media.GetByID(ctx, *id)
	if err != nil {
		if !errors.Is(err, mongo.ErrNoDocuments) {
			h.ErrLog.Degraded(r, "article media lookup failed", err)
		}
		return nil
	}
	return &m
}

// seoImage prefers the meta image and falls back to the hero.
func (h *Handler) seoImage(ctx context.Context, r *http.Request, meta models.SEOMeta, hero *models.Media) *models.Media {
	if meta.ImageID == nil || (hero != nil && *meta.ImageID == hero.ID) {
		return hero
	}
	if img := h.loadMedia(ctx, r, meta.ImageID); img != nil {
		return img
	}
	return hero
}
