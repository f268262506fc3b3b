// internal/app/features/watch/handler.go
package watch

import (
	"context"
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	watchstore "github.com/dalemusser/folio/internal/app/store/watch"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves watch entries.
type Handler struct {
	Watch    *watchstore.Store
	Media    *mediastore.Store
	Resolver *mediaurl.Resolver
	Env      mediaurl.Env
	SiteURL  string
	SiteName string
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler constructs a watch Handler. siteURL is the canonical origin
// used for SEO URLs.
func NewHandler(db *mongo.Database, resolver *mediaurl.Resolver, env mediaurl.Env, siteURL, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Watch:    watchstore.New(db),
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
		if err != mongo.ErrNoDocuments {
			h.ErrLog.Degraded(r, "watch media lookup failed", err)
		}
		return nil
	}
	return &m
}
