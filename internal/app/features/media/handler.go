// internal/app/features/media/handler.go
package media

import (
	"net/http"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	documentstore "github.com/dalemusser/folio/internal/app/store/documents"
	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves media and document metadata with resolved URLs.
type Handler struct {
	Media     *mediastore.Store
	Documents *documentstore.Store
	Resolver  *mediaurl.Resolver
	Env       mediaurl.Env
	ErrLog    *uierrors.ErrorLogger
	Log       *zap.Logger
}

// NewHandler constructs a media Handler.
func NewHandler(db *mongo.Database, resolver *mediaurl.Resolver, env mediaurl.Env, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Media:     mediastore.New(db),
		Documents: documentstore.New(db),
		Resolver:  resolver,
		Env:       env,
		ErrLog:    errLog,
		Log:       logger,
	}
}

// resolverFor binds the resolver to the origin of the request being served.
func (h *Handler) resolverFor(r *http.Request) *mediaurl.Resolver {
	return h.Resolver.WithLocation(mediaurl.RequestLocation{Request: r, Env: h.Env})
}
