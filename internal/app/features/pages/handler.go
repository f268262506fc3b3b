// internal/app/features/pages/handler.go
package pages

import (
	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	mediastore "github.com/dalemusser/folio/internal/app/store/media"
	pagestore "github.com/dalemusser/folio/internal/app/store/pages"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler serves editable content pages.
type Handler struct {
	Pages    *pagestore.Store
	Media    *mediastore.Store
	Resolver *mediaurl.Resolver
	SiteURL  string
	SiteName string
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to the given Mongo database and logger.
func NewHandler(db *mongo.Database, resolver *mediaurl.Resolver, siteURL, siteName string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Pages:    pagestore.New(db),
		Media:    mediastore.New(db),
		Resolver: resolver,
		SiteURL:  siteURL,
		SiteName: siteName,
		Log:      logger,
		ErrLog:   errLog,
	}
}
