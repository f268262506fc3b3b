// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	articlesfeature "github.com/dalemusser/folio/internal/app/features/articles"
	errorsfeature "github.com/dalemusser/folio/internal/app/features/errors"
	fileproxyfeature "github.com/dalemusser/folio/internal/app/features/fileproxy"
	globalsfeature "github.com/dalemusser/folio/internal/app/features/globals"
	healthfeature "github.com/dalemusser/folio/internal/app/features/health"
	mediafeature "github.com/dalemusser/folio/internal/app/features/media"
	pagesfeature "github.com/dalemusser/folio/internal/app/features/pages"
	redirectsfeature "github.com/dalemusser/folio/internal/app/features/redirects"
	sitemapfeature "github.com/dalemusser/folio/internal/app/features/sitemap"
	subscribefeature "github.com/dalemusser/folio/internal/app/features/subscribe"
	watchfeature "github.com/dalemusser/folio/internal/app/features/watch"
	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. One Resolver is built from the storage mode and
// shared by every feature; handlers re-bind it to the request's origin.
//
// The file endpoints are mounted beside the JSON endpoints of the same
// collection. chi matches the static "file" segment before the {id}
// parameter, so /api/media/file/x never reaches the media JSON handler.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase
	mode := appCfg.MediaMode()
	resolver := mediaurl.NewResolver(mode, mediaurl.EnvLocation{Env: appCfg.Platform})
	siteURL := appCfg.Platform.ServerOrigin()

	errLog := errorsfeature.NewErrorLogger(logger).WithDev(coreCfg.Env == "dev")

	r := chi.NewRouter()
	r.NotFound(errorsfeature.NotFoundHandler)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Blobs.Backend(), mode, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Stored files: static passthrough and the two proxy endpoints
	fileHandler := fileproxyfeature.NewHandler(deps.Blobs, mode, errLog, logger)
	r.Mount("/media", fileproxyfeature.Routes(fileHandler))
	r.Mount("/api/media/file", fileproxyfeature.Routes(fileHandler))
	r.Mount("/api/documents/file", fileproxyfeature.Routes(fileHandler))

	// Media and document metadata
	mediaHandler := mediafeature.NewHandler(db, resolver, appCfg.Platform, errLog, logger)
	r.Mount("/api/media", mediafeature.MediaRoutes(mediaHandler))
	r.Mount("/api/documents", mediafeature.DocumentRoutes(mediaHandler))

	// Content
	pagesHandler := pagesfeature.NewHandler(db, resolver, siteURL, appCfg.SiteName, errLog, logger)
	r.Mount("/api/pages", pagesfeature.Routes(pagesHandler))

	articlesHandler := articlesfeature.NewHandler(db, resolver, appCfg.Platform, siteURL, appCfg.SiteName, errLog, logger)
	r.Mount("/api/posts", articlesfeature.PostRoutes(articlesHandler))
	r.Mount("/api/projects", articlesfeature.ProjectRoutes(articlesHandler))

	watchHandler := watchfeature.NewHandler(db, resolver, appCfg.Platform, siteURL, appCfg.SiteName, errLog, logger)
	r.Mount("/api/watch", watchfeature.Routes(watchHandler))

	// Site chrome and moved paths
	globalsHandler := globalsfeature.NewHandler(db, resolver, appCfg.Platform, errLog, logger)
	r.Mount("/api/globals", globalsfeature.Routes(globalsHandler))

	redirectsHandler := redirectsfeature.NewHandler(db, errLog, logger)
	r.Mount("/api/redirects", redirectsfeature.Routes(redirectsHandler))

	sitemapHandler := sitemapfeature.NewHandler(db,
		sitemapfeature.SiteURL(appCfg.Platform.ServerURL, appCfg.Platform.ProductionURL), errLog, logger)
	r.Mount("/", sitemapfeature.Routes(sitemapHandler))

	// Newsletter
	subscribeHandler := subscribefeature.NewHandler(appCfg.SubscribeURL, ratelimit.NewSignupLimiter(), logger)
	r.Mount("/api/subscribe", subscribefeature.Routes(subscribeHandler))

	return r, nil
}
