// internal/app/features/sitemap/handler.go
package sitemap

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	uierrors "github.com/dalemusser/folio/internal/app/features/errors"
	watchstore "github.com/dalemusser/folio/internal/app/store/watch"
	"github.com/dalemusser/folio/internal/app/system/seo"
	"github.com/dalemusser/folio/internal/app/system/timeouts"
	"github.com/dalemusser/folio/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MaxEntries caps a single sitemap file.
const MaxEntries = 1000

// DefaultSiteURL is used when no server or production URL is configured.
const DefaultSiteURL = "https://example.com"

// Handler renders sitemaps for published content.
type Handler struct {
	Watch   *watchstore.Store
	SiteURL string
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger

	now func() time.Time
}

// NewHandler constructs a sitemap Handler. siteURL should come from
// SiteURL.
func NewHandler(db *mongo.Database, siteURL string, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Watch:   watchstore.New(db),
		SiteURL: strings.TrimRight(siteURL, "/"),
		ErrLog:  errLog,
		Log:     logger,
		now:     time.Now,
	}
}

// SiteURL picks the sitemap origin: the explicit server URL, then the
// platform production hostname, then DefaultSiteURL.
func SiteURL(serverURL, productionURL string) string {
	if s := strings.TrimSpace(serverURL); s != "" {
		return strings.TrimRight(s, "/")
	}
	if p := strings.TrimRight(strings.TrimSpace(productionURL), "/"); p != "" {
		if !strings.Contains(p, "://") {
			p = "https://" + p
		}
		return p
	}
	return DefaultSiteURL
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	XMLNS   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod"`
}

// ServeWatch handles GET /watch-sitemap.xml.
func (h *Handler) ServeWatch(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "watch sitemap")
	defer cancel()

	entries, err := h.Watch.ListPublished(ctx, 0, MaxEntries)
	if err != nil {
		h.ErrLog.LogServerError(w, r, "watch sitemap query failed", err, "Could not build sitemap.")
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=600")
	_, _ = w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(h.buildWatch(entries)); err != nil {
		h.Log.Warn("watch sitemap write failed", zap.Error(err))
	}
}

func (h *Handler) buildWatch(entries []models.Watch) urlSet {
	fallback := h.now().UTC().Format(time.RFC3339)
	set := urlSet{XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9", URLs: []urlEntry{}}
	for _, e := range entries {
		if e.Slug == "" {
			continue
		}
		lastmod := fallback
		if e.UpdatedAt != nil && !e.UpdatedAt.IsZero() {
			lastmod = e.UpdatedAt.UTC().Format(time.RFC3339)
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:     seo.CanonicalURL(h.SiteURL, seo.KindWatch, e.Slug),
			LastMod: lastmod,
		})
	}
	return set
}
