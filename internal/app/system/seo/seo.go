// Package seo builds titles, canonical URLs and Open Graph metadata for
// pages and watch entries.
package seo

import (
	"strings"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/dalemusser/folio/internal/domain/models"
)

// DefaultOGImagePath is served when a document has no usable image.
const DefaultOGImagePath = "/website-template-OG.webp"

// Collection kinds with their own URL prefix.
const (
	KindPage    = "pages"
	KindPost    = "posts"
	KindProject = "projects"
	KindWatch   = "watch"
)

// Meta is the metadata rendered into a document's head.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url"`
	OGImage     string `json:"og_image"`
}

// Title suffixes title with the site brand, or returns the brand alone.
func Title(brand, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return brand
	}
	return title + " | " + brand
}

// CanonicalURL returns the public URL of a document. Pages live at the root;
// every other kind lives under its own prefix.
func CanonicalURL(base, kind, slug string) string {
	base = strings.TrimRight(base, "/")
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return base
	}
	switch kind {
	case KindPost, KindProject, KindWatch:
		return base + "/" + kind + "/" + slug
	default:
		return base + "/" + slug
	}
}

// OGImageURL chooses the social preview image for m. The og size is
// preferred over the original. URLs on non-public storage hosts are replaced
// by the file's static path; root-relative results are made absolute
// against base.
func OGImageURL(base string, m *models.Media) string {
	base = strings.TrimRight(base, "/")
	fallback := base + DefaultOGImagePath
	if m == nil {
		return fallback
	}

	staticPath := ""
	if name := strings.TrimLeft(m.Filename, "/"); name != "" {
		staticPath = mediaurl.Media.StaticPath(name)
	}
	pick := func(u string) string {
		if u != "" && !mediaurl.IsBroken(u) {
			return u
		}
		return staticPath
	}

	chosen := pick(m.Sizes[models.SizeOG].URL)
	if chosen == "" {
		chosen = pick(m.URL)
	}
	switch mediaurl.Classify(chosen) {
	case mediaurl.Absolute:
		return chosen
	case mediaurl.RootRelative:
		return base + chosen
	}
	if chosen == "" {
		return fallback
	}
	return base + "/" + chosen
}

// Build assembles Meta for a document. Explicit meta fields win over the
// document's own title.
func Build(brand, base, kind, slug, docTitle string, meta models.SEOMeta, image *models.Media) Meta {
	title := meta.Title
	if title == "" {
		title = docTitle
	}
	return Meta{
		Title:       Title(brand, title),
		Description: meta.Description,
		URL:         CanonicalURL(base, kind, slug),
		OGImage:     OGImageURL(base, image),
	}
}
