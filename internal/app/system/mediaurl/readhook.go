package mediaurl

import (
	"net/url"
	"strings"

	"github.com/dalemusser/folio/internal/domain/models"
)

// RewriteBroken replaces media URLs that point at a non-public storage
// endpoint with proxy paths. It runs on every media document read so that
// clients never see a storage API URL. The input is not modified; sizes are
// copied before any rewrite.
//
// A size uses its own filename, else the last segment of its URL, else the
// main filename. The main URL uses the main filename, else its last segment.
func (r *Resolver) RewriteBroken(doc models.Media) models.Media {
	mainName := strings.TrimLeft(doc.Filename, "/")
	out := doc

	if r.Broken.MatchURL(doc.URL) {
		name := mainName
		if name == "" {
			name = filenameFromURL(doc.URL)
		}
		if name != "" {
			out.URL = Media.ProxyPath(name)
		}
	}

	if len(doc.Sizes) > 0 {
		out.Sizes = make(map[string]models.MediaSize, len(doc.Sizes))
		for key, size := range doc.Sizes {
			if r.Broken.MatchURL(size.URL) {
				name := strings.TrimLeft(size.Filename, "/")
				if name == "" {
					name = filenameFromURL(size.URL)
				}
				if name == "" {
					name = mainName
				}
				if name != "" {
					size.URL = Media.ProxyPath(name)
				}
			}
			out.Sizes[key] = size
		}
	}

	return out
}

// MediaReference builds the resolver input for a media document, or for one
// of its sizes when size is non-empty and present. The cache tag is the
// document's update time. The fallback is the static path of the file so
// that a broken storage URL still has somewhere to go.
func MediaReference(doc models.Media, size string) Reference {
	ref := Reference{URL: doc.URL, Filename: doc.Filename}
	if size != "" {
		if s, ok := doc.Sizes[size]; ok && (s.URL != "" || s.Filename != "") {
			ref = Reference{URL: s.URL, Filename: s.Filename}
		}
	}
	if ref.Filename != "" {
		ref.FallbackPath = Media.StaticPath(ref.Filename)
	}
	if doc.UpdatedAt != nil {
		ref.CacheTag = CacheTagFromTime(*doc.UpdatedAt)
	}
	return ref
}

// DocumentReference builds the resolver input for a document. Documents are
// not cache tagged: their URLs are handed to PDF viewers and download links.
func DocumentReference(doc models.Document) Reference {
	return Reference{URL: doc.URL, Filename: doc.Filename}
}

func filenameFromURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return lastSegment(u.Path)
}
