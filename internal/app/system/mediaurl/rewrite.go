package mediaurl

import "strings"

// Family names a pair of path prefixes that address the same stored file.
type Family struct {
	Name         string
	StaticPrefix string
	ProxyPrefix  string

	// StaticReversal allows proxied paths to be turned back into static
	// paths when proxy reads are not forced.
	StaticReversal bool

	// ProxiedHosts are public storage hosts whose URLs are moved onto the
	// proxy prefix when proxy reads are forced.
	ProxiedHosts []string
}

var (
	// Media is the media collection: /media/<f> ⇄ /api/media/file/<f>.
	Media = Family{
		Name:           "media",
		StaticPrefix:   "/media/",
		ProxyPrefix:    "/api/media/file/",
		StaticReversal: true,
	}

	// Documents is the documents collection. Its proxied paths stay proxied
	// unless proxy reads are forced, in which case static paths and public
	// bucket URLs are lifted into /api/documents/file/.
	Documents = Family{
		Name:         "documents",
		StaticPrefix: "/media/",
		ProxyPrefix:  "/api/documents/file/",
		ProxiedHosts: []string{".r2.dev"},
	}
)

// ProxyPath builds the proxied path for a stored filename. Leading slashes
// are dropped and the name is encoded as a single component.
func (f Family) ProxyPath(filename string) string {
	return f.ProxyPrefix + encodeComponent(strings.TrimLeft(filename, "/"))
}

// StaticPath builds the static passthrough path for a stored filename.
func (f Family) StaticPath(filename string) string {
	return f.StaticPrefix + encodeComponent(strings.TrimLeft(filename, "/"))
}

// Rewriter moves paths between the static and proxied forms of a Family.
type Rewriter struct {
	Mode Mode
}

// Rewrite returns p in the form the current Mode asks for, with every path
// segment encoded exactly once. Absolute URLs are returned unchanged.
// Applying Rewrite twice yields the same result as applying it once.
func (rw Rewriter) Rewrite(p string, f Family) string {
	if p == "" || Classify(p) == Absolute {
		return p
	}
	path, query, hasQuery := strings.Cut(p, "?")

	switch {
	case rw.Mode.ForceProxyReads && strings.HasPrefix(path, f.StaticPrefix):
		path = f.ProxyPrefix + strings.TrimPrefix(path, f.StaticPrefix)
	case !rw.Mode.ForceProxyReads && f.StaticReversal && strings.HasPrefix(path, f.ProxyPrefix):
		path = f.StaticPrefix + strings.TrimPrefix(path, f.ProxyPrefix)
	}

	path = encodePath(path)
	if hasQuery {
		return path + "?" + query
	}
	return path
}
