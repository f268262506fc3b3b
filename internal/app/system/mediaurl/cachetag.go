package mediaurl

import (
	"strings"
	"time"
)

// AppendCacheTag appends tag to u as a bare, percent-encoded token. The
// separator is "?" when u has no query yet and "&" otherwise; a URL that
// already ends in a separator gets none. Any fragment stays at the end.
// An empty tag returns u unchanged.
func AppendCacheTag(u, tag string) string {
	if u == "" || tag == "" {
		return u
	}
	base, frag, hasFrag := strings.Cut(u, "#")

	sep := "?"
	switch {
	case strings.HasSuffix(base, "?"), strings.HasSuffix(base, "&"):
		sep = ""
	case strings.Contains(base, "?"):
		sep = "&"
	}

	out := base + sep + encodeComponent(tag)
	if hasFrag {
		out += "#" + frag
	}
	return out
}

// CacheTagFromTime renders t as an RFC 3339 UTC token, or "" for the zero
// time.
func CacheTagFromTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
