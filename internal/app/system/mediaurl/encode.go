package mediaurl

import (
	"net/url"
	"strings"
)

const upperhex = "0123456789ABCDEF"

// encodeComponent percent-encodes everything outside the RFC 3986
// unreserved set plus the sub-delims browsers leave alone in a component
// (! * ' ( )). Spaces become %20, never "+".
//
// url.PathEscape leaves ":" "@" "&" "=" "+" "$" "," unescaped and
// url.QueryEscape turns spaces into "+", so neither matches the encoding the
// file endpoints and cache tags expect.
func encodeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isComponentSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&15])
	}
	return b.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// encodePath re-encodes each path segment so that already encoded names are
// not encoded twice. A segment that does not decode cleanly is encoded as
// is. Anything after the first "?" is left untouched.
func encodePath(p string) string {
	path, query, hasQuery := strings.Cut(p, "?")
	segs := strings.Split(path, "/")
	for i, seg := range segs {
		if seg == "" {
			continue
		}
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			segs[i] = encodeComponent(seg)
			continue
		}
		segs[i] = encodeComponent(decoded)
	}
	path = strings.Join(segs, "/")
	if hasQuery {
		return path + "?" + query
	}
	return path
}

// lastSegment returns the final non-empty segment of a decoded URL path.
func lastSegment(p string) string {
	p = strings.TrimRight(p, "/")
	if i := strings.LastIndexByte(p, '/'); i >= 0 {
		p = p[i+1:]
	}
	return p
}
