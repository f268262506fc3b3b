package mediaurl

import (
	"net/url"
	"strings"
)

// DefaultBrokenHosts are object-storage API endpoints that are not publicly
// readable from a browser. A URL on one of these hosts is never handed to
// a client as is.
var DefaultBrokenHosts = []string{"r2.cloudflarestorage.com"}

// DefaultQuerylessHosts reject requests that carry arbitrary query
// parameters, so cache tags are never appended to them.
var DefaultQuerylessHosts = []string{"r2.cloudflarestorage.com", ".r2.dev"}

// HostMatcher matches hostnames against a list of suffixes. The zero value
// matches nothing.
type HostMatcher struct {
	suffixes []string
}

// NewHostMatcher builds a matcher from hostname suffixes. Entries are
// lowercased, schemes and paths are stripped, and blanks are ignored, so a
// configured value like "https://media.example.com/" is accepted.
func NewHostMatcher(suffixes ...string) HostMatcher {
	m := HostMatcher{}
	for _, s := range suffixes {
		s = strings.ToLower(strings.TrimSpace(s))
		s = strings.TrimPrefix(s, "https://")
		s = strings.TrimPrefix(s, "http://")
		if i := strings.IndexByte(s, '/'); i >= 0 {
			s = s[:i]
		}
		if s == "" {
			continue
		}
		m.suffixes = append(m.suffixes, s)
	}
	return m
}

// Match reports whether host ends with one of the configured suffixes.
func (m HostMatcher) Match(host string) bool {
	host = strings.ToLower(host)
	if host == "" {
		return false
	}
	for _, s := range m.suffixes {
		if strings.HasSuffix(host, s) {
			return true
		}
	}
	return false
}

// MatchURL parses raw and matches its hostname. Unparseable input never
// matches.
func (m HostMatcher) MatchURL(raw string) bool {
	if raw == "" || Classify(raw) != Absolute {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return m.Match(u.Hostname())
}

// IsBroken reports whether raw points at one of the DefaultBrokenHosts.
func IsBroken(raw string) bool {
	return NewHostMatcher(DefaultBrokenHosts...).MatchURL(raw)
}
