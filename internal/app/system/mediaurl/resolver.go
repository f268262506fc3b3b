package mediaurl

import (
	"net/url"
	"strings"
)

// Warning explains why a Result is a best-effort value.
type Warning string

const (
	// WarnEmptyInput means neither a URL nor a filename was given.
	WarnEmptyInput Warning = "empty_input"
	// WarnParseFailed means an absolute URL could not be parsed and was
	// returned unchanged.
	WarnParseFailed Warning = "parse_failed"
	// WarnBrokenNoFallback means the URL points at a non-public storage
	// endpoint and no replacement path could be derived.
	WarnBrokenNoFallback Warning = "broken_no_fallback"
)

// Result is a resolved URL plus any warnings raised while building it.
type Result struct {
	URL      string
	Warnings []Warning
}

// OK reports whether the URL was resolved without falling back.
func (r Result) OK() bool { return len(r.Warnings) == 0 }

// Reference is an asset reference as the content layer hands it over.
// Empty strings stand for absent values.
type Reference struct {
	URL          string
	Filename     string
	CacheTag     string
	FallbackPath string
}

// Resolver resolves references under a fixed Mode.
type Resolver struct {
	Mode     Mode
	Location LocationProvider

	// Broken matches storage hosts that must be replaced by a fallback.
	Broken HostMatcher
	// Queryless matches hosts that must not receive a cache tag.
	Queryless HostMatcher
}

// NewResolver returns a Resolver with the default host matchers.
func NewResolver(mode Mode, loc LocationProvider) *Resolver {
	return &Resolver{
		Mode:      mode,
		Location:  loc,
		Broken:    NewHostMatcher(DefaultBrokenHosts...),
		Queryless: NewHostMatcher(DefaultQuerylessHosts...),
	}
}

// WithLocation returns a copy of r that resolves bare paths against loc.
func (r *Resolver) WithLocation(loc LocationProvider) *Resolver {
	cp := *r
	cp.Location = loc
	return &cp
}

// Resolve turns ref into a URL for family f. It never fails; see Result.
func (r *Resolver) Resolve(ref Reference, f Family) Result {
	rw := Rewriter{Mode: r.Mode}
	raw := strings.TrimSpace(ref.URL)

	if raw == "" {
		name := strings.TrimLeft(strings.TrimSpace(ref.Filename), "/")
		if name == "" {
			return Result{Warnings: []Warning{WarnEmptyInput}}
		}
		p := rw.Rewrite(f.ProxyPath(name), f)
		if !r.Mode.ForceProxyReads {
			p = r.baseURL() + p
		}
		return Result{URL: AppendCacheTag(p, ref.CacheTag)}
	}

	switch Classify(raw) {
	case Absolute:
		u, err := url.Parse(raw)
		if err != nil || u.Host == "" {
			return Result{URL: raw, Warnings: []Warning{WarnParseFailed}}
		}
		host := u.Hostname()
		if r.Broken.Match(host) || r.proxiedHost(host, f) {
			fb := r.fallback(ref, u, f)
			if fb == "" {
				return Result{URL: raw, Warnings: []Warning{WarnBrokenNoFallback}}
			}
			return Result{URL: AppendCacheTag(rw.Rewrite(fb, f), ref.CacheTag)}
		}
		if r.Queryless.Match(host) {
			return Result{URL: raw}
		}
		return Result{URL: AppendCacheTag(raw, ref.CacheTag)}

	case RootRelative:
		return Result{URL: AppendCacheTag(rw.Rewrite(raw, f), ref.CacheTag)}

	default:
		p := rw.Rewrite("/"+raw, f)
		return Result{URL: AppendCacheTag(r.baseURL()+p, ref.CacheTag)}
	}
}

// MediaURL resolves a media reference and returns only the URL.
func (r *Resolver) MediaURL(ref Reference) string {
	return r.Resolve(ref, Media).URL
}

// DocumentURL resolves a document reference and returns only the URL.
func (r *Resolver) DocumentURL(ref Reference) string {
	return r.Resolve(ref, Documents).URL
}

// fallback picks the replacement path for a broken storage URL: the
// caller's fallback, else the proxy path of the known filename, else the
// proxy path of the URL's last segment.
func (r *Resolver) fallback(ref Reference, u *url.URL, f Family) string {
	if fb := strings.TrimSpace(ref.FallbackPath); fb != "" {
		if Classify(fb) == Bare {
			fb = "/" + fb
		}
		return fb
	}
	name := strings.TrimLeft(strings.TrimSpace(ref.Filename), "/")
	if name == "" {
		name = lastSegment(u.Path)
	}
	if name == "" {
		return ""
	}
	return f.ProxyPath(name)
}

// proxiedHost reports whether host is a public storage host that family f
// routes through its proxy under forced proxy reads.
func (r *Resolver) proxiedHost(host string, f Family) bool {
	if !r.Mode.ForceProxyReads || len(f.ProxiedHosts) == 0 {
		return false
	}
	return NewHostMatcher(f.ProxiedHosts...).Match(host)
}

func (r *Resolver) baseURL() string {
	if r.Location == nil {
		return DefaultOrigin
	}
	return strings.TrimRight(r.Location.BaseURL(), "/")
}
