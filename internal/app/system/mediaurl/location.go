package mediaurl

import (
	"net/http"
	"strings"
)

// DefaultOrigin is used when no deployment URL is configured.
const DefaultOrigin = "http://localhost:3000"

// LocationProvider supplies the origin (scheme + host + optional port) that
// bare paths are prefixed with.
type LocationProvider interface {
	BaseURL() string
}

// Env is a snapshot of the deployment URL settings taken at startup.
type Env struct {
	// ServerURL is the explicit public server URL.
	ServerURL string
	// URL is the generic deployment URL the hosting platform sets.
	URL string
	// DeployPrimeURL is the deploy-preview URL.
	DeployPrimeURL string
	// PagesURL is a CDN pages hostname, without scheme.
	PagesURL string
	// ProductionURL is the platform production hostname, without scheme.
	ProductionURL string
	// TrustForwarded honours X-Forwarded-Host and X-Forwarded-Proto. Set it
	// only when a reverse proxy that overwrites those headers fronts the app.
	TrustForwarded bool
}

// ServerOrigin picks the first configured candidate in server order, or
// DefaultOrigin.
func (e Env) ServerOrigin() string {
	return firstOrigin(
		e.ServerURL,
		e.URL,
		e.DeployPrimeURL,
		withHTTPS(e.PagesURL),
		withHTTPS(e.ProductionURL),
		DefaultOrigin,
	)
}

// ClientOrigin picks the first configured candidate in client order. It may
// return "" so that paths stay relative to whatever origin the browser is on.
func (e Env) ClientOrigin() string {
	return firstOrigin(
		withHTTPS(e.ProductionURL),
		withHTTPS(e.PagesURL),
		e.URL,
		e.DeployPrimeURL,
		e.ServerURL,
	)
}

// EnvLocation resolves the origin from the environment snapshot alone.
// Use it outside request handling: background jobs, sitemaps, seeding.
type EnvLocation struct {
	Env Env
}

func (l EnvLocation) BaseURL() string {
	return l.Env.ServerOrigin()
}

// RequestLocation derives the origin from the request being served, the
// server-side counterpart of reading the browser's navigation location.
//
// Forwarded headers count only when Env.TrustForwarded is set. Otherwise a
// configured client-order origin wins over the Host header, and the request
// host is used as a last resort. Without a request it falls back to the
// client-order environment candidates.
type RequestLocation struct {
	Request *http.Request
	Env     Env
}

func (l RequestLocation) BaseURL() string {
	r := l.Request
	if r == nil {
		return l.Env.ClientOrigin()
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}

	var host string
	if l.Env.TrustForwarded {
		host = firstHeaderValue(r.Header.Get("X-Forwarded-Host"))
		if proto := strings.ToLower(firstHeaderValue(r.Header.Get("X-Forwarded-Proto"))); proto == "http" || proto == "https" {
			scheme = proto
		}
	} else if origin := l.Env.ClientOrigin(); origin != "" {
		return origin
	}
	if host == "" {
		host = r.Host
	}
	if host == "" {
		return l.Env.ClientOrigin()
	}
	return scheme + "://" + host
}

// StaticLocation is a fixed origin.
type StaticLocation string

func (s StaticLocation) BaseURL() string {
	return strings.TrimRight(strings.TrimSpace(string(s)), "/")
}

func firstOrigin(candidates ...string) string {
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			return strings.TrimRight(c, "/")
		}
	}
	return ""
}

// withHTTPS prefixes a bare hostname with https://.
func withHTTPS(host string) string {
	host = strings.TrimSpace(host)
	if host == "" || Classify(host) == Absolute {
		return host
	}
	return "https://" + host
}

func firstHeaderValue(v string) string {
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	return strings.TrimSpace(v)
}
