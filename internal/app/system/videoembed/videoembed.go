// Package videoembed decides how a watch entry's video link is shown.
//
// Only hosts that reliably allow framing get an embed URL. Many sites send
// X-Frame-Options and show "refused to connect" in an iframe, so for
// everything else callers render a link card instead.
package videoembed

import (
	"net/url"
	"path"
	"strings"
)

// EmbedURL returns an iframe-safe player URL for raw, and false when the
// link should be shown as a card.
func EmbedURL(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	parts := splitPath(u.Path)

	switch host {
	case "youtu.be":
		if len(parts) > 0 {
			return youTube(parts[0]), true
		}
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return youTube(id), true
		}
		for _, marker := range []string{"embed", "shorts"} {
			if id := after(parts, marker); id != "" {
				return youTube(id), true
			}
		}
	case "vimeo.com":
		if len(parts) > 0 {
			return "https://player.vimeo.com/video/" + parts[0], true
		}
	}
	return "", false
}

// IsDirectVideo reports whether raw points at a video file a <video> element
// can play.
func IsDirectVideo(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimPrefix(path.Ext(u.Path), ".")) {
	case "mp4", "webm", "ogg", "mov":
		return true
	}
	return false
}

func youTube(id string) string {
	return "https://www.youtube.com/embed/" + id
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

func after(parts []string, marker string) string {
	for i, p := range parts {
		if p == marker && i+1 < len(parts) {
			return parts[i+1]
		}
	}
	return ""
}
