package mediaurl_test

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/folio/internal/app/system/mediaurl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const site = mediaurl.StaticLocation("https://site.test")

var (
	proxyOn  = mediaurl.Mode{ForceProxyReads: true}
	proxyOff = mediaurl.Mode{}
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   string
		want mediaurl.Kind
	}{
		{"https://cdn.test/a.jpg", mediaurl.Absolute},
		{"http://cdn.test/a.jpg", mediaurl.Absolute},
		{"HTTPS://cdn.test/a.jpg", mediaurl.Absolute},
		{"/media/a.jpg", mediaurl.RootRelative},
		{"//cdn.test/a.jpg", mediaurl.RootRelative},
		{"a.jpg", mediaurl.Bare},
		{"ftp://cdn.test/a.jpg", mediaurl.Bare},
		{"", mediaurl.Bare},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mediaurl.Classify(tt.in), "Classify(%q)", tt.in)
	}
}

func TestRewrite_ProxyOn(t *testing.T) {
	rw := mediaurl.Rewriter{Mode: proxyOn}

	assert.Equal(t, "/api/media/file/photo.jpg", rw.Rewrite("/media/photo.jpg", mediaurl.Media))
	assert.Equal(t, "/api/media/file/My%20Photo.jpg?w=1", rw.Rewrite("/media/My Photo.jpg?w=1", mediaurl.Media))
	assert.Equal(t, "/api/media/file/a.jpg", rw.Rewrite("/api/media/file/a.jpg", mediaurl.Media))
	assert.Equal(t, "/api/documents/file/a.pdf", rw.Rewrite("/media/a.pdf", mediaurl.Documents))
	assert.Equal(t, "/static/logo.svg", rw.Rewrite("/static/logo.svg", mediaurl.Media))
	assert.Equal(t, "https://cdn.test/media/a b.jpg", rw.Rewrite("https://cdn.test/media/a b.jpg", mediaurl.Media))
}

func TestRewrite_ProxyOff(t *testing.T) {
	rw := mediaurl.Rewriter{Mode: proxyOff}

	assert.Equal(t, "/media/a%20b.jpg", rw.Rewrite("/api/media/file/a%20b.jpg", mediaurl.Media))
	assert.Equal(t, "/media/a.jpg", rw.Rewrite("/media/a.jpg", mediaurl.Media))
	assert.Equal(t, "/api/documents/file/a.pdf", rw.Rewrite("/api/documents/file/a.pdf", mediaurl.Documents))
}

func TestRewrite_Idempotent(t *testing.T) {
	inputs := []string{
		"/media/photo.jpg",
		"/media/My Photo.jpg",
		"/media/My%20Photo.jpg?x=1",
		"/media/100%.jpg",
		"/api/media/file/café.jpg",
		"/api/documents/file/report 2024.pdf",
		"/other/path",
	}
	for _, mode := range []mediaurl.Mode{proxyOn, proxyOff} {
		rw := mediaurl.Rewriter{Mode: mode}
		for _, fam := range []mediaurl.Family{mediaurl.Media, mediaurl.Documents} {
			for _, in := range inputs {
				once := rw.Rewrite(in, fam)
				assert.Equal(t, once, rw.Rewrite(once, fam), "mode=%+v family=%s in=%q", mode, fam.Name, in)
			}
		}
	}
}

func TestRewrite_PreservesDecodedFilename(t *testing.T) {
	rw := mediaurl.Rewriter{Mode: proxyOn}
	names := []string{"My Photo.jpg", "café ☕.png", "already%20encoded.jpg", "plain.webp"}

	for _, name := range names {
		out := rw.Rewrite("/media/"+name, mediaurl.Media)
		require.True(t, strings.HasPrefix(out, "/api/media/file/"), out)

		got, err := url.PathUnescape(strings.TrimPrefix(out, "/api/media/file/"))
		require.NoError(t, err)
		want, err := url.PathUnescape(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAppendCacheTag(t *testing.T) {
	tests := []struct {
		u, tag, want string
	}{
		{"https://cdn.test/a.jpg", "v1", "https://cdn.test/a.jpg?v1"},
		{"https://cdn.test/a.jpg?w=1", "v1", "https://cdn.test/a.jpg?w=1&v1"},
		{"/media/a.jpg", "", "/media/a.jpg"},
		{"/media/a.jpg?", "v1", "/media/a.jpg?v1"},
		{"/media/a.jpg?w=1&", "v1", "/media/a.jpg?w=1&v1"},
		{"/media/a.jpg#top", "v1", "/media/a.jpg?v1#top"},
		{"/media/a.jpg", "2024-01-01T00:00:00Z", "/media/a.jpg?2024-01-01T00%3A00%3A00Z"},
		{"", "v1", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, mediaurl.AppendCacheTag(tt.u, tt.tag), "AppendCacheTag(%q, %q)", tt.u, tt.tag)
	}
}

func TestAppendCacheTag_SingleSeparator(t *testing.T) {
	urls := []string{
		"https://cdn.test/a.jpg",
		"https://cdn.test/a.jpg?w=100",
		"http://cdn.test/a.jpg?w=100&h=50",
		"https://cdn.test/path/to/a.jpg",
	}
	for _, u := range urls {
		out := mediaurl.AppendCacheTag(u, "tag?&value")
		before := strings.Count(u, "?") + strings.Count(u, "&")
		after := strings.Count(out, "?") + strings.Count(out, "&")
		assert.Equal(t, before+1, after, out)
		for _, pair := range []string{"??", "&&", "?&", "&?"} {
			assert.NotContains(t, out, pair)
		}
	}
}

func TestCacheTagFromTime(t *testing.T) {
	assert.Equal(t, "", mediaurl.CacheTagFromTime(time.Time{}))
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T00:00:00Z", mediaurl.CacheTagFromTime(ts))
	est := time.FixedZone("EST", -5*3600)
	assert.Equal(t, "2024-01-01T05:00:00Z", mediaurl.CacheTagFromTime(ts.In(est).Add(5*time.Hour)))
}

func TestHostMatcher(t *testing.T) {
	m := mediaurl.NewHostMatcher("https://Media.Example.com/", "", " .r2.dev ")

	assert.True(t, m.Match("media.example.com"))
	assert.True(t, m.Match("pub-123.r2.dev"))
	assert.False(t, m.Match("example.com"))
	assert.False(t, m.Match(""))
	assert.True(t, m.MatchURL("https://pub-123.r2.dev/a.jpg"))
	assert.False(t, m.MatchURL("/media/a.jpg"))

	var zero mediaurl.HostMatcher
	assert.False(t, zero.Match("anything.test"))
}

func TestIsBroken(t *testing.T) {
	assert.True(t, mediaurl.IsBroken("https://acct123.r2.cloudflarestorage.com/bucket/photo.jpg"))
	assert.False(t, mediaurl.IsBroken("https://pub-1.r2.dev/photo.jpg"))
	assert.False(t, mediaurl.IsBroken("/media/photo.jpg"))
	assert.False(t, mediaurl.IsBroken("http://[::1"))
}

func TestModeFromFlags(t *testing.T) {
	assert.Equal(t, mediaurl.Mode{DirectReads: true}, mediaurl.ModeFromFlags(true, false, false))
	assert.Equal(t, mediaurl.Mode{ForceProxyReads: true}, mediaurl.ModeFromFlags(true, false, true))
	assert.Equal(t, mediaurl.Mode{ForceProxyReads: true, DirectReads: true}, mediaurl.ModeFromFlags(false, true, true))
	assert.Equal(t, mediaurl.Mode{}, mediaurl.ModeFromFlags(false, false, false))
}
