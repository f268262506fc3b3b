package htmlsanitize

import (
	"html/template"
	"strings"
	"testing"
)

func TestSanitize_PageBodyKeepsFormatting(t *testing.T) {
	body := `<h2>Selected work</h2>` +
		`<p>I design <strong>identities</strong> and <em>motion</em> for small studios.</p>` +
		`<ul><li>Branding</li><li>Title sequences</li></ul>` +
		`<blockquote>Clear, calm and on time.</blockquote>` +
		`<p><a href="https://vimeo.com/123">Reel</a> or <a href="/watch/welcome">watch here</a>.</p>` +
		`<img src="/api/media/file/hero.webp" alt="Hero still">` +
		`<p>Line one<br>Line two</p><hr>` +
		`<p>H<sub>2</sub>O, x<sup>2</sup>, <u>u</u>, <s>s</s>, <mark>m</mark></p>` +
		`<pre><code>npm run build</code></pre>`

	got := Sanitize(body)
	for _, keep := range []string{
		"<h2>", "<strong>identities</strong>", "<em>motion</em>",
		"<ul>", "<li>Branding</li>", "<blockquote>",
		`href="https://vimeo.com/123"`, `href="/watch/welcome"`,
		`src="/api/media/file/hero.webp"`, `alt="Hero still"`,
		"<br", "<hr", "<sub>2</sub>", "<sup>2</sup>", "<u>u</u>", "<s>s</s>", "<mark>m</mark>",
		"<pre><code>npm run build</code></pre>",
	} {
		if !strings.Contains(got, keep) {
			t.Errorf("expected %q to survive, got %q", keep, got)
		}
	}
}

func TestSanitize_StripsActiveContent(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		mustNot []string
		must    []string
	}{
		{
			name:    "script in page body",
			in:      `<p>About</p><script>fetch("/api/subscribe")</script>`,
			mustNot: []string{"<script", "fetch("},
			must:    []string{"<p>About</p>"},
		},
		{
			name:    "event handler on image",
			in:      `<img src="/media/a.jpg" onerror="alert(1)">`,
			mustNot: []string{"onerror", "alert"},
			must:    []string{`src="/media/a.jpg"`},
		},
		{
			name:    "click handler on link",
			in:      `<a href="/about" onclick="track()">About</a>`,
			mustNot: []string{"onclick"},
			must:    []string{`href="/about"`},
		},
		{
			name:    "javascript url",
			in:      `<a href="javascript:alert(1)">Download CV</a>`,
			mustNot: []string{"javascript:"},
			must:    []string{"Download CV"},
		},
		{
			name:    "data url image",
			in:      `<img src="data:image/svg+xml;base64,PHN2Zz4=" alt="x">`,
			mustNot: []string{"data:image"},
		},
		{
			name:    "embedded player iframe",
			in:      `<iframe src="https://www.youtube.com/embed/abc"></iframe><p>Reel</p>`,
			mustNot: []string{"<iframe"},
			must:    []string{"<p>Reel</p>"},
		},
		{
			name:    "style block",
			in:      `<style>body{display:none}</style><p>Visible</p>`,
			mustNot: []string{"<style", "display:none"},
			must:    []string{"<p>Visible</p>"},
		},
		{
			name:    "newsletter form pasted into a page",
			in:      `<form action="https://evil.test"><input name="email"><button>Join</button></form>`,
			mustNot: []string{"<form", "<input", "<button"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.in)
			for _, s := range tt.mustNot {
				if strings.Contains(got, s) {
					t.Errorf("expected %q to be removed, got %q", s, got)
				}
			}
			for _, s := range tt.must {
				if !strings.Contains(got, s) {
					t.Errorf("expected %q to survive, got %q", s, got)
				}
			}
		})
	}
}

func TestSanitize_DocumentTables(t *testing.T) {
	// Document descriptions carry rate cards and timelines as tables.
	in := `<table class="rates"><thead><tr><th style="text-align: left">Service</th><th style="width: 30%">Rate</th></tr></thead>` +
		`<tbody><tr><td class="name">Logo</td><td style="text-align: right; color: red">$900</td></tr></tbody></table>`

	got := Sanitize(in)
	for _, keep := range []string{
		`<table class="rates">`, "<thead>", "<tbody>", `<td class="name">`,
		"text-align: left", "width: 30%", "text-align: right",
	} {
		if !strings.Contains(got, keep) {
			t.Errorf("expected %q to survive, got %q", keep, got)
		}
	}
	if strings.Contains(got, "color") {
		t.Errorf("unexpected style property kept: %q", got)
	}
}

func TestSanitize_TableStylesOnlyOnTables(t *testing.T) {
	got := Sanitize(`<p style="text-align: center" class="lead">Intro</p>`)
	if strings.Contains(got, "style=") || strings.Contains(got, "class=") {
		t.Errorf("paragraph attributes should be dropped, got %q", got)
	}
}

func TestSanitize_RejectsBadWidths(t *testing.T) {
	got := Sanitize(`<table><tr><td style="width: expression(alert(1))">x</td></tr></table>`)
	if strings.Contains(got, "expression") {
		t.Errorf("expected invalid width to be removed, got %q", got)
	}
}

func TestSanitize_Empty(t *testing.T) {
	if got := Sanitize(""); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Short bio with no markup.", true},
		{"Rates start at < $500", true},
		{"Arrow -> next", true},
		{"<p>Bio</p>", false},
		{"a < b > c", false},
	}
	for _, tt := range tests {
		if got := IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"CV, updated 2024", "<p>CV, updated 2024</p>"},
		{"Line one\nLine two", "<p>Line one<br>Line two</p>"},
		{"Tom & Jerry <3", "<p>Tom &amp; Jerry &lt;3</p>"},
	}
	for _, tt := range tests {
		if got := PlainTextToHTML(tt.in); got != tt.want {
			t.Errorf("PlainTextToHTML(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrepareForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want template.HTML
	}{
		{"empty", "", ""},
		{"plain document description", "Portfolio PDF\nUpdated monthly", "<p>Portfolio PDF<br>Updated monthly</p>"},
		{"page html", "<p>Hello</p>", "<p>Hello</p>"},
		{"page html with script", `<p>Hello</p><script>x()</script>`, "<p>Hello</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PrepareForDisplay(tt.in); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeToHTML(t *testing.T) {
	var got template.HTML = SanitizeToHTML(`<em>ok</em><script>no()</script>`)
	if got != "<em>ok</em>" {
		t.Errorf("got %q", got)
	}
	if SanitizeToHTML("") != "" {
		t.Error("expected empty output for empty input")
	}
}
