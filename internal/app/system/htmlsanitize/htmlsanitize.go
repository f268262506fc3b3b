// Package htmlsanitize cleans stored HTML before it is sent to clients.
//
// Page bodies and document descriptions are edited in the admin UI and
// stored as HTML. The policy keeps ordinary formatting, links, images and
// tables, and strips scripts, event handlers, forms, frames and unsafe URLs.
package htmlsanitize

import (
	"html"
	"html/template"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

var cssLength = regexp.MustCompile(`^\d+(\.\d+)?(%|px|em|rem)?$`)

func contentPolicy() *bluemonday.Policy {
	policyOnce.Do(func() {
		p := bluemonday.UGCPolicy()
		p.AllowElements("u", "s", "sub", "sup", "mark")
		tableElems := []string{"table", "thead", "tbody", "tfoot", "tr", "td", "th"}
		p.AllowAttrs("class").OnElements(tableElems...)
		p.AllowStyles("text-align").MatchingEnum("left", "center", "right", "justify").OnElements(tableElems...)
		p.AllowStyles("width").Matching(cssLength).OnElements(tableElems...)
		policy = p
	})
	return policy
}

// Sanitize returns s with everything outside the content policy removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return contentPolicy().Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s contains no markup.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

// PlainTextToHTML escapes s and wraps it in a paragraph, turning newlines
// into line breaks.
func PlainTextToHTML(s string) string {
	if s == "" {
		return ""
	}
	escaped := html.EscapeString(s)
	return "<p>" + strings.ReplaceAll(escaped, "\n", "<br>") + "</p>"
}

// PrepareForDisplay renders stored content that may be either plain text
// or HTML.
func PrepareForDisplay(s string) template.HTML {
	if s == "" {
		return ""
	}
	if IsPlainText(s) {
		return template.HTML(PlainTextToHTML(s))
	}
	return SanitizeToHTML(s)
}
