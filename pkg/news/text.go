package news

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// stripPolicy drops every tag and keeps only text content.
var stripPolicy = bluemonday.StrictPolicy()

// CleanText unescapes HTML entities and removes markup from feed text.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	// The policy escapes the text it keeps, so its output is unescaped once
	// more. Escaped markup inside the text ("&amp;lt;b&amp;gt;") surfaces as
	// a tag at that point and needs another pass. Each changing pass makes
	// the string shorter.
	for {
		next := html.UnescapeString(stripPolicy.Sanitize(s))
		if next == s {
			break
		}
		s = next
	}
	return strings.TrimSpace(s)
}

// CombineAbstract joins summary and description, dropping the description
// when the summary already contains it verbatim.
func CombineAbstract(summary, description string) string {
	if description == "" || strings.Contains(summary, description) {
		return summary
	}
	if summary == "" {
		return description
	}
	return strings.TrimSpace(summary + " " + description)
}
