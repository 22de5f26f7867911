// ABOUTME: Text utilities for stripping HTML tags and truncating summaries
// ABOUTME: Provides the sanitization primitives used by the news service

package textutil

import (
	"strings"

	"golang.org/x/net/html"
)

// StripTags removes all HTML markup from a string and returns the
// concatenated text content. Returns the input unchanged if it cannot
// be parsed as HTML.
func StripTags(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}

	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var text strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		// Skip script and style bodies, they are not article text
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return text.String()
}

// CollapseWhitespace trims the string and replaces runs of whitespace
// with a single space.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateRunes shortens s to at most limit runes, appending the marker
// when anything was cut off. Strings at or under the limit are returned
// unchanged.
func TruncateRunes(s string, limit int, marker string) string {
	if limit < 0 {
		limit = 0
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + marker
}
