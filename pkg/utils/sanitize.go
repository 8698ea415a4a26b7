package utils

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html/atom"
)

var (
	strictPolicy = bluemonday.StrictPolicy()
	tagPattern   = regexp.MustCompile(`</?([A-Za-z][A-Za-z0-9-]*)[^<>]*>`)
)

// PlainText strips markup from s and returns unescaped text, ready to be
// escaped once by whatever renders it (html/template, JSON, xlsx). Angle
// brackets that do not form a known HTML element, as in "Rede <Wi-Fi>", are
// kept as text.
func PlainText(s string) string {
	if s == "" {
		return s
	}
	if !hasMarkup(s) {
		return strings.TrimSpace(html.UnescapeString(s))
	}
	return strings.TrimSpace(html.UnescapeString(strictPolicy.Sanitize(s)))
}

func hasMarkup(s string) bool {
	for _, m := range tagPattern.FindAllStringSubmatch(s, -1) {
		if atom.Lookup([]byte(strings.ToLower(m[1]))) != 0 {
			return true
		}
	}
	return strings.Contains(s, "<!--")
}
