package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy removes every tag; the API renders names verbatim in the web app.
var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup from user supplied text and trims surrounding
// whitespace. Entities produced by the policy are decoded back so that
// "Salt & Pepper" survives unchanged.
func SanitizeText(s string) string {
	cleaned := strictPolicy.Sanitize(s)
	return strings.TrimSpace(html.UnescapeString(cleaned))
}

// SanitizeOptional applies SanitizeText to an optional value, mapping
// blank results to nil.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	cleaned := SanitizeText(*s)
	if cleaned == "" {
		return nil
	}
	return &cleaned
}
