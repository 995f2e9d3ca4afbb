package validation

import (
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-+`)
)

// GenerateSlug derives a URL-safe identifier from a title: lowercase,
// non-alphanumerics stripped, whitespace runs turned into single hyphens.
// Pure and deterministic; slugging an existing slug returns it unchanged.
// A punctuation-only title yields "" — callers must reject that before it
// reaches the unique index.
func GenerateSlug(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugSpaces.ReplaceAllString(slug, "-")
	slug = slugHyphens.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
