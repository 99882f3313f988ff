package utils

import (
	"regexp"
	"strings"
)

var (
	slugDisallowed   = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugWhitespace   = regexp.MustCompile(`\s+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
	handleDisallowed = regexp.MustCompile(`[^a-z0-9-]`)
)

// DeriveSlug builds a URL-safe activity slug from a title: lowercase,
// strip disallowed characters, whitespace to single hyphens, collapse
// hyphen runs, truncate to 50 characters.
func DeriveSlug(title string) string {
	slug := strings.ToLower(title)
	slug = slugDisallowed.ReplaceAllString(slug, "")
	slug = slugWhitespace.ReplaceAllString(slug, "-")
	slug = slugHyphenRuns.ReplaceAllString(slug, "-")
	if len(slug) > 50 {
		slug = slug[:50]
	}
	return slug
}

// SanitizeHandle normalizes a program handle to lowercase alphanumerics and hyphens
func SanitizeHandle(handle string) string {
	return handleDisallowed.ReplaceAllString(strings.ToLower(handle), "")
}
