package helper

import (
	"regexp"
	"strings"
)

var reSlugNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSlug menormalkan string menjadi slug:
// - lower-case
// - every run of characters outside [a-z0-9] becomes a single "-"
// - trim "-" di kedua ujung
func GenerateSlug(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = reSlugNonAlnum.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// SlugOrDerive returns the explicit slug when given, otherwise derives it from source.
func SlugOrDerive(explicit *string, source string) string {
	if explicit != nil {
		if v := strings.TrimSpace(*explicit); v != "" {
			return v
		}
	}
	return GenerateSlug(source)
}
