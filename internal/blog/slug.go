package blog

import (
	"regexp"
	"strings"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lower-cases title, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
func Slugify(title string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
