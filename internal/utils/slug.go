package utils

import (
	"regexp"
	"strings"
)

var (
	// Anything that is neither an ASCII word character nor a plain space
	nonSlugPattern = regexp.MustCompile(`[^\w ]+`)

	spaceRunPattern = regexp.MustCompile(` +`)
)

// Slugify converts a display name such as "Lower Austria" into the URL token
// "lower_austria". It never fails; the empty string maps to itself.
func Slugify(name string) string {
	slug := strings.ToLower(name)
	slug = nonSlugPattern.ReplaceAllString(slug, "")
	return spaceRunPattern.ReplaceAllString(slug, "_")
}
