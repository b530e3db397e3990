package generation

import (
	"regexp"
	"strings"
	"time"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a URL-safe identifier from the role title and date,
// used as the export filename stem.
func Slugify(roleTitle string, now time.Time) string {
	base := strings.ToLower(strings.TrimSpace(roleTitle))
	base = nonSlugChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")
	if base == "" {
		return "interview-pack-" + now.Format("2006-01-02")
	}
	return base + "-interview-pack-" + now.Format("2006-01-02")
}
