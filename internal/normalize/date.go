package normalize

import (
	"regexp"
	"strings"
	"time"
)

// Both site families render either absolute dates or relative phrases
// ("2 days ago", "just now"). Relative phrases deliberately collapse to
// the current time instead of being converted to an offset; the sites
// themselves are inconsistent about them and downstream consumers were
// built against the collapsed value.

var reRelative = regexp.MustCompile(`(?i)\b\d+\s*(?:day|hour|minute|second|week|month|year)s?\s+ago\b`)

// IsRelative reports whether raw is a relative-time phrase.
func IsRelative(raw string) bool {
	low := strings.ToLower(raw)

	return strings.Contains(low, "ago") ||
		strings.Contains(low, "just now") ||
		reRelative.MatchString(low)
}

// Date parses raw against the given layouts in order. Relative, absent and
// unparseable input all fall back to now.
func Date(raw string, now time.Time, layouts ...string) time.Time {
	s := strings.TrimSpace(raw)
	if s == "" || IsRelative(s) {
		return now
	}

	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}

	return now
}
