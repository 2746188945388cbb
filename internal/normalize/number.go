package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reChapterPrefix = regexp.MustCompile(`(?i)(?:chapter|ch)[-_\s]*(\d+(?:[-_.]\d+)?)`)
	reTrailing      = regexp.MustCompile(`(\d+(?:\.\d+)?)$`)
	reText          = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ChapterNumber resolves a display chapter number. Preference order:
// the dedicated number element's text, a chapter/ch prefix in the id
// (hyphen and underscore read as decimal points), a trailing decimal in
// the id, then 0.
func ChapterNumber(numberText, id string) float64 {
	if t := strings.TrimSpace(numberText); t != "" {
		if m := reText.FindString(t); m != "" {
			if v, err := strconv.ParseFloat(m, 64); err == nil && v >= 0 {
				return v
			}
		}
	}

	cleaned := strings.TrimRight(strings.TrimSpace(id), "/")
	if m := reChapterPrefix.FindStringSubmatch(cleaned); m != nil {
		frag := strings.NewReplacer("-", ".", "_", ".").Replace(m[1])
		if v, err := strconv.ParseFloat(frag, 64); err == nil && v >= 0 {
			return v
		}
	}

	if m := reTrailing.FindString(cleaned); m != "" {
		if v, err := strconv.ParseFloat(m, 64); err == nil && v >= 0 {
			return v
		}
	}

	return 0
}
