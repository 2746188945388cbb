package normalize

import "strings"

// Known blank placeholders the reader templates ship before lazy-loading
// kicks in.
var placeholderMarkers = []string{
	"readerarea.svg",
	"data:image/svg",
	"/assets/images/blank.gif",
}

// ValidPageImage accepts any non-empty URL that is not a known
// placeholder sentinel.
func ValidPageImage(u string) bool {
	s := strings.TrimSpace(u)
	if s == "" {
		return false
	}

	low := strings.ToLower(s)
	for _, m := range placeholderMarkers {
		if strings.Contains(low, m) {
			return false
		}
	}

	return true
}
