package source

import (
	"strings"

	"github.com/corvind/mangasrc/internal/model"
)

// BuildItem applies the shared element-to-item rules for search and
// discover entries: no href, no title, or a junk id means the entry is
// skipped, never an error.
func BuildItem(href, title, image, subtitle string, clean func(string) string) (model.SearchItem, bool) {
	href = strings.TrimSpace(href)
	title = strings.TrimSpace(title)
	if href == "" || title == "" {
		return model.SearchItem{}, false
	}

	id := clean(href)
	switch id {
	case "", "undefined", "null":
		return model.SearchItem{}, false
	}

	return model.SearchItem{
		MangaID:  id,
		Title:    title,
		ImageURL: strings.TrimSpace(image),
		Subtitle: strings.TrimSpace(subtitle),
	}, true
}

// ValidChapterHref rejects the hrefs that template engines leave behind:
// empty anchors, bare fragments and unresolved {{placeholders}}.
func ValidChapterHref(href string) bool {
	h := strings.TrimSpace(href)
	if h == "" || h == "#" {
		return false
	}

	return !strings.Contains(h, "{{") && !strings.Contains(h, "}}")
}
