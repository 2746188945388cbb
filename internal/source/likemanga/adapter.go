// Package likemanga extracts content from sites on the LikeManga template
// family. Compared to themesia the family is stricter about URL shapes
// (/manga/<slug> and /reader/manga/<slug>) but sloppier about chapter
// ordering, which is why the chapter list is re-sorted after extraction.
package likemanga

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

type Adapter struct{}

func init() {
	source.Register(Adapter{})
}

func (Adapter) Key() string  { return "likemanga" }
func (Adapter) Name() string { return "LikeManga" }

var (
	reReaderPath = regexp.MustCompile(`/reader/manga/([^/?#]+)`)
	reMangaPath  = regexp.MustCompile(`/manga/([^/?#]+)`)
)

// CleanID recognizes the two canonical path shapes before falling back to
// plain last-segment extraction.
func (Adapter) CleanID(raw string) string {
	if m := reReaderPath.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	if m := reMangaPath.FindStringSubmatch(raw); m != nil {
		return m[1]
	}

	return normalize.CleanID(raw)
}

func (Adapter) DetailURL(id string, ctx source.Context) string {
	return ctx.Domain + "/manga/" + id
}

func (Adapter) ChapterURL(chapterID string, ctx source.Context) string {
	if strings.HasPrefix(chapterID, "http://") || strings.HasPrefix(chapterID, "https://") {
		return chapterID
	}

	return ctx.Domain + "/" + strings.TrimPrefix(chapterID, "/")
}

func (Adapter) SearchURL(query string, page int, ctx source.Context) string {
	if query != "" {
		return fmt.Sprintf("%s/search?q=%s&page=%d", ctx.Domain, url.QueryEscape(query), page)
	}

	return fmt.Sprintf("%s/manga-list?page=%d", ctx.Domain, page)
}

func (Adapter) HomeURL(ctx source.Context) string {
	return ctx.Domain + "/"
}

func (Adapter) FilterPageURL(ctx source.Context) string {
	return ctx.Domain + "/search-advanced"
}

var sections = []source.Section{
	{ID: "trending", Title: "Trending", Kind: model.KindFeatured},
	{ID: "hot-updates", Title: "Hot Updates", Kind: model.KindProminentCarousel},
	{ID: "new-releases", Title: "New Releases", Kind: model.KindSimpleCarousel},
}

var sectionContainers = map[string]string{
	"trending":     ".slider-trending, #owl-slider",
	"hot-updates":  ".hot-updates",
	"new-releases": ".new-releases",
}

func (Adapter) Sections() []source.Section {
	out := make([]source.Section, len(sections))
	copy(out, sections)

	return out
}
