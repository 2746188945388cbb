// Package themesia extracts content from sites built on the MangaThemesia
// WordPress template family. Markup varies a little between deployments,
// so every lookup runs through a chain of candidate selectors.
package themesia

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

type Adapter struct{}

func init() {
	source.Register(Adapter{})
}

func (Adapter) Key() string  { return "themesia" }
func (Adapter) Name() string { return "MangaThemesia" }

func (Adapter) CleanID(raw string) string {
	return normalize.CleanID(raw)
}

func (Adapter) DetailURL(id string, ctx source.Context) string {
	return ctx.Domain + "/manga/" + id + "/"
}

func (Adapter) ChapterURL(chapterID string, ctx source.Context) string {
	if strings.HasPrefix(chapterID, "http://") || strings.HasPrefix(chapterID, "https://") {
		return chapterID
	}

	return ctx.Domain + "/" + strings.TrimPrefix(chapterID, "/")
}

func (Adapter) SearchURL(query string, page int, ctx source.Context) string {
	if query != "" {
		return fmt.Sprintf("%s/page/%d/?s=%s", ctx.Domain, page, url.QueryEscape(query))
	}

	return fmt.Sprintf("%s/manga/?page=%d&order=update", ctx.Domain, page)
}

func (Adapter) HomeURL(ctx source.Context) string {
	return ctx.Domain + "/"
}

func (Adapter) FilterPageURL(ctx source.Context) string {
	return ctx.Domain + "/manga/"
}

var sections = []source.Section{
	{ID: "popular-today", Title: "Popular Today", Kind: model.KindFeatured},
	{ID: "project-update", Title: "Project Update", Kind: model.KindProminentCarousel},
	{ID: "latest-update", Title: "Latest Update", Kind: model.KindSimpleCarousel},
}

// Landing-page container per section id. Extraction inside each container
// is identical; only the presentation kind differs.
var sectionContainers = map[string]string{
	"popular-today":  ".bixbox.hothome",
	"project-update": ".bixbox.seriesbox",
	"latest-update":  ".postbody .bixbox.latesthome, .postbody .bixbox:not(.hothome):not(.seriesbox)",
}

func (Adapter) Sections() []source.Section {
	out := make([]source.Section, len(sections))
	copy(out, sections)

	return out
}
