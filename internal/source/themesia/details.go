package themesia

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

const ratingScale = 10

var synopsisSelectors = []string{
	"div[itemprop=description] p",
	"div[itemprop=description]",
	".entry-content.entry-content-single",
	".summary__content",
	".desc",
}

func (a Adapter) ParseMangaDetails(doc *goquery.Document, id string, ctx source.Context) (model.Manga, error) {
	m := model.Manga{
		ID:       id,
		ShareURL: a.DetailURL(id, ctx),
		Title:    markup.FirstText(doc, "h1.entry-title", ".seriestuheader h1"),
		// The template has no alternative-title block; the field stays
		// an empty schema placeholder.
		AltTitles: []string{},
		Author:    labelValue(doc, "Author"),
		Artist:    labelValue(doc, "Artist"),
		Synopsis:  markup.FirstText(doc, synopsisSelectors...),
		Status:    normalize.Status(labelValue(doc, "Status")),
	}

	thumb := doc.Find(".thumb img, div[itemprop=image] img").First()
	if src := markup.Attr(thumb, "src", "data-src", "data-lazy-src"); src != "" {
		m.ThumbnailURL = normalize.AbsoluteURL(ctx.Domain, src)
	}

	genres := parseGenres(doc)
	if len(genres) > 0 {
		m.TagGroups = []model.TagGroup{{ID: "genres", Title: "Genres", Tags: genres}}
	}

	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Title
	}
	m.ContentRating = normalize.ContentRating(names, ctx.DefaultRating)

	m.Rating = parseRating(doc)

	return m, nil
}

// labelValue implements the label-then-sibling pattern: find the info row
// whose text carries the label, then take the first anchor (or plain
// value element) inside it.
func labelValue(doc *goquery.Document, label string) string {
	rows := fmt.Sprintf(".imptdt:contains(%s), .fmed:contains(%s), .infotable tr:contains(%s)", label, label, label)

	row := doc.Find(rows).First()
	if row.Length() == 0 {
		return ""
	}

	if t := markup.Clean(row.Find("a").First().Text()); t != "" {
		return t
	}
	if t := markup.Clean(row.Find("i, span, td:last-child").First().Text()); t != "" {
		return t
	}

	// Last resort: row text minus the label itself.
	return markup.Clean(strings.TrimPrefix(markup.Clean(row.Text()), label))
}

func parseGenres(doc *goquery.Document) []model.Tag {
	var out []model.Tag

	doc.Find(".mgen a, .seriestugenre a").Each(func(_ int, a *goquery.Selection) {
		tag := model.Tag{
			ID:    normalize.CleanID(markup.Attr(a, "href")),
			Title: markup.Clean(a.Text()),
		}
		if tag.Title == "" {
			return
		}
		// Some deployments leak a synthetic DEBUG tag from their theme
		// tooling; it must never reach the caller.
		if tag.ID == "debug" || tag.Title == "DEBUG" {
			return
		}

		out = append(out, tag)
	})

	return out
}

// parseRating prefers the microdata content attribute over visible text
// and rescales the template's 10-point value to 0-1.
func parseRating(doc *goquery.Document) *float64 {
	node := doc.Find("div[itemprop=ratingValue], span[itemprop=ratingValue]").First()
	if v, ok := node.Attr("content"); ok {
		if r := normalize.Rating(v, ratingScale); r != nil {
			return r
		}
	}
	if r := normalize.Rating(markup.Clean(node.Text()), ratingScale); r != nil {
		return r
	}

	return normalize.Rating(markup.FirstText(doc, ".rating .num"), ratingScale)
}
