package likemanga

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

// This family scores out of five stars.
const ratingScale = 5

var synopsisSelectors = []string{
	".summary__content p",
	".summary__content",
	".dsct p",
	".manga-excerpt",
}

func (a Adapter) ParseMangaDetails(doc *goquery.Document, id string, ctx source.Context) (model.Manga, error) {
	m := model.Manga{
		ID:        id,
		ShareURL:  a.DetailURL(id, ctx),
		Title:     markup.FirstText(doc, "h1.title-manga", ".post-title h1"),
		AltTitles: []string{},
		Author:    labelValue(doc, "Author"),
		Artist:    labelValue(doc, "Artist"),
		Synopsis:  markup.FirstText(doc, synopsisSelectors...),
		Status:    normalize.Status(labelValue(doc, "Status")),
	}

	thumb := doc.Find(".info-image img, .detail-cover img").First()
	if src := markup.Attr(thumb, "src", "data-src"); src != "" {
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

func labelValue(doc *goquery.Document, label string) string {
	rows := fmt.Sprintf(".post-content_item:contains(%s), .info-item:contains(%s)", label, label)

	row := doc.Find(rows).First()
	if row.Length() == 0 {
		return ""
	}

	value := row.Find(".summary-content, .info-value").First()
	if t := markup.Clean(value.Find("a").First().Text()); t != "" {
		return t
	}

	return markup.Clean(value.Text())
}

func parseGenres(doc *goquery.Document) []model.Tag {
	var out []model.Tag

	doc.Find(".genres-content a").Each(func(_ int, a *goquery.Selection) {
		tag := model.Tag{
			ID:    normalize.CleanID(markup.Attr(a, "href")),
			Title: markup.Clean(a.Text()),
		}
		if tag.Title == "" {
			return
		}
		if tag.ID == "debug" || tag.Title == "DEBUG" {
			return
		}

		out = append(out, tag)
	})

	return out
}

func parseRating(doc *goquery.Document) *float64 {
	node := doc.Find("span[itemprop=ratingValue], div[itemprop=ratingValue]").First()
	if v, ok := node.Attr("content"); ok {
		if r := normalize.Rating(v, ratingScale); r != nil {
			return r
		}
	}
	if r := normalize.Rating(markup.Clean(node.Text()), ratingScale); r != nil {
		return r
	}

	return normalize.Rating(markup.FirstText(doc, ".total-vote .score"), ratingScale)
}
