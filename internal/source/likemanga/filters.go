package likemanga

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
)

// ParseFilterOptions reads the advanced-search form. Genre ids live in a
// data attribute on each pill, not in form inputs.
func (Adapter) ParseFilterOptions(doc *goquery.Document) (model.FilterOptions, error) {
	opts := model.FilterOptions{GenreIDByLabel: map[string]string{}}

	doc.Find(".advanced-genres .genre-item").Each(func(_ int, g *goquery.Selection) {
		id := markup.Attr(g, "data-i")
		label := markup.Clean(g.Find("span").First().Text())
		if label == "" {
			label = markup.Clean(g.Text())
		}
		if id == "" || label == "" {
			return
		}

		opts.Genres = append(opts.Genres, model.Option{ID: id, Label: label})
		opts.GenreIDByLabel[strings.ToLower(label)] = id
	})

	opts.Statuses = selectOptions(doc, "select[name=status]")
	opts.Types = selectOptions(doc, "select[name=type]")

	return opts, nil
}

func (Adapter) ParseSortOptions(doc *goquery.Document) ([]model.Option, error) {
	return selectOptions(doc, "select[name=orby]"), nil
}

func selectOptions(doc *goquery.Document, sel string) []model.Option {
	var out []model.Option

	doc.Find(sel + " option").Each(func(_ int, o *goquery.Selection) {
		label := markup.Clean(o.Text())
		if label == "" {
			return
		}

		out = append(out, model.Option{
			ID:    markup.Attr(o, "value"),
			Label: label,
		})
	})

	return out
}
