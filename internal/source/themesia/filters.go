package themesia

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
)

// ParseFilterOptions reads the advanced-filter form on the series index.
func (Adapter) ParseFilterOptions(doc *goquery.Document) (model.FilterOptions, error) {
	opts := model.FilterOptions{GenreIDByLabel: map[string]string{}}

	doc.Find(".filter .genrez li, ul.genrez li").Each(func(_ int, li *goquery.Selection) {
		id := markup.Attr(li.Find("input"), "value")
		label := markup.Clean(li.Find("label").Text())
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

// ParseSortOptions reads the order dropdown from the same form.
func (Adapter) ParseSortOptions(doc *goquery.Document) ([]model.Option, error) {
	return selectOptions(doc, "select[name=order]"), nil
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
