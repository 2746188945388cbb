package likemanga

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

func (a Adapter) itemFrom(node *goquery.Selection, ctx source.Context) (model.SearchItem, bool) {
	link := node.Find("h3 a, a.item-title, a").First()

	title := markup.Clean(link.Text())
	if title == "" {
		title = markup.Attr(link, "title")
	}

	img := markup.Attr(node.Find("img").First(), "src", "data-src")
	if img != "" {
		img = normalize.AbsoluteURL(ctx.Domain, img)
	}

	return source.BuildItem(
		markup.Attr(link, "href"),
		title,
		img,
		markup.Clean(node.Find(".item-chapter a, .item-chapter").First().Text()),
		a.CleanID,
	)
}

func (a Adapter) ParseSearchResults(doc *goquery.Document, page int, filtered bool, ctx source.Context) (model.SearchPage, error) {
	var items []model.SearchItem

	doc.Find(".story-item, .search-story-item").Each(func(_ int, node *goquery.Selection) {
		if it, ok := a.itemFrom(node, ctx); ok {
			items = append(items, it)
		}
	})

	return model.SearchPage{
		Items:       items,
		HasNextPage: hasNextPage(doc, page, filtered),
	}, nil
}

func hasNextPage(doc *goquery.Document, page int, filtered bool) bool {
	if filtered {
		return doc.Find("a.page-next, a.next").Length() > 0
	}

	return page < maxPageNumber(doc)
}

var reDigits = regexp.MustCompile(`\d+`)

func maxPageNumber(doc *goquery.Document) int {
	maxPage := 1
	doc.Find(".panel-page-number a, .pagination a").Each(func(_ int, n *goquery.Selection) {
		if m := reDigits.FindString(n.Text()); m != "" {
			if v, err := strconv.Atoi(m); err == nil && v > maxPage {
				maxPage = v
			}
		}
	})

	return maxPage
}

func (a Adapter) ParseDiscoverSection(doc *goquery.Document, section source.Section, ctx source.Context) ([]model.DiscoverItem, error) {
	container, ok := sectionContainers[section.ID]
	if !ok {
		return nil, nil
	}

	var out []model.DiscoverItem
	doc.Find(container).First().Find(".story-item, .item").Each(func(_ int, node *goquery.Selection) {
		if it, ok := a.itemFrom(node, ctx); ok {
			out = append(out, model.DiscoverItem{SearchItem: it, Kind: section.Kind})
		}
	})

	return out, nil
}
