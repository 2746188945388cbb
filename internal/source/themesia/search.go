package themesia

import (
	"regexp"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

// itemFrom is the one element-to-item mapping shared by search and
// discover extraction.
func (a Adapter) itemFrom(node *goquery.Selection, ctx source.Context) (model.SearchItem, bool) {
	link := node.Find("a").First()

	title := markup.Attr(link, "title")
	if title == "" {
		title = markup.Clean(node.Find(".tt").First().Text())
	}

	img := markup.Attr(node.Find("img").First(), "src", "data-src", "data-lazy-src")
	if img != "" {
		img = normalize.AbsoluteURL(ctx.Domain, img)
	}

	return source.BuildItem(
		markup.Attr(link, "href"),
		title,
		img,
		markup.Clean(node.Find(".epxs").First().Text()),
		a.CleanID,
	)
}

func (a Adapter) ParseSearchResults(doc *goquery.Document, page int, filtered bool, ctx source.Context) (model.SearchPage, error) {
	var items []model.SearchItem

	doc.Find(".listupd .bs .bsx").Each(func(_ int, node *goquery.Selection) {
		if it, ok := a.itemFrom(node, ctx); ok {
			items = append(items, it)
		}
	})

	return model.SearchPage{
		Items:       items,
		HasNextPage: hasNextPage(doc, page, filtered),
	}, nil
}

// hasNextPage: with a query or filter applied the template renders an
// explicit next control; plain browsing exposes a numbered pagination
// block instead, so the requested page is compared against its maximum.
func hasNextPage(doc *goquery.Document, page int, filtered bool) bool {
	if filtered {
		return doc.Find("a.next.page-numbers, .hpage a.r").Length() > 0
	}

	return page < maxPageNumber(doc)
}

var reDigits = regexp.MustCompile(`\d+`)

func maxPageNumber(doc *goquery.Document) int {
	maxPage := 1
	doc.Find(".pagination a.page-numbers, .pagination span.page-numbers").Each(func(_ int, n *goquery.Selection) {
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
	doc.Find(container).First().Find(".bs .bsx, .bsx").Each(func(_ int, node *goquery.Selection) {
		if it, ok := a.itemFrom(node, ctx); ok {
			out = append(out, model.DiscoverItem{SearchItem: it, Kind: section.Kind})
		}
	})

	return out, nil
}
