package likemanga

import (
	"sort"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

var chapterDateLayouts = []string{
	"Jan 2, 2006",
	"Jan-02-2006",
	"02/01/2006",
	"2006-01-02",
}

// ParseChapterList collects entries in document order, then re-sorts by
// descending chapter number before assigning sorting indexes. The re-sort
// is deliberate: this family's listings interleave bonus chapters out of
// order, and it silently discards document order when numbers tie or
// parse to zero.
func (a Adapter) ParseChapterList(doc *goquery.Document, manga model.Manga, ctx source.Context) ([]model.Chapter, error) {
	var out []model.Chapter

	doc.Find("ul.list-chapters li, ul.row-content-chapter li").Each(func(_ int, li *goquery.Selection) {
		anchor := li.Find("a.chapter-name, a").First()
		href := markup.Attr(anchor, "href")
		if !source.ValidChapterHref(href) {
			return
		}

		id := normalize.RelativeToDomain(ctx.Domain, href)
		title := markup.Clean(anchor.Text())

		out = append(out, model.Chapter{
			MangaID:     manga.ID,
			ChapterID:   id,
			Language:    ctx.Language,
			Number:      normalize.ChapterNumber(li.Find(".chapter-num").Text(), id),
			Title:       title,
			PublishDate: normalize.Date(li.Find(".chapter-time").Text(), ctx.Clock(), chapterDateLayouts...),
		})
	})

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Number > out[j].Number
	})

	for i := range out {
		out[i].SortingIndex = len(out) - i
	}

	return out, nil
}
