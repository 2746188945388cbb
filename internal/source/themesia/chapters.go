package themesia

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

var chapterDateLayouts = []string{
	"January 2, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"02/01/2006",
}

// ParseChapterList walks the listing in document order. The template
// renders newest first, so the sorting index is simply reverse document
// order: the first valid entry gets the highest value.
func (a Adapter) ParseChapterList(doc *goquery.Document, manga model.Manga, ctx source.Context) ([]model.Chapter, error) {
	var out []model.Chapter

	doc.Find("#chapterlist li[data-num], ul.clstyle li[data-num]").Each(func(_ int, li *goquery.Selection) {
		href := markup.Attr(li.Find("a").First(), "href")
		if !source.ValidChapterHref(href) {
			return
		}

		id := normalize.RelativeToDomain(ctx.Domain, href)

		out = append(out, model.Chapter{
			MangaID:     manga.ID,
			ChapterID:   id,
			Language:    ctx.Language,
			Number:      normalize.ChapterNumber(li.Find(".chapternum").Text(), id),
			Title:       markup.Clean(li.Find(".chapternum").Text()),
			PublishDate: normalize.Date(li.Find(".chapterdate").Text(), ctx.Clock(), chapterDateLayouts...),
		})
	})

	for i := range out {
		out[i].SortingIndex = len(out) - i
	}

	return out, nil
}
