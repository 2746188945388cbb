package likemanga

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

// Default page-image API base. Newer deployments move it and announce the
// replacement in an inline script var.
const defaultImageAPIPath = "/manga/image/"

var reImagePathVar = regexp.MustCompile(`(?:imageAPIPath|imagePath)\s*=\s*["']([^"']+)["']`)

// ParseChapterPages tries rendered reader images first; deployments that
// stream pages through the image API render empty canvases carrying a
// page id instead, so that strategy comes second.
func (a Adapter) ParseChapterPages(doc *goquery.Document, _ model.Chapter, ctx source.Context) ([]string, error) {
	if urls := pagesFromReader(doc); len(urls) > 0 {
		return urls, nil
	}

	return pagesFromCanvases(doc, ctx), nil
}

func pagesFromReader(doc *goquery.Document) []string {
	var out []string

	// src often carries the lazy-load placeholder while data-src has the
	// real page, so each attribute is validated on its own.
	doc.Find(".reading-detail img, .container-chapter-reader img").Each(func(_ int, img *goquery.Selection) {
		for _, name := range []string{"src", "data-src"} {
			u, _ := img.Attr(name)
			if u = markup.Clean(u); normalize.ValidPageImage(u) {
				out = append(out, u)
				break
			}
		}
	})

	return out
}

// pagesFromCanvases builds one URL per canvas page id: resolved API base
// concatenated with the id, in document order.
func pagesFromCanvases(doc *goquery.Document, ctx source.Context) []string {
	base := imageAPIBase(doc)

	var out []string
	doc.Find("canvas[data-id]").Each(func(_ int, c *goquery.Selection) {
		id := markup.Attr(c, "data-id")
		if id == "" {
			return
		}

		out = append(out, normalize.AbsoluteURL(ctx.Domain, base)+id)
	})

	return out
}

func imageAPIBase(doc *goquery.Document) string {
	base := defaultImageAPIPath

	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := reImagePathVar.FindStringSubmatch(s.Text()); m != nil {
			base = m[1]
			return false
		}

		return true
	})

	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return base
}
