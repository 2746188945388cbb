package themesia

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/corvind/mangasrc/internal/markup"
	"github.com/corvind/mangasrc/internal/model"
	"github.com/corvind/mangasrc/internal/normalize"
	"github.com/corvind/mangasrc/internal/source"
)

// The reader boots through an inline ts_reader.run({...}) call whose
// payload carries the page list. That is the primary strategy; the
// rendered #readerarea images are the fallback for deployments that
// inline the pages server side.
const readerMarker = "ts_reader.run"

var (
	reImagesArray  = regexp.MustCompile(`"images"\s*:\s*(\[[^\]]*\])`)
	reQuotedString = regexp.MustCompile(`"([^"]+)"`)
	reTrailComma   = regexp.MustCompile(`,\s*]`)
)

func (a Adapter) ParseChapterPages(doc *goquery.Document, _ model.Chapter, _ source.Context) ([]string, error) {
	if urls := pagesFromScript(doc); len(urls) > 0 {
		return urls, nil
	}

	return pagesFromReaderArea(doc), nil
}

func pagesFromScript(doc *goquery.Document) []string {
	var script string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.Contains(s.Text(), readerMarker) {
			script = s.Text()
			return false
		}

		return true
	})
	if script == "" {
		return nil
	}

	m := reImagesArray.FindStringSubmatch(normalizeArrayLiteral(script))
	if m == nil {
		return nil
	}

	return collectPageURLs(decodeImageArray(m[1]))
}

// normalizeArrayLiteral massages the JS literal toward strict JSON:
// single quotes become double quotes and trailing commas are dropped.
func normalizeArrayLiteral(s string) string {
	s = strings.ReplaceAll(s, "'", `"`)

	return reTrailComma.ReplaceAllString(s, "]")
}

// decodeImageArray tries strict JSON first and falls back to harvesting
// the quoted literals when the array is too mangled to parse.
func decodeImageArray(arr string) []string {
	var rawItems []any
	if err := json.Unmarshal([]byte(arr), &rawItems); err == nil {
		out := make([]string, 0, len(rawItems))
		for _, it := range rawItems {
			if s, ok := it.(string); ok {
				out = append(out, s)
			}
		}

		return out
	}

	var out []string
	for _, m := range reQuotedString.FindAllStringSubmatch(arr, -1) {
		out = append(out, m[1])
	}

	return out
}

func collectPageURLs(candidates []string) []string {
	var out []string
	for _, c := range candidates {
		u := markup.Clean(c)
		if normalize.ValidPageImage(u) {
			out = append(out, u)
		}
	}

	return out
}

func pagesFromReaderArea(doc *goquery.Document) []string {
	var out []string

	// src often carries the lazy-load placeholder while data-src has the
	// real page, so each attribute is validated on its own.
	doc.Find("#readerarea img").Each(func(_ int, img *goquery.Selection) {
		for _, name := range []string{"src", "data-src", "data-lazy-src"} {
			u, _ := img.Attr(name)
			if u = markup.Clean(u); normalize.ValidPageImage(u) {
				out = append(out, u)
				break
			}
		}
	})

	return out
}
